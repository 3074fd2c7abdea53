package symbol

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"unicode"
)

// Parse interprets src as an infix mathematical expression using the usual
// grammar: '+', '-', '*', '/', power as '**' (or '^'), unary minus,
// parentheses, decimal numbers, named variables, the constants pi and e,
// and the elementary functions sin, cos, tan, asin, acos, atan, sinh,
// cosh, tanh, exp, ln, log, sqrt, abs, floor, ceil and sign.
//
// Any bare identifier becomes a variable, so "x*z + y" parses even when z
// is only fixed later. Identifiers applied as functions must be known.
func Parse(src string) (Expr, error) {
	p := &parser{src: src}
	p.next()
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, fmt.Errorf("symbol: unexpected %q at offset %d", p.tok.text, p.tok.pos)
	}
	return e.Simplify(), nil
}

// parseFuncs is the set of identifiers that may be applied as functions.
var parseFuncs = map[string]func(Expr) Expr{
	"sin":   Sin,
	"cos":   Cos,
	"tan":   Tan,
	"asin":  Asin,
	"acos":  Acos,
	"atan":  Atan,
	"sinh":  Sinh,
	"cosh":  Cosh,
	"tanh":  Tanh,
	"exp":   Exp,
	"ln":    Ln,
	"log":   Ln,
	"sqrt":  Sqrt,
	"abs":   Abs,
	"floor": Floor,
	"ceil":  Ceil,
	"sign":  Sign,
}

// ============================================================
// Tokenizer
// ============================================================

type tokKind int

const (
	tokEOF tokKind = iota
	tokNumber
	tokIdent
	tokOp     // + - * / ^ **
	tokLParen
	tokRParen
)

type token struct {
	kind tokKind
	text string
	pos  int
}

type parser struct {
	src string
	off int
	tok token
}

func (p *parser) next() {
	for p.off < len(p.src) && (p.src[p.off] == ' ' || p.src[p.off] == '\t') {
		p.off++
	}
	start := p.off
	if p.off >= len(p.src) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}
	c := rune(p.src[p.off])
	switch {
	case c == '(':
		p.off++
		p.tok = token{kind: tokLParen, text: "(", pos: start}
	case c == ')':
		p.off++
		p.tok = token{kind: tokRParen, text: ")", pos: start}
	case c == '*':
		p.off++
		if p.off < len(p.src) && p.src[p.off] == '*' {
			p.off++
			p.tok = token{kind: tokOp, text: "**", pos: start}
			return
		}
		p.tok = token{kind: tokOp, text: "*", pos: start}
	case strings.ContainsRune("+-/^", c):
		p.off++
		p.tok = token{kind: tokOp, text: string(c), pos: start}
	case c >= '0' && c <= '9' || c == '.':
		p.off = scanNumber(p.src, p.off)
		p.tok = token{kind: tokNumber, text: p.src[start:p.off], pos: start}
	case unicode.IsLetter(c) || c == '_':
		for p.off < len(p.src) && (isIdentRune(rune(p.src[p.off]))) {
			p.off++
		}
		p.tok = token{kind: tokIdent, text: p.src[start:p.off], pos: start}
	default:
		// Unknown rune becomes a one-byte token rejected by the parser.
		p.off++
		p.tok = token{kind: tokOp, text: string(c), pos: start}
	}
}

func isIdentRune(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}

// scanNumber consumes digits, one optional decimal point and an optional
// exponent, returning the end offset.
func scanNumber(src string, off int) int {
	seenDot := false
	for off < len(src) {
		c := src[off]
		if c >= '0' && c <= '9' {
			off++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			off++
			continue
		}
		if (c == 'e' || c == 'E') && off+1 < len(src) {
			rest := src[off+1:]
			if rest[0] >= '0' && rest[0] <= '9' {
				off += 2
				continue
			}
			if (rest[0] == '+' || rest[0] == '-') && len(rest) > 1 && rest[1] >= '0' && rest[1] <= '9' {
				off += 3
				continue
			}
		}
		break
	}
	return off
}

// ============================================================
// Precedence-climbing parser
// ============================================================

// Binding powers: additive 1, multiplicative 2, power 3 (right-assoc).
func binaryPrec(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	case "**", "^":
		return 3
	}
	return 0
}

func (p *parser) parseExpr(minPrec int) (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOp {
		op := p.tok.text
		prec := binaryPrec(op)
		if prec == 0 || prec < minPrec {
			break
		}
		p.next()
		// Power is right-associative; the rest associate left.
		nextMin := prec + 1
		if prec == 3 {
			nextMin = prec
		}
		right, err := p.parseExpr(nextMin)
		if err != nil {
			return nil, err
		}
		switch op {
		case "+":
			left = Sum(left, right)
		case "-":
			left = Sum(left, Neg(right))
		case "*":
			left = Prod(left, right)
		case "/":
			left = Quot(left, right)
		case "**", "^":
			left = Power(left, right)
		}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if p.tok.kind == tokOp {
		switch p.tok.text {
		case "-":
			p.next()
			// Unary minus binds looser than power: -x**2 is -(x**2).
			operand, err := p.parseExpr(3)
			if err != nil {
				return nil, err
			}
			return Neg(operand), nil
		case "+":
			p.next()
			return p.parseExpr(3)
		}
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	switch p.tok.kind {
	case tokNumber:
		text := p.tok.text
		r, ok := new(big.Rat).SetString(text)
		if !ok {
			return nil, fmt.Errorf("symbol: invalid number %q at offset %d", text, p.tok.pos)
		}
		p.next()
		return &Num{val: r}, nil

	case tokIdent:
		name := p.tok.text
		pos := p.tok.pos
		p.next()
		if p.tok.kind == tokLParen {
			fn, ok := parseFuncs[name]
			if !ok {
				return nil, fmt.Errorf("symbol: unknown function %q at offset %d", name, pos)
			}
			p.next()
			arg, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			if p.tok.kind != tokRParen {
				return nil, fmt.Errorf("symbol: missing ')' for %s(... at offset %d", name, p.tok.pos)
			}
			p.next()
			return fn(arg), nil
		}
		switch name {
		case "pi":
			return Float(math.Pi), nil
		case "e", "E":
			return Float(math.E), nil
		}
		return Var(name), nil

	case tokLParen:
		p.next()
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, fmt.Errorf("symbol: unmatched '(' at offset %d", p.tok.pos)
		}
		p.next()
		return e, nil

	case tokEOF:
		return nil, fmt.Errorf("symbol: unexpected end of expression")
	}
	return nil, fmt.Errorf("symbol: unexpected %q at offset %d", p.tok.text, p.tok.pos)
}
