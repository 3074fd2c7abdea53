// cmd/gnc/main.go — Interactive surface and contour plot generator.
//
// Reads a two-variable function, optional fixed variables, axis ranges and
// a resolution from stdin, then renders an interactive plotly figure with
// the surface, contour curves, global extrema and the derived symbolic
// quantities in the legend.
//
// Usage:
//   go run cmd/gnc/main.go              # open the figure in the browser
//   go run cmd/gnc/main.go -o fig.html  # write the figure to a file
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	gnc "github.com/wnods/GNC"
	"github.com/wnods/GNC/figure"
)

func main() {
	output := flag.String("o", "", "write the figure to this HTML file instead of opening a browser")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	in := bufio.NewScanner(os.Stdin)

	showInstructions()

	funcStr := prompt(in, "Digite a função que deseja calcular (use x e y como variáveis): ")
	if !gnc.ValidateFunction(funcStr) {
		fmt.Println("Erro: A função inserida é inválida. Por favor, insira uma função válida.")
		return
	}

	fixed := map[string]float64{}
	for {
		entry := prompt(in, "Digite a variável e valor para fixar (ex.: z=1), ou pressione Enter para continuar: ")
		if entry == "" {
			break
		}
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			panic(fmt.Sprintf("entrada inválida: %q", entry))
		}
		fixed[strings.TrimSpace(name)] = mustFloat(strings.TrimSpace(value))
	}

	xRange := mustRange(prompt(in, "Digite o intervalo para o eixo x (ex.: 0 10): "))
	yRange := mustRange(prompt(in, "Digite o intervalo para o eixo y (ex.: -5 5): "))
	resolution := mustInt(prompt(in, "Digite a resolução (número de pontos): "))

	expr, err := gnc.ParseFunction(funcStr, fixed)
	if err != nil {
		panic(err)
	}
	slog.Debug("função interpretada", "expr", expr.String(), "fixas", len(fixed))

	analysis, err := gnc.Analyze(expr, xRange, yRange, resolution)
	if err != nil {
		panic(err)
	}
	slog.Debug("análise concluída",
		"min", analysis.Min.Value,
		"max", analysis.Max.Value,
		"integral_numerica", analysis.IntNumeric)

	fig := figure.New(analysis, "")
	if *output != "" {
		if err := figure.WriteHTML(fig, *output); err != nil {
			slog.Error("falha ao gravar a figura", "err", err)
			os.Exit(1)
		}
		fmt.Printf("Figura gravada em %s\n", *output)
		return
	}
	if err := figure.Show(fig); err != nil {
		slog.Error("falha ao abrir a figura", "err", err)
		os.Exit(1)
	}
}

func showInstructions() {
	fmt.Println("Bem-vindo ao Gerador de Gráfico de Curvas de Nível e Superfícies!")
	fmt.Println("Este programa permite que você insira uma função matemática de múltiplas variáveis (x, y, z, etc.) e visualize seu gráfico de contorno e/ou superfície.")
	fmt.Println("\nInstruções:")
	fmt.Println("1) Insira a função desejada usando 'x', 'y', 'z', etc. como variáveis.")
	fmt.Println("2) Utilize funções matemáticas como exp, sin, cos, sqrt, etc.")
	fmt.Println("3) Fixe valores para variáveis adicionais que não serão plotadas (ex.: z=1).")
	fmt.Println("4) Não inclua a parte 'f(x,y,...) =' na sua entrada. Apenas insira a expressão matemática.")
	fmt.Println("5) Use '**' para exponenciação em vez de '^'.")
	fmt.Println("\nExemplos de funções que você pode inserir:")
	fmt.Println("  - 'sqrt(x) + y + z'")
	fmt.Println("  - 'x**2 + y**2 + z**2'")
	fmt.Println("  - 'sin(x) * cos(y) * z'")
	fmt.Println("  - 'exp(-x**2 - y**2 + z)'")
	fmt.Println("\nDigite a função desejada no formato indicado e veja o resultado!")
}

func prompt(in *bufio.Scanner, text string) string {
	fmt.Print(text)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func mustFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(err)
	}
	return v
}

func mustInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return v
}

func mustRange(s string) [2]float64 {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		panic(fmt.Sprintf("intervalo inválido: %q", s))
	}
	return [2]float64{mustFloat(fields[0]), mustFloat(fields[1])}
}
