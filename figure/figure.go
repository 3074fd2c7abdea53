// Package figure renders an analysis as an interactive plotly figure: the
// 3D surface, its contour plot, markers for the sampled extrema and
// text-only legend entries for the derived quantities.
package figure

import (
	"fmt"
	"os"
	"path/filepath"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"
	"github.com/pkg/browser"
	"gonum.org/v1/gonum/mat"

	gnc "github.com/wnods/GNC"
	"github.com/wnods/GNC/symbol"
)

// DefaultTitle is the figure title used when none is given.
const DefaultTitle = "Superfície e Curvas de Nível da Função"

const noClosedForm = "sem forma fechada"

// New assembles the complete figure for an analysis: surface, contour,
// extremum markers and the three legend-text traces.
func New(a *gnc.Analysis, title string) *grob.Fig {
	if title == "" {
		title = DefaultTitle
	}
	xs := rowSlice(a.X, 0)
	ys := colSlice(a.Y, 0)

	surface := &grob.Surface{
		Type:       grob.TraceTypeSurface,
		X:          matRows(a.X),
		Y:          matRows(a.Y),
		Z:          matRows(a.Z),
		Colorscale: "inferno",
		Showscale:  grob.False,
	}
	contour := &grob.Contour{
		Type:       grob.TraceTypeContour,
		X:          xs,
		Y:          ys,
		Z:          matRows(a.Z),
		Colorscale: "inferno",
		Showscale:  grob.False,
	}

	minMarker := extremumMarker(a.Min.X, a.Min.Y, a.Min.Value,
		"green", fmt.Sprintf("Mínimo Global: %.2f", a.Min.Value))
	maxMarker := extremumMarker(a.Max.X, a.Max.Y, a.Max.Value,
		"red", fmt.Sprintf("Máximo Global: %.2f", a.Max.Value))

	layout := &grob.Layout{
		Title: &grob.LayoutTitle{Text: title},
		Scene: &grob.LayoutScene{
			Xaxis: &grob.LayoutSceneXaxis{Title: &grob.LayoutSceneXaxisTitle{Text: "x"}},
			Yaxis: &grob.LayoutSceneYaxis{Title: &grob.LayoutSceneYaxisTitle{Text: "y"}},
			Zaxis: &grob.LayoutSceneZaxis{Title: &grob.LayoutSceneZaxisTitle{Text: "z"}},
		},
		Xaxis:      &grob.LayoutXaxis{Title: &grob.LayoutXaxisTitle{Text: "x"}},
		Yaxis:      &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: "y"}},
		Showlegend: grob.True,
	}

	return &grob.Fig{
		Data: grob.Traces{
			surface,
			contour,
			minMarker,
			maxMarker,
			legendText("Derivadas Parciais:\n" + PartialsText(a)),
			legendText("Integrais:\n" + IntegralsText(a)),
			legendText("Limites:\n" + LimitText(a)),
		},
		Layout: layout,
	}
}

// PartialsText renders the two partial derivatives for the legend.
func PartialsText(a *gnc.Analysis) string {
	return fmt.Sprintf("∂f/∂x = %s\n∂f/∂y = %s", symbol.Pretty(a.DfDx), symbol.Pretty(a.DfDy))
}

// IntegralsText renders the symbolic and numeric integrals for the legend.
// Quantities without a closed form get a placeholder.
func IntegralsText(a *gnc.Analysis) string {
	return fmt.Sprintf("∫f(x) dx = %s\n∫f(y) dy = %s\nIntegral dupla simbólica = %s\nIntegral dupla numérica ≈ %.2f",
		prettyOr(a.IntX), prettyOr(a.IntY), prettyOr(a.IntXY), a.IntNumeric)
}

// LimitText renders the sequential limit toward the origin for the legend.
func LimitText(a *gnc.Analysis) string {
	if a.LimitOrigin == nil {
		return "lim(x→0, y→0) f(x,y) = indeterminado"
	}
	return "lim(x→0, y→0) f(x,y) = " + symbol.Pretty(a.LimitOrigin)
}

func prettyOr(e symbol.Expr) string {
	if e == nil {
		return noClosedForm
	}
	return symbol.Pretty(e)
}

func extremumMarker(x, y, z float64, color, name string) *grob.Scatter3d {
	return &grob.Scatter3d{
		Type: grob.TraceTypeScatter3d,
		X:    []float64{x},
		Y:    []float64{y},
		Z:    []float64{z},
		Mode: grob.Scatter3dModeMarkers,
		Name: name,
		Marker: &grob.Scatter3dMarker{
			Size:   5,
			Color:  color,
			Symbol: grob.Scatter3dMarkerSymbolCircle,
		},
	}
}

// legendText builds an invisible scatter trace whose only purpose is to
// put a block of text in the legend.
func legendText(name string) *grob.Scatter {
	return &grob.Scatter{
		Type:       grob.TraceTypeScatter,
		X:          []any{nil},
		Y:          []any{nil},
		Mode:       grob.ScatterModeMarkers,
		Marker:     &grob.ScatterMarker{Size: 1, Color: "white"},
		Showlegend: grob.True,
		Name:       name,
	}
}

// WriteHTML writes the figure as a standalone HTML page.
func WriteHTML(fig *grob.Fig, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("figure: %w", err)
	}
	offline.ToHtml(fig, path)
	return nil
}

// Show writes the figure to a temporary HTML file and opens it in the
// default browser.
func Show(fig *grob.Fig) error {
	dir, err := os.MkdirTemp("", "gnc-figure-")
	if err != nil {
		return fmt.Errorf("figure: %w", err)
	}
	path := filepath.Join(dir, "figure.html")
	offline.ToHtml(fig, path)
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("figure: open browser: %w", err)
	}
	return nil
}

// matRows converts a dense matrix into the row-of-rows shape the plotly
// traces expect.
func matRows(m *mat.Dense) [][]float64 {
	rows, cols := m.Dims()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

func rowSlice(m *mat.Dense, i int) []float64 {
	_, cols := m.Dims()
	out := make([]float64, cols)
	for j := 0; j < cols; j++ {
		out[j] = m.At(i, j)
	}
	return out
}

func colSlice(m *mat.Dense, j int) []float64 {
	rows, _ := m.Dims()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = m.At(i, j)
	}
	return out
}
