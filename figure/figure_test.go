package figure_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gnc "github.com/wnods/GNC"
	"github.com/wnods/GNC/figure"
)

func paraboloid(t *testing.T) *gnc.Analysis {
	t.Helper()
	expr, err := gnc.ParseFunction("x**2 + y**2", nil)
	require.NoError(t, err)
	a, err := gnc.Analyze(expr, [2]float64{-1, 1}, [2]float64{-1, 1}, 3)
	require.NoError(t, err)
	return a
}

func TestNew_TraceLayout(t *testing.T) {
	fig := figure.New(paraboloid(t), "")
	// Surface, contour, two extremum markers, three legend-text traces.
	require.Len(t, fig.Data, 7)
	assert.Equal(t, figure.DefaultTitle, fig.Layout.Title.Text)

	_, ok := fig.Data[0].(*grob.Surface)
	assert.True(t, ok, "first trace should be the surface")
	_, ok = fig.Data[1].(*grob.Contour)
	assert.True(t, ok, "second trace should be the contour")
}

func TestNew_ExtremumMarkers(t *testing.T) {
	fig := figure.New(paraboloid(t), "")
	min, ok := fig.Data[2].(*grob.Scatter3d)
	require.True(t, ok)
	assert.Equal(t, "Mínimo Global: 0.00", min.Name)

	max, ok := fig.Data[3].(*grob.Scatter3d)
	require.True(t, ok)
	assert.Equal(t, "Máximo Global: 2.00", max.Name)
}

func TestNew_LegendTexts(t *testing.T) {
	fig := figure.New(paraboloid(t), "")
	var names []string
	for _, tr := range fig.Data[4:] {
		sc, ok := tr.(*grob.Scatter)
		require.True(t, ok)
		name, ok := sc.Name.(string)
		require.True(t, ok)
		names = append(names, name)
	}
	require.Len(t, names, 3)
	assert.True(t, strings.HasPrefix(names[0], "Derivadas Parciais:\n"))
	assert.True(t, strings.HasPrefix(names[1], "Integrais:\n"))
	assert.True(t, strings.HasPrefix(names[2], "Limites:\n"))
}

func TestPartialsText(t *testing.T) {
	got := figure.PartialsText(paraboloid(t))
	assert.Contains(t, got, "∂f/∂x = 2·x")
	assert.Contains(t, got, "∂f/∂y = 2·y")
}

func TestIntegralsText(t *testing.T) {
	got := figure.IntegralsText(paraboloid(t))
	assert.Contains(t, got, "Integral dupla simbólica = 8/3")
	assert.Contains(t, got, "Integral dupla numérica ≈ 2.67")
}

func TestIntegralsText_NoClosedForm(t *testing.T) {
	expr, err := gnc.ParseFunction("exp(-x**2 - y**2)", nil)
	require.NoError(t, err)
	a, err := gnc.Analyze(expr, [2]float64{-1, 1}, [2]float64{-1, 1}, 3)
	require.NoError(t, err)
	got := figure.IntegralsText(a)
	assert.Contains(t, got, "∫f(x) dx = sem forma fechada")
}

func TestLimitText(t *testing.T) {
	got := figure.LimitText(paraboloid(t))
	assert.Equal(t, "lim(x→0, y→0) f(x,y) = 0", got)
}

func TestWriteHTML(t *testing.T) {
	fig := figure.New(paraboloid(t), "")
	path := filepath.Join(t.TempDir(), "out", "figure.html")
	require.NoError(t, figure.WriteHTML(fig, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
