package chart

import (
	"image/color"
	"io"
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatlens/pkg/domain/interfaces"
	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/secmon-lab/threatlens/pkg/domain/types"
	gochart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	// DefaultWidth is the image width in pixels
	DefaultWidth = 1000
	// pngDPI is the resolution gonum uses for PNG output
	pngDPI = 96
)

// Renderer draws chart specifications as PNG images
type Renderer struct {
	width int
}

// RendererOption configures Renderer behavior
type RendererOption func(*Renderer)

// WithWidth sets the image width in pixels
func WithWidth(px int) RendererOption {
	return func(r *Renderer) {
		if px > 0 {
			r.width = px
		}
	}
}

// NewRenderer creates a PNG renderer
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{width: DefaultWidth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ interfaces.ChartRenderer = (*Renderer)(nil)

// RenderPNG writes spec to w. A spec with nothing to draw produces an empty
// titled image.
func (r *Renderer) RenderPNG(w io.Writer, spec *model.ChartSpec) error {
	if spec.IsEmpty() {
		return r.writePlot(w, spec, emptyPlot(spec))
	}

	switch spec.Kind {
	case types.ChartKindBar:
		p, err := barPlot(spec)
		if err != nil {
			return err
		}
		return r.writePlot(w, spec, p)

	case types.ChartKindHeatmap:
		p, err := heatmapPlot(spec)
		if err != nil {
			return err
		}
		return r.writePlot(w, spec, p)

	case types.ChartKindPie:
		return r.writePie(w, spec)

	default:
		return goerr.New("unsupported chart kind",
			goerr.V("kind", spec.Kind),
			goerr.V("tab", spec.Tab))
	}
}

func (r *Renderer) height(spec *model.ChartSpec) int {
	if spec.Height > 0 {
		return spec.Height
	}
	return r.width / 2
}

func pixels(px int) vg.Length {
	return vg.Length(px) * vg.Inch / pngDPI
}

func (r *Renderer) writePlot(w io.Writer, spec *model.ChartSpec, p *plot.Plot) error {
	wt, err := p.WriterTo(pixels(r.width), pixels(r.height(spec)), "png")
	if err != nil {
		return goerr.Wrap(err, "failed to create chart writer", goerr.V("tab", spec.Tab))
	}
	if _, err := wt.WriteTo(w); err != nil {
		return goerr.Wrap(err, "failed to write chart image", goerr.V("tab", spec.Tab))
	}
	return nil
}

func newPlot(spec *model.ChartSpec) *plot.Plot {
	p := plot.New()
	p.Title.Text = spec.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	if spec.XAxis != nil {
		p.X.Label.Text = spec.XAxis.Title
	}
	if spec.YAxis != nil {
		p.Y.Label.Text = spec.YAxis.Title
	}
	return p
}

func emptyPlot(spec *model.ChartSpec) *plot.Plot {
	p := newPlot(spec)
	p.HideAxes()
	return p
}

// barPlot draws horizontal bars in CategoryOrder, bottom to top. Each color
// group is its own bar series so groups get distinct colors.
func barPlot(spec *model.ChartSpec) (*plot.Plot, error) {
	p := newPlot(spec)

	order := spec.CategoryOrder
	if len(order) == 0 {
		order = labels(spec.Points)
	}
	position := make(map[string]int, len(order))
	for i, label := range order {
		position[label] = i
	}

	var groups []string
	series := make(map[string]plotter.Values)
	for _, pt := range spec.Points {
		pos, ok := position[pt.Label]
		if !ok {
			continue
		}
		values, exists := series[pt.Group]
		if !exists {
			values = make(plotter.Values, len(order))
			groups = append(groups, pt.Group)
		}
		values[pos] = pt.Value
		series[pt.Group] = values
	}

	for i, group := range groups {
		bars, err := plotter.NewBarChart(series[group], vg.Points(14))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create bar chart",
				goerr.V("tab", spec.Tab),
				goerr.V("group", group))
		}
		bars.Horizontal = true
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		p.Add(bars)
	}

	p.NominalY(order...)
	p.Add(plotter.NewGrid())
	return p, nil
}

// heatGrid adapts HeatmapData to plotter.GridXYZ. Columns are X labels and
// rows are Y labels; missing cells are NaN. Grid rows count up from the
// bottom, so data row 0 sits at the top.
type heatGrid struct {
	data   *model.HeatmapData
	lo, hi float64
}

func (g *heatGrid) Dims() (c, r int) { return len(g.data.X), len(g.data.Y) }

// dataRow maps a grid row to the HeatmapData row drawn there
func (g *heatGrid) dataRow(r int) int { return len(g.data.Y) - 1 - r }

func (g *heatGrid) Z(c, r int) float64 {
	r = g.dataRow(r)
	if r < 0 || r >= len(g.data.Z) || c >= len(g.data.Z[r]) || g.data.Z[r][c] == nil {
		return math.NaN()
	}
	return *g.data.Z[r][c]
}

func (g *heatGrid) X(c int) float64 { return float64(c) }
func (g *heatGrid) Y(r int) float64 { return float64(r) }
func (g *heatGrid) Min() float64    { return g.lo }
func (g *heatGrid) Max() float64    { return g.hi }

// labelsY returns the Y labels in grid row order
func (g *heatGrid) labelsY() []string {
	labels := make([]string, len(g.data.Y))
	for r := range labels {
		labels[r] = g.data.Y[g.dataRow(r)]
	}
	return labels
}

func heatmapPlot(spec *model.ChartSpec) (*plot.Plot, error) {
	p := newPlot(spec)

	grid := &heatGrid{data: spec.Heatmap}
	if spec.ColorScale != nil {
		grid.lo, grid.hi = spec.ColorScale.Min, spec.ColorScale.Max
	}
	if grid.hi <= grid.lo {
		grid.lo, grid.hi = grid.lo-0.5, grid.lo+0.5
	}

	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(0)
	cmap.SetMax(1)

	hm := plotter.NewHeatMap(grid, cmap.Palette(255))
	hm.NaN = color.Transparent
	p.Add(hm)

	var annotations plotter.XYLabels
	for r, row := range spec.Heatmap.Text {
		for c, text := range row {
			if text == "" {
				continue
			}
			annotations.XYs = append(annotations.XYs, plotter.XY{X: float64(c), Y: float64(grid.dataRow(r))})
			annotations.Labels = append(annotations.Labels, text)
		}
	}
	if len(annotations.XYs) > 0 {
		cellLabels, err := plotter.NewLabels(annotations)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create heatmap labels", goerr.V("tab", spec.Tab))
		}
		p.Add(cellLabels)
	}

	p.NominalX(spec.Heatmap.X...)
	p.NominalY(grid.labelsY()...)
	return p, nil
}

// writePie draws share charts with go-chart. Non-positive slices are dropped;
// if nothing remains the empty plot is written instead.
func (r *Renderer) writePie(w io.Writer, spec *model.ChartSpec) error {
	values := make([]gochart.Value, 0, len(spec.Points))
	for _, pt := range spec.Points {
		if pt.Value <= 0 {
			continue
		}
		values = append(values, gochart.Value{Value: pt.Value, Label: pt.Label})
	}
	if len(values) == 0 {
		return r.writePlot(w, spec, emptyPlot(spec))
	}

	pie := gochart.PieChart{
		Title:  spec.Title,
		Width:  r.width,
		Height: r.height(spec),
		Values: values,
	}
	if err := pie.Render(gochart.PNG, w); err != nil {
		return goerr.Wrap(err, "failed to render pie chart", goerr.V("tab", spec.Tab))
	}
	return nil
}
