package model

import (
	"github.com/secmon-lab/threatlens/pkg/domain/types"
)

// ChartPoint is one row of the long-form table handed to the renderer
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Group string  `json:"group,omitempty"` // color grouping key
}

// Axis binds a chart axis to a field of the long-form table
type Axis struct {
	Field string `json:"field"`
	Title string `json:"title"`
}

// ColorScale describes a continuous color mapping
type ColorScale struct {
	Name     string  `json:"name"`
	Min      float64 `json:"min"`
	Mid      float64 `json:"mid"`
	Max      float64 `json:"max"`
	Reversed bool    `json:"reversed"`
}

// HeatmapData is the matrix payload of a heatmap chart.
// Z and Text share the shape len(Y) x len(X); a nil Z cell is drawn empty.
type HeatmapData struct {
	X    []string     `json:"x"`
	Y    []string     `json:"y"`
	Z    [][]*float64 `json:"z"`
	Text [][]string   `json:"text"`
}

// ChartSpec is a declarative description of one dashboard panel
type ChartSpec struct {
	Tab         types.TabID     `json:"tab"`
	TabName     string          `json:"tab_name"`
	Kind        types.ChartKind `json:"kind"`
	Title       string          `json:"title"`
	Height      int             `json:"height"`
	Orientation string          `json:"orientation,omitempty"` // "h" for horizontal bars
	XAxis       *Axis           `json:"x_axis,omitempty"`
	YAxis       *Axis           `json:"y_axis,omitempty"`
	ColorField  string          `json:"color_field,omitempty"`
	TextFormat  string          `json:"text_format,omitempty"`

	// CategoryOrder lists category labels bottom-to-top (bars) or legend order (pie)
	CategoryOrder []string     `json:"category_order,omitempty"`
	Points        []ChartPoint `json:"points,omitempty"`
	Heatmap       *HeatmapData `json:"heatmap,omitempty"`
	ColorScale    *ColorScale  `json:"color_scale,omitempty"`
}

// IsEmpty reports whether the chart has nothing to draw
func (s *ChartSpec) IsEmpty() bool {
	if s.Kind == types.ChartKindHeatmap {
		return s.Heatmap == nil || len(s.Heatmap.Y) == 0 || len(s.Heatmap.X) == 0
	}
	return len(s.Points) == 0
}

// Dashboard is the output of one render pass
type Dashboard struct {
	RenderID types.RenderID `json:"render_id"`
	Title    string         `json:"title"`
	Filter   Filter         `json:"filter"`
	RowCount int            `json:"row_count"`
	Charts   []ChartSpec    `json:"charts"`
}

// Chart returns the panel for a tab, or nil if absent
func (d *Dashboard) Chart(id types.TabID) *ChartSpec {
	for i := range d.Charts {
		if d.Charts[i].Tab == id {
			return &d.Charts[i]
		}
	}
	return nil
}
