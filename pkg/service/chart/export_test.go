package chart

import "github.com/secmon-lab/threatlens/pkg/domain/model"

// HeatmapGridRows returns the Y labels and the Z values of column c in the
// order the heatmap grid draws them, bottom row first
func HeatmapGridRows(data *model.HeatmapData, c int) ([]string, []float64) {
	g := &heatGrid{data: data}
	_, rows := g.Dims()
	values := make([]float64, rows)
	for r := range values {
		values[r] = g.Z(c, r)
	}
	return g.labelsY(), values
}
