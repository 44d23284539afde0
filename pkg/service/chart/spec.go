// Package chart maps aggregation summaries to declarative chart
// specifications and draws them as PNG images.
package chart

import (
	"fmt"
	"sort"

	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/secmon-lab/threatlens/pkg/domain/types"
)

const (
	// PageTitle is shown above the dashboard tabs
	PageTitle = "Global Cybersecurity Threats Explorer"

	heatmapTextFormat = ".1f"
	heatmapScale      = "RdBu_r"
)

const (
	lossAxisTitle     = "Financial Loss (in Million $)"
	avgLossAxisTitle  = "Avg Loss (in Million $)"
	countryAxisTitle  = "Country"
	pairAxisTitle     = "Country – Industry"
	defenseAxisTitle  = "Defense Mechanism Used"
	vulnTypeAxisTitle = "Security Vulnerability Type"
)

// Build returns one chart specification per dashboard tab in display order
func Build(s *model.Summaries) []model.ChartSpec {
	return []model.ChartSpec{
		LossByCountry(s.LossByCountry),
		AverageLossByAttackType(s.LossByAttackType),
		TopCountryIndustry(s.TopIndustryLosses),
		ResolutionHeatmap(s.Resolution),
	}
}

// LossByCountry describes a horizontal bar chart of total loss per country.
// Bars are listed smallest first so the largest ends up at the top.
func LossByCountry(rows []model.CountryLoss) model.ChartSpec {
	points := make([]model.ChartPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, model.ChartPoint{
			Label: r.Country,
			Value: r.TotalLoss,
			Group: r.Country,
		})
	}
	sortAscending(points)

	return model.ChartSpec{
		Tab:           types.TabByCountry,
		TabName:       types.TabByCountry.Name(),
		Kind:          types.ChartKindBar,
		Title:         "Total Financial Loss by Country",
		Height:        600,
		Orientation:   "h",
		XAxis:         &model.Axis{Field: "total_loss", Title: lossAxisTitle},
		YAxis:         &model.Axis{Field: "country", Title: countryAxisTitle},
		ColorField:    "country",
		CategoryOrder: labels(points),
		Points:        points,
	}
}

// AverageLossByAttackType describes a pie chart of mean loss shares
func AverageLossByAttackType(rows []model.AttackTypeLoss) model.ChartSpec {
	points := make([]model.ChartPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, model.ChartPoint{
			Label: r.AttackType,
			Value: r.AverageLoss,
			Group: r.AttackType,
		})
	}

	return model.ChartSpec{
		Tab:           types.TabByAttackType,
		TabName:       types.TabByAttackType.Name(),
		Kind:          types.ChartKindPie,
		Title:         "Average Loss by Attack Type",
		Height:        500,
		ColorField:    "attack_type",
		CategoryOrder: labels(points),
		Points:        points,
	}
}

// TopCountryIndustry describes a horizontal bar chart of the highest mean
// loss country-industry pairs, colored by industry
func TopCountryIndustry(rows []model.CountryIndustryLoss) model.ChartSpec {
	points := make([]model.ChartPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, model.ChartPoint{
			Label: r.Label(),
			Value: r.AverageLoss,
			Group: r.Industry,
		})
	}
	sortAscending(points)

	return model.ChartSpec{
		Tab:           types.TabIndustryCountry,
		TabName:       types.TabIndustryCountry.Name(),
		Kind:          types.ChartKindBar,
		Title:         "Top 10 Country-Industry Cyber Losses",
		Height:        600,
		Orientation:   "h",
		XAxis:         &model.Axis{Field: "average_loss", Title: avgLossAxisTitle},
		YAxis:         &model.Axis{Field: "label", Title: pairAxisTitle},
		ColorField:    "target_industry",
		CategoryOrder: labels(points),
		Points:        points,
	}
}

// ResolutionHeatmap describes an annotated heatmap with a diverging scale
// centered on the midpoint of the observed values
func ResolutionHeatmap(m *model.ResolutionMatrix) model.ChartSpec {
	spec := model.ChartSpec{
		Tab:        types.TabResolutionHeatmap,
		TabName:    types.TabResolutionHeatmap.Name(),
		Kind:       types.ChartKindHeatmap,
		Title:      "Avg Resolution Time (hrs): Vulnerability vs Defense",
		Height:     600,
		XAxis:      &model.Axis{Field: "defense_mechanism", Title: defenseAxisTitle},
		YAxis:      &model.Axis{Field: "vulnerability_type", Title: vulnTypeAxisTitle},
		TextFormat: heatmapTextFormat,
		Heatmap: &model.HeatmapData{
			X:    []string{},
			Y:    []string{},
			Z:    [][]*float64{},
			Text: [][]string{},
		},
	}
	if m.IsEmpty() {
		return spec
	}

	spec.Heatmap.X = m.DefenseMechanisms
	spec.Heatmap.Y = m.VulnerabilityTypes
	spec.Heatmap.Z = m.Cells
	spec.Heatmap.Text = make([][]string, len(m.Cells))
	for i, row := range m.Cells {
		spec.Heatmap.Text[i] = make([]string, len(row))
		for j, cell := range row {
			if cell != nil {
				spec.Heatmap.Text[i][j] = fmt.Sprintf("%.1f", *cell)
			}
		}
	}

	if lo, hi, ok := m.ValueRange(); ok {
		spec.ColorScale = &model.ColorScale{
			Name:     heatmapScale,
			Min:      lo,
			Mid:      (lo + hi) / 2,
			Max:      hi,
			Reversed: true,
		}
	}
	return spec
}

func sortAscending(points []model.ChartPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value < points[j].Value
	})
}

func labels(points []model.ChartPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Label
	}
	return out
}
