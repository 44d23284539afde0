package chart_test

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/secmon-lab/threatlens/pkg/service/chart"
)

func decodePNG(t *testing.T, buf *bytes.Buffer) (int, int) {
	t.Helper()
	img, err := png.Decode(buf)
	gt.NoError(t, err).Required()
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestRendererRenderPNG(t *testing.T) {
	summaries := &model.Summaries{
		LossByCountry: []model.CountryLoss{
			{Country: "USA", TotalLoss: 8},
			{Country: "India", TotalLoss: 3},
		},
		LossByAttackType: []model.AttackTypeLoss{
			{AttackType: "DDoS", AverageLoss: 4},
			{AttackType: "Phishing", AverageLoss: 15},
		},
		TopIndustryLosses: []model.CountryIndustryLoss{
			{Country: "USA", Industry: "IT", AverageLoss: 8},
			{Country: "India", Industry: "Retail", AverageLoss: 3},
		},
		Resolution: &model.ResolutionMatrix{
			VulnerabilityTypes: []string{"Zero-day", "Weak Passwords"},
			DefenseMechanisms:  []string{"VPN"},
			Cells:              [][]*float64{{ptr(10)}, {nil}},
		},
	}

	r := chart.NewRenderer(chart.WithWidth(400))
	for _, spec := range chart.Build(summaries) {
		t.Run(spec.Tab.String(), func(t *testing.T) {
			var buf bytes.Buffer
			gt.NoError(t, r.RenderPNG(&buf, &spec))
			w, h := decodePNG(t, &buf)
			gt.True(t, w >= 399 && w <= 401)
			gt.True(t, h > 0)
		})
	}
}

func TestRendererEmptyCharts(t *testing.T) {
	r := chart.NewRenderer(chart.WithWidth(300))
	for _, spec := range chart.Build(&model.Summaries{}) {
		t.Run(spec.Tab.String(), func(t *testing.T) {
			var buf bytes.Buffer
			gt.NoError(t, r.RenderPNG(&buf, &spec))
			gt.True(t, buf.Len() > 0)
		})
	}
}

func TestRendererSingleValueHeatmap(t *testing.T) {
	spec := chart.ResolutionHeatmap(&model.ResolutionMatrix{
		VulnerabilityTypes: []string{"Zero-day"},
		DefenseMechanisms:  []string{"VPN", "Firewall"},
		Cells:              [][]*float64{{ptr(5), ptr(5)}},
	})

	var buf bytes.Buffer
	gt.NoError(t, chart.NewRenderer().RenderPNG(&buf, &spec))
	gt.True(t, buf.Len() > 0)
}

func TestHeatmapFirstRowOnTop(t *testing.T) {
	data := &model.HeatmapData{
		X: []string{"VPN"},
		Y: []string{"A", "B", "C"},
		Z: [][]*float64{{ptr(1)}, {nil}, {ptr(3)}},
	}

	labels, values := chart.HeatmapGridRows(data, 0)
	gt.Equal(t, []string{"C", "B", "A"}, labels)
	gt.A(t, values).Length(3)
	gt.Equal(t, 3.0, values[0])
	gt.True(t, math.IsNaN(values[1]))
	gt.Equal(t, 1.0, values[2])
}

func TestRendererZeroPie(t *testing.T) {
	spec := chart.AverageLossByAttackType([]model.AttackTypeLoss{{AttackType: "DDoS", AverageLoss: 0}})

	var buf bytes.Buffer
	gt.NoError(t, chart.NewRenderer().RenderPNG(&buf, &spec))
	gt.True(t, buf.Len() > 0)
}
