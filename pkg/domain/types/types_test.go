package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/threatlens/pkg/domain/types"
)

func TestChartKindValidation(t *testing.T) {
	tests := []struct {
		name     string
		kind     types.ChartKind
		expected bool
	}{
		{"Valid bar", types.ChartKindBar, true},
		{"Valid pie", types.ChartKindPie, true},
		{"Valid heatmap", types.ChartKindHeatmap, true},
		{"Invalid empty", types.ChartKind(""), false},
		{"Invalid mixed case", types.ChartKind("Bar"), false},
		{"Invalid unknown", types.ChartKind("line"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.kind.IsValid()
			if result != tt.expected {
				t.Errorf("ChartKind(%q).IsValid() = %v, want %v", tt.kind, result, tt.expected)
			}
		})
	}
}

func TestTabName(t *testing.T) {
	tests := []struct {
		id       types.TabID
		expected string
	}{
		{types.TabByCountry, "By Country"},
		{types.TabByAttackType, "By Attack Type"},
		{types.TabIndustryCountry, "Industry/Country"},
		{types.TabResolutionHeatmap, "Resolution Heatmap"},
		{types.TabID("other"), ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			gt.Equal(t, tt.expected, tt.id.Name())
		})
	}
}

func TestParseTabID(t *testing.T) {
	t.Run("known tabs round trip", func(t *testing.T) {
		for _, id := range types.AllTabs {
			parsed, err := types.ParseTabID(id.String())
			gt.NoError(t, err)
			gt.Equal(t, id, parsed)
		}
	})

	t.Run("unknown tab is rejected", func(t *testing.T) {
		_, err := types.ParseTabID("by-planet")
		gt.Error(t, err)
	})
}

func TestNewRenderID(t *testing.T) {
	a := types.NewRenderID()
	b := types.NewRenderID()
	gt.NotEqual(t, a, b)
	gt.Equal(t, 36, len(a.String()))
}
