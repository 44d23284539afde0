package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// ChartKind is the visual form a chart specification asks the renderer for
type ChartKind string

const (
	ChartKindBar     ChartKind = "bar"
	ChartKindPie     ChartKind = "pie"
	ChartKindHeatmap ChartKind = "heatmap"
)

// String returns the string representation of the chart kind
func (k ChartKind) String() string {
	return string(k)
}

// IsValid checks if the chart kind is known
func (k ChartKind) IsValid() bool {
	switch k {
	case ChartKindBar, ChartKindPie, ChartKindHeatmap:
		return true
	default:
		return false
	}
}

// TabID identifies one of the dashboard panels
type TabID string

const (
	TabByCountry         TabID = "by-country"
	TabByAttackType      TabID = "by-attack-type"
	TabIndustryCountry   TabID = "industry-country"
	TabResolutionHeatmap TabID = "resolution-heatmap"
)

// AllTabs lists dashboard panels in display order
var AllTabs = []TabID{
	TabByCountry,
	TabByAttackType,
	TabIndustryCountry,
	TabResolutionHeatmap,
}

// String returns the string representation
func (id TabID) String() string {
	return string(id)
}

// Name returns the tab label shown to users
func (id TabID) Name() string {
	switch id {
	case TabByCountry:
		return "By Country"
	case TabByAttackType:
		return "By Attack Type"
	case TabIndustryCountry:
		return "Industry/Country"
	case TabResolutionHeatmap:
		return "Resolution Heatmap"
	default:
		return ""
	}
}

// ParseTabID converts a path segment into a TabID
func ParseTabID(s string) (TabID, error) {
	for _, id := range AllTabs {
		if string(id) == s {
			return id, nil
		}
	}
	return "", goerr.New("unknown tab", goerr.V("tab", s))
}
