// Package analytics implements the filter and aggregation stages of the
// dashboard pipeline. Every function is pure and safe for concurrent use.
package analytics

import (
	"github.com/secmon-lab/threatlens/pkg/domain/model"
)

// Aggregate runs the four chart aggregations over one filtered subset
func Aggregate(rows model.Subset, topN int) *model.Summaries {
	return &model.Summaries{
		LossByCountry:     LossByCountry(rows),
		LossByAttackType:  AverageLossByAttackType(rows),
		TopIndustryLosses: TopCountryIndustryLosses(rows, topN),
		Resolution:        ResolutionHeatmap(rows),
	}
}
