package analytics

import (
	"sort"

	"github.com/secmon-lab/threatlens/pkg/domain/model"
)

// DefaultTopN is the number of country-industry pairs kept for the ranking chart
const DefaultTopN = 10

type countryIndustry struct {
	country  string
	industry string
}

// TopCountryIndustryLosses returns up to n (Country, Target Industry) pairs
// with the largest mean Financial Loss, largest first. Equal means are ordered
// by country then industry name, which also decides membership at the cut.
// Rows missing either key or the loss do not count. n <= 0 uses DefaultTopN.
func TopCountryIndustryLosses(rows model.Subset, n int) []model.CountryIndustryLoss {
	if n <= 0 {
		n = DefaultTopN
	}

	groups := make(map[countryIndustry]*mean)
	for _, row := range rows {
		if row.Country == "" || row.TargetIndustry == "" || !row.HasFinancialLoss() {
			continue
		}
		key := countryIndustry{country: row.Country, industry: row.TargetIndustry}
		g, ok := groups[key]
		if !ok {
			g = &mean{}
			groups[key] = g
		}
		g.add(row.FinancialLoss)
	}

	result := make([]model.CountryIndustryLoss, 0, len(groups))
	for key, g := range groups {
		result = append(result, model.CountryIndustryLoss{
			Country:     key.country,
			Industry:    key.industry,
			AverageLoss: g.value(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.AverageLoss != b.AverageLoss {
			return a.AverageLoss > b.AverageLoss
		}
		if a.Country != b.Country {
			return a.Country < b.Country
		}
		return a.Industry < b.Industry
	})

	if len(result) > n {
		result = result[:n]
	}
	return result
}
