package analytics

import (
	"sort"

	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/shopspring/decimal"
)

// mean accumulates a running sum and count for one group
type mean struct {
	sum   decimal.Decimal
	count int64
}

func (m *mean) add(v float64) {
	m.sum = m.sum.Add(decimal.NewFromFloat(v))
	m.count++
}

func (m *mean) value() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum.Div(decimal.NewFromInt(m.count)).InexactFloat64()
}

// TotalLoss returns the summed Financial Loss of rows. Rows without a loss
// are skipped.
func TotalLoss(rows model.Subset) float64 {
	total := decimal.Zero
	for _, row := range rows {
		if !row.HasFinancialLoss() {
			continue
		}
		total = total.Add(decimal.NewFromFloat(row.FinancialLoss))
	}
	return total.InexactFloat64()
}

// LossByCountry sums Financial Loss per Country, largest first. Equal totals
// are ordered by country name. A missing loss counts as zero, so a country
// whose rows all lack one totals zero. Rows without a country are not grouped.
func LossByCountry(rows model.Subset) []model.CountryLoss {
	sums := make(map[string]decimal.Decimal)
	for _, row := range rows {
		if row.Country == "" {
			continue
		}
		sums[row.Country] = sums[row.Country].Add(decimal.NewFromFloat(row.FinancialLoss))
	}

	result := make([]model.CountryLoss, 0, len(sums))
	for country, sum := range sums {
		result = append(result, model.CountryLoss{
			Country:   country,
			TotalLoss: sum.InexactFloat64(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalLoss != result[j].TotalLoss {
			return result[i].TotalLoss > result[j].TotalLoss
		}
		return result[i].Country < result[j].Country
	})
	return result
}

// AverageLossByAttackType returns the mean Financial Loss per Attack Type in
// ascending attack type order. Only rows with an attack type and a loss count.
func AverageLossByAttackType(rows model.Subset) []model.AttackTypeLoss {
	groups := make(map[string]*mean)
	for _, row := range rows {
		if row.AttackType == "" || !row.HasFinancialLoss() {
			continue
		}
		g, ok := groups[row.AttackType]
		if !ok {
			g = &mean{}
			groups[row.AttackType] = g
		}
		g.add(row.FinancialLoss)
	}

	result := make([]model.AttackTypeLoss, 0, len(groups))
	for attackType, g := range groups {
		result = append(result, model.AttackTypeLoss{
			AttackType:  attackType,
			AverageLoss: g.value(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].AttackType < result[j].AttackType
	})
	return result
}
