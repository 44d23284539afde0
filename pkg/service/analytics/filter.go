package analytics

import (
	"github.com/secmon-lab/threatlens/pkg/domain/model"
)

// Filter returns the rows whose Year lies in [f.MinYear, f.MaxYear] and whose
// Country is one of f.Countries, preserving input order. An empty country set
// or an inverted range yields an empty subset. Rows without a year or a
// country never match.
func Filter(rows model.Subset, f model.Filter) model.Subset {
	result := make(model.Subset, 0)
	if f.IsInverted() || len(f.Countries) == 0 {
		return result
	}

	countries := f.CountrySet()
	for _, row := range rows {
		if !row.HasYear() || row.Country == "" {
			continue
		}
		if row.Year < f.MinYear || row.Year > f.MaxYear {
			continue
		}
		if !countries[row.Country] {
			continue
		}
		result = append(result, row)
	}
	return result
}
