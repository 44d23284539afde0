package model

// CountryLoss is a row of the "Loss by Country" summary
type CountryLoss struct {
	Country   string  `json:"country"`
	TotalLoss float64 `json:"total_loss"`
}

// AttackTypeLoss is a row of the "Average Loss by Attack Type" summary
type AttackTypeLoss struct {
	AttackType  string  `json:"attack_type"`
	AverageLoss float64 `json:"average_loss"`
}

// CountryIndustryLoss is a row of the "Top Country-Industry Losses" summary
type CountryIndustryLoss struct {
	Country     string  `json:"country"`
	Industry    string  `json:"industry"`
	AverageLoss float64 `json:"average_loss"`
}

// Label returns the composite display label "Country – Industry"
func (l CountryIndustryLoss) Label() string {
	return l.Country + " – " + l.Industry
}

// ResolutionMatrix is mean resolution time per (vulnerability, defense) pair.
// Cells[i][j] is nil when VulnerabilityTypes[i] and DefenseMechanisms[j] never co-occur.
type ResolutionMatrix struct {
	VulnerabilityTypes []string     `json:"vulnerability_types"`
	DefenseMechanisms  []string     `json:"defense_mechanisms"`
	Cells              [][]*float64 `json:"cells"`
}

// IsEmpty reports whether the matrix has no rows
func (m *ResolutionMatrix) IsEmpty() bool {
	return m == nil || len(m.VulnerabilityTypes) == 0
}

// Dims returns the matrix dimensions as (rows, columns)
func (m *ResolutionMatrix) Dims() (int, int) {
	if m == nil {
		return 0, 0
	}
	return len(m.VulnerabilityTypes), len(m.DefenseMechanisms)
}

// ValueRange returns the smallest and largest populated cell. ok is false if no cell is populated.
func (m *ResolutionMatrix) ValueRange() (lo, hi float64, ok bool) {
	if m == nil {
		return 0, 0, false
	}
	for _, row := range m.Cells {
		for _, cell := range row {
			if cell == nil {
				continue
			}
			if !ok {
				lo, hi, ok = *cell, *cell, true
				continue
			}
			if *cell < lo {
				lo = *cell
			}
			if *cell > hi {
				hi = *cell
			}
		}
	}
	return lo, hi, ok
}

// Summaries bundles the four aggregation results of one render pass
type Summaries struct {
	LossByCountry     []CountryLoss
	LossByAttackType  []AttackTypeLoss
	TopIndustryLosses []CountryIndustryLoss
	Resolution        *ResolutionMatrix
}
