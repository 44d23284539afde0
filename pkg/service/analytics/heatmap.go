package analytics

import (
	"sort"

	"github.com/secmon-lab/threatlens/pkg/domain/model"
)

type vulnerabilityDefense struct {
	vulnerability string
	defense       string
}

// ResolutionHeatmap computes mean Incident Resolution Time per (Security
// Vulnerability Type, Defense Mechanism Used) pair as a matrix. Rows and
// columns are the distinct values present, in ascending order. Pairs that
// never co-occur are left nil. Rows missing either key or the resolution time
// do not count.
func ResolutionHeatmap(rows model.Subset) *model.ResolutionMatrix {
	groups := make(map[vulnerabilityDefense]*mean)
	vulnSet := make(map[string]bool)
	defenseSet := make(map[string]bool)

	for _, row := range rows {
		if row.VulnerabilityType == "" || row.DefenseMechanism == "" || !row.HasResolutionHours() {
			continue
		}
		key := vulnerabilityDefense{vulnerability: row.VulnerabilityType, defense: row.DefenseMechanism}
		g, ok := groups[key]
		if !ok {
			g = &mean{}
			groups[key] = g
		}
		g.add(row.ResolutionHours)
		vulnSet[row.VulnerabilityType] = true
		defenseSet[row.DefenseMechanism] = true
	}

	m := &model.ResolutionMatrix{
		VulnerabilityTypes: sortedKeys(vulnSet),
		DefenseMechanisms:  sortedKeys(defenseSet),
	}
	m.Cells = make([][]*float64, len(m.VulnerabilityTypes))
	for i, vuln := range m.VulnerabilityTypes {
		m.Cells[i] = make([]*float64, len(m.DefenseMechanisms))
		for j, defense := range m.DefenseMechanisms {
			if g, ok := groups[vulnerabilityDefense{vulnerability: vuln, defense: defense}]; ok {
				v := g.value()
				m.Cells[i][j] = &v
			}
		}
	}
	return m
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
