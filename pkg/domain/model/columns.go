package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// ColumnMapping maps incident fields to workbook header names
type ColumnMapping struct {
	Country           string `yaml:"country"`
	Year              string `yaml:"year"`
	AttackType        string `yaml:"attack_type"`
	TargetIndustry    string `yaml:"target_industry"`
	FinancialLoss     string `yaml:"financial_loss"`
	AffectedUsers     string `yaml:"affected_users"`
	AttackSource      string `yaml:"attack_source"`
	VulnerabilityType string `yaml:"vulnerability_type"`
	DefenseMechanism  string `yaml:"defense_mechanism"`
	ResolutionHours   string `yaml:"resolution_hours"`
}

// DefaultColumnMapping returns the headers of the published threats workbook
func DefaultColumnMapping() *ColumnMapping {
	return &ColumnMapping{
		Country:           "Country",
		Year:              "Year",
		AttackType:        "Attack Type",
		TargetIndustry:    "Target Industry",
		FinancialLoss:     "Financial Loss (in Million $)",
		AffectedUsers:     "Number of Affected Users",
		AttackSource:      "Attack Source",
		VulnerabilityType: "Security Vulnerability Type",
		DefenseMechanism:  "Defense Mechanism Used",
		ResolutionHours:   "Incident Resolution Time (in Hours)",
	}
}

// Required returns the headers the aggregation pipeline cannot work without
func (c *ColumnMapping) Required() map[string]string {
	return map[string]string{
		"country":            c.Country,
		"year":               c.Year,
		"attack_type":        c.AttackType,
		"target_industry":    c.TargetIndustry,
		"financial_loss":     c.FinancialLoss,
		"vulnerability_type": c.VulnerabilityType,
		"defense_mechanism":  c.DefenseMechanism,
		"resolution_hours":   c.ResolutionHours,
	}
}

// Merge fills empty fields from base
func (c *ColumnMapping) Merge(base *ColumnMapping) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Country, base.Country)
	fill(&c.Year, base.Year)
	fill(&c.AttackType, base.AttackType)
	fill(&c.TargetIndustry, base.TargetIndustry)
	fill(&c.FinancialLoss, base.FinancialLoss)
	fill(&c.AffectedUsers, base.AffectedUsers)
	fill(&c.AttackSource, base.AttackSource)
	fill(&c.VulnerabilityType, base.VulnerabilityType)
	fill(&c.DefenseMechanism, base.DefenseMechanism)
	fill(&c.ResolutionHours, base.ResolutionHours)
}

// Validate validates the column mapping
func (c *ColumnMapping) Validate() error {
	for field, header := range c.Required() {
		if header == "" {
			return goerr.New("column header is required", goerr.V("field", field))
		}
	}

	seen := make(map[string]string)
	all := c.Required()
	if c.AffectedUsers != "" {
		all["affected_users"] = c.AffectedUsers
	}
	if c.AttackSource != "" {
		all["attack_source"] = c.AttackSource
	}
	for field, header := range all {
		if other, exists := seen[header]; exists {
			return goerr.New("duplicate column header",
				goerr.V("header", header),
				goerr.V("field", field),
				goerr.V("other_field", other))
		}
		seen[header] = field
	}

	return nil
}
