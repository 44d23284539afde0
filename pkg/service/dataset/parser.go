package dataset

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/xuri/excelize/v2"
)

// ParseWorkbook decodes an .xlsx workbook into incidents. The first row of
// the sheet is the header; columns are located by header name. An empty
// sheet name selects the first sheet. Rows whose cells are all blank are
// skipped. Every failure is tagged model.ErrTagParse.
func ParseWorkbook(r io.Reader, columns *model.ColumnMapping, sheet string) ([]model.Incident, error) {
	if columns == nil {
		columns = model.DefaultColumnMapping()
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open workbook", goerr.T(model.ErrTagParse))
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, goerr.New("workbook has no sheets", goerr.T(model.ErrTagParse))
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read sheet",
			goerr.V("sheet", sheet),
			goerr.T(model.ErrTagParse))
	}
	if len(rows) == 0 {
		return nil, goerr.New("sheet has no header row",
			goerr.V("sheet", sheet),
			goerr.T(model.ErrTagParse))
	}

	idx, err := newColumnIndex(rows[0], columns)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid sheet header",
			goerr.V("sheet", sheet),
			goerr.T(model.ErrTagParse))
	}

	incidents := make([]model.Incident, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}

		inc, err := idx.incident(row)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid incident row",
				goerr.V("sheet", sheet),
				goerr.V("row", i+2), // sheet row number, header is row 1
				goerr.T(model.ErrTagParse))
		}
		incidents = append(incidents, inc)
	}

	return incidents, nil
}

// columnIndex holds the position of each mapped header; -1 means absent
type columnIndex struct {
	country           int
	year              int
	attackType        int
	targetIndustry    int
	financialLoss     int
	affectedUsers     int
	attackSource      int
	vulnerabilityType int
	defenseMechanism  int
	resolutionHours   int
}

func newColumnIndex(header []string, columns *model.ColumnMapping) (*columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, exists := positions[name]; !exists {
			positions[name] = i
		}
	}

	for field, name := range columns.Required() {
		if _, ok := positions[name]; !ok {
			return nil, goerr.New("required column is missing",
				goerr.V("field", field),
				goerr.V("header", name))
		}
	}

	lookup := func(name string) int {
		if name == "" {
			return -1
		}
		if pos, ok := positions[name]; ok {
			return pos
		}
		return -1
	}

	return &columnIndex{
		country:           lookup(columns.Country),
		year:              lookup(columns.Year),
		attackType:        lookup(columns.AttackType),
		targetIndustry:    lookup(columns.TargetIndustry),
		financialLoss:     lookup(columns.FinancialLoss),
		affectedUsers:     lookup(columns.AffectedUsers),
		attackSource:      lookup(columns.AttackSource),
		vulnerabilityType: lookup(columns.VulnerabilityType),
		defenseMechanism:  lookup(columns.DefenseMechanism),
		resolutionHours:   lookup(columns.ResolutionHours),
	}, nil
}

func (c *columnIndex) incident(row []string) (model.Incident, error) {
	var inc model.Incident
	var err error

	inc.Country = cell(row, c.country)
	inc.AttackType = cell(row, c.attackType)
	inc.TargetIndustry = cell(row, c.targetIndustry)
	inc.AttackSource = cell(row, c.attackSource)
	inc.VulnerabilityType = cell(row, c.vulnerabilityType)
	inc.DefenseMechanism = cell(row, c.defenseMechanism)

	var ok bool
	if inc.Year, ok, err = parseInt(cell(row, c.year), "year"); err != nil {
		return inc, err
	} else if !ok {
		inc.Missing |= model.FieldYear
	}
	if inc.FinancialLoss, ok, err = parseFloat(cell(row, c.financialLoss), "financial_loss"); err != nil {
		return inc, err
	} else if !ok {
		inc.Missing |= model.FieldFinancialLoss
	}
	if inc.ResolutionHours, ok, err = parseFloat(cell(row, c.resolutionHours), "resolution_hours"); err != nil {
		return inc, err
	} else if !ok {
		inc.Missing |= model.FieldResolutionHours
	}
	if inc.AffectedUsers, _, err = parseInt(cell(row, c.affectedUsers), "affected_users"); err != nil {
		return inc, err
	}

	return inc, nil
}

func cell(row []string, pos int) string {
	if pos < 0 || pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseFloat reads a numeric cell. A blank cell is not an error; ok is
// false and the value is zero.
func parseFloat(s, field string) (v float64, ok bool, err error) {
	if s == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, goerr.New("value is not a number",
			goerr.V("field", field),
			goerr.V("value", s))
	}
	return v, true, nil
}

// parseInt accepts integral values written as floats ("2019.0"), which is
// how some spreadsheet writers store whole numbers
func parseInt(s, field string) (int, bool, error) {
	v, ok, err := parseFloat(s, field)
	if err != nil || !ok {
		return 0, ok, err
	}
	if v != math.Trunc(v) {
		return 0, false, goerr.New("value is not an integer",
			goerr.V("field", field),
			goerr.V("value", s))
	}
	return int(v), true, nil
}
