package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/threatlens/pkg/domain/model"
)

func TestColumnMappingValidate(t *testing.T) {
	t.Run("default mapping is valid", func(t *testing.T) {
		gt.NoError(t, model.DefaultColumnMapping().Validate())
	})

	t.Run("missing required header", func(t *testing.T) {
		cols := model.DefaultColumnMapping()
		cols.FinancialLoss = ""
		err := cols.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("column header is required")
	})

	t.Run("optional headers may be empty", func(t *testing.T) {
		cols := model.DefaultColumnMapping()
		cols.AffectedUsers = ""
		cols.AttackSource = ""
		gt.NoError(t, cols.Validate())
	})

	t.Run("duplicate header", func(t *testing.T) {
		cols := model.DefaultColumnMapping()
		cols.AttackSource = cols.Country
		err := cols.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("duplicate column header")
	})
}

func TestColumnMappingMerge(t *testing.T) {
	cols := &model.ColumnMapping{Country: "Nation", FinancialLoss: "Loss (M$)"}
	cols.Merge(model.DefaultColumnMapping())

	gt.Equal(t, "Nation", cols.Country)
	gt.Equal(t, "Loss (M$)", cols.FinancialLoss)
	gt.Equal(t, "Year", cols.Year)
	gt.Equal(t, "Incident Resolution Time (in Hours)", cols.ResolutionHours)
	gt.NoError(t, cols.Validate())
}
