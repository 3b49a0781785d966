package model_test

import (
	"testing"

	"courtside/internal/domains/pricing/engine"
	"courtside/internal/domains/reservation/model"

	"github.com/stretchr/testify/assert"
)

func TestBreakdown_Value(t *testing.T) {
	breakdown := model.Breakdown{
		Breakdown: engine.Breakdown{
			BasePrice: 15,
			RuleAdjustments: []engine.Adjustment{
				{Name: "Peak Hours", Type: engine.AdjustmentMultiplier, Multiplier: 1.5, Before: 15, After: 22.5},
			},
			EquipmentFee: 10,
			CoachFee:     25,
			Total:        57.5,
		},
	}

	value, err := breakdown.Value()

	assert.NoError(t, err)

	raw, ok := value.([]byte)
	assert.True(t, ok)

	// The stored document keeps the response casing so reads never remap keys.
	assert.Contains(t, string(raw), `"basePrice":15`)
	assert.Contains(t, string(raw), `"ruleAdjustments"`)
	assert.Contains(t, string(raw), `"equipmentFee":10`)
	assert.Contains(t, string(raw), `"coachFee":25`)
	assert.Contains(t, string(raw), `"total":57.5`)
}

func TestBreakdown_Scan(t *testing.T) {
	raw := `{"basePrice":15,"ruleAdjustments":[{"name":"Peak Hours","type":"multiplier","multiplier":1.5,"before":15,"after":22.5}],"equipmentFee":0,"coachFee":0,"total":22.5}`

	var breakdown model.Breakdown

	assert.NoError(t, breakdown.Scan([]byte(raw)))
	assert.Equal(t, 15.0, breakdown.BasePrice)
	assert.Len(t, breakdown.RuleAdjustments, 1)
	assert.Equal(t, "Peak Hours", breakdown.RuleAdjustments[0].Name)
	assert.Equal(t, 22.5, breakdown.Total)
}

func TestBreakdown_ScanNil(t *testing.T) {
	var breakdown model.Breakdown

	assert.NoError(t, breakdown.Scan(nil))
	assert.Equal(t, 0.0, breakdown.Total)
}

func TestBreakdown_ScanInvalidType(t *testing.T) {
	var breakdown model.Breakdown

	assert.Error(t, breakdown.Scan(42))
}
