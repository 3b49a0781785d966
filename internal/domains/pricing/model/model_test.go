package model_test

import (
	"testing"

	"courtside/internal/domains/pricing/engine"
	"courtside/internal/domains/pricing/model"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestPricingRule_ToRule(t *testing.T) {
	tests := []struct {
		name     string
		rule     model.PricingRule
		wantOK   bool
		wantRule engine.Rule
	}{
		{
			name: "peak rule",
			rule: model.PricingRule{
				Name:       "Peak Hours",
				Kind:       model.KindPeak,
				StartHour:  intPtr(18),
				EndHour:    intPtr(21),
				Multiplier: floatPtr(1.5),
				Enabled:    true,
			},
			wantOK: true,
			wantRule: engine.PeakRule{
				Name:       "Peak Hours",
				StartHour:  18,
				EndHour:    21,
				Multiplier: floatPtr(1.5),
			},
		},
		{
			name: "weekend rule",
			rule: model.PricingRule{
				Name:      "Weekend Surcharge",
				Kind:      model.KindWeekend,
				Surcharge: floatPtr(5),
				Enabled:   true,
			},
			wantOK: true,
			wantRule: engine.WeekendRule{
				Name:      "Weekend Surcharge",
				Surcharge: floatPtr(5),
			},
		},
		{
			name: "court type rule",
			rule: model.PricingRule{
				Name:          "Indoor Premium",
				Kind:          model.KindCourtType,
				CourtCategory: strPtr("indoor"),
				Surcharge:     floatPtr(3),
				Enabled:       true,
			},
			wantOK: true,
			wantRule: engine.CourtTypeRule{
				Name:      "Indoor Premium",
				Category:  "indoor",
				Surcharge: floatPtr(3),
			},
		},
		{
			name: "fixed rule",
			rule: model.PricingRule{
				Name:      "Holiday Surcharge",
				Kind:      model.KindFixed,
				Surcharge: floatPtr(10),
				Enabled:   true,
			},
			wantOK: true,
			wantRule: engine.FixedRule{
				Name:      "Holiday Surcharge",
				Surcharge: 10,
			},
		},
		{
			name: "disabled rule",
			rule: model.PricingRule{
				Name:      "Holiday Surcharge",
				Kind:      model.KindFixed,
				Surcharge: floatPtr(10),
			},
			wantOK: false,
		},
		{
			name: "peak rule missing hours",
			rule: model.PricingRule{
				Name:       "Peak Hours",
				Kind:       model.KindPeak,
				Multiplier: floatPtr(1.5),
				Enabled:    true,
			},
			wantOK: false,
		},
		{
			name: "court type rule missing category",
			rule: model.PricingRule{
				Name:      "Indoor Premium",
				Kind:      model.KindCourtType,
				Surcharge: floatPtr(3),
				Enabled:   true,
			},
			wantOK: false,
		},
		{
			name: "unknown kind",
			rule: model.PricingRule{
				Name:    "Mystery",
				Kind:    "loyalty",
				Enabled: true,
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := tt.rule.ToRule()

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantRule, rule)
			}
		})
	}
}

func TestPricingRule_ToRule_ZeroValuesTreatedAsUnset(t *testing.T) {
	row := model.PricingRule{
		Name:       "Weekend Surcharge",
		Kind:       model.KindWeekend,
		Multiplier: floatPtr(0),
		Surcharge:  floatPtr(5),
		Enabled:    true,
	}

	rule, ok := row.ToRule()

	assert.True(t, ok)
	assert.Equal(t, engine.WeekendRule{Name: "Weekend Surcharge", Surcharge: floatPtr(5)}, rule)
}

func TestToRules_SkipsRejectedRowsPreservingOrder(t *testing.T) {
	rows := []model.PricingRule{
		{
			Name:       "Peak Hours",
			Kind:       model.KindPeak,
			StartHour:  intPtr(18),
			EndHour:    intPtr(21),
			Multiplier: floatPtr(1.5),
			Enabled:    true,
		},
		{
			Name:      "Holiday Surcharge",
			Kind:      model.KindFixed,
			Surcharge: floatPtr(10),
		},
		{
			Name:      "Weekend Surcharge",
			Kind:      model.KindWeekend,
			Surcharge: floatPtr(5),
			Enabled:   true,
		},
	}

	rules := model.ToRules(rows)

	assert.Len(t, rules, 2)
	assert.Equal(t, "Peak Hours", rules[0].RuleName())
	assert.Equal(t, "Weekend Surcharge", rules[1].RuleName())
}
