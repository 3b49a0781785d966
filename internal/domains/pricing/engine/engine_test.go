package engine_test

import (
	"testing"
	"time"

	"courtside/internal/domains/pricing/engine"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

// Saturday and Monday evenings in the same week.
var (
	saturdayEvening = time.Date(2026, time.January, 3, 19, 0, 0, 0, time.UTC)
	mondayEvening   = time.Date(2026, time.January, 5, 19, 0, 0, 0, time.UTC)
	mondayAfternoon = time.Date(2026, time.January, 5, 14, 0, 0, 0, time.UTC)
)

func TestQuote_BaseOnly(t *testing.T) {
	breakdown := engine.Quote(engine.Input{
		Court:     engine.Court{Category: "indoor", BasePrice: 15},
		StartTime: mondayAfternoon,
		EndTime:   mondayAfternoon.Add(time.Hour),
	})

	assert.Equal(t, 15.0, breakdown.BasePrice)
	assert.Empty(t, breakdown.RuleAdjustments)
	assert.Equal(t, 0.0, breakdown.EquipmentFee)
	assert.Equal(t, 0.0, breakdown.CoachFee)
	assert.Equal(t, 15.0, breakdown.Total)
}

func TestQuote_FullStack(t *testing.T) {
	rules := []engine.Rule{
		engine.PeakRule{Name: "Peak Hours", StartHour: 18, EndHour: 21, Multiplier: floatPtr(1.5)},
		engine.WeekendRule{Name: "Weekend Surcharge", Surcharge: floatPtr(5)},
		engine.CourtTypeRule{Name: "Indoor Premium", Category: "indoor", Surcharge: floatPtr(3)},
	}

	breakdown := engine.Quote(engine.Input{
		Court:     engine.Court{Category: "indoor", BasePrice: 15},
		Rackets:   2,
		Coach:     &engine.Coach{Fee: 25},
		StartTime: saturdayEvening,
		EndTime:   saturdayEvening.Add(time.Hour),
		Rules:     rules,
		Pools: map[engine.PoolKind]engine.Pool{
			engine.PoolRacket: {UnitPrice: 5},
			engine.PoolShoe:   {UnitPrice: 10},
		},
	})

	// 15 * 1.5 = 22.5, + 5 = 27.5, + 3 = 30.5, + 10 equipment + 25 coach.
	assert.Equal(t, 15.0, breakdown.BasePrice)
	assert.Len(t, breakdown.RuleAdjustments, 3)
	assert.Equal(t, 10.0, breakdown.EquipmentFee)
	assert.Equal(t, 25.0, breakdown.CoachFee)
	assert.Equal(t, 65.5, breakdown.Total)
}

func TestQuote_AdjustmentsRecordRuleOrder(t *testing.T) {
	rules := []engine.Rule{
		engine.PeakRule{Name: "Peak Hours", StartHour: 18, EndHour: 21, Multiplier: floatPtr(1.5)},
		engine.WeekendRule{Name: "Weekend Surcharge", Surcharge: floatPtr(5)},
	}

	breakdown := engine.Quote(engine.Input{
		Court:     engine.Court{Category: "outdoor", BasePrice: 10},
		StartTime: saturdayEvening,
		EndTime:   saturdayEvening.Add(time.Hour),
		Rules:     rules,
	})

	assert.Len(t, breakdown.RuleAdjustments, 2)

	first := breakdown.RuleAdjustments[0]
	assert.Equal(t, "Peak Hours", first.Name)
	assert.Equal(t, engine.AdjustmentMultiplier, first.Type)
	assert.Equal(t, 10.0, first.Before)
	assert.Equal(t, 15.0, first.After)

	second := breakdown.RuleAdjustments[1]
	assert.Equal(t, "Weekend Surcharge", second.Name)
	assert.Equal(t, engine.AdjustmentSurcharge, second.Type)
	assert.Equal(t, 5.0, second.Surcharge)

	assert.Equal(t, 20.0, breakdown.Total)
}

func TestQuote_PeakHourBoundaries(t *testing.T) {
	rule := engine.PeakRule{Name: "Peak Hours", StartHour: 18, EndHour: 21, Multiplier: floatPtr(1.5)}

	tests := []struct {
		name      string
		hour      int
		wantTotal float64
	}{
		{name: "hour before window", hour: 17, wantTotal: 10},
		{name: "window start inclusive", hour: 18, wantTotal: 15},
		{name: "inside window", hour: 20, wantTotal: 15},
		{name: "window end exclusive", hour: 21, wantTotal: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Date(2026, time.January, 5, tt.hour, 0, 0, 0, time.UTC)

			breakdown := engine.Quote(engine.Input{
				Court:     engine.Court{Category: "outdoor", BasePrice: 10},
				StartTime: start,
				EndTime:   start.Add(time.Hour),
				Rules:     []engine.Rule{rule},
			})

			assert.Equal(t, tt.wantTotal, breakdown.Total)
		})
	}
}

// Peak rules multiply before adding; weekend and court-type rules add before
// multiplying. The two orders give different totals from the same parameters,
// and stored breakdowns depend on which rule kind produced them.
func TestQuote_OperationOrderPerKind(t *testing.T) {
	peak := engine.Quote(engine.Input{
		Court:     engine.Court{Category: "outdoor", BasePrice: 10},
		StartTime: mondayEvening,
		EndTime:   mondayEvening.Add(time.Hour),
		Rules: []engine.Rule{
			engine.PeakRule{Name: "Peak", StartHour: 18, EndHour: 21, Multiplier: floatPtr(2), Surcharge: floatPtr(3)},
		},
	})

	weekend := engine.Quote(engine.Input{
		Court:     engine.Court{Category: "outdoor", BasePrice: 10},
		StartTime: saturdayEvening,
		EndTime:   saturdayEvening.Add(time.Hour),
		Rules: []engine.Rule{
			engine.WeekendRule{Name: "Weekend", Multiplier: floatPtr(2), Surcharge: floatPtr(3)},
		},
	})

	assert.Equal(t, 23.0, peak.Total)    // (10 * 2) + 3
	assert.Equal(t, 26.0, weekend.Total) // (10 + 3) * 2
}

func TestQuote_WeekendRuleSkipsWeekdays(t *testing.T) {
	breakdown := engine.Quote(engine.Input{
		Court:     engine.Court{Category: "outdoor", BasePrice: 10},
		StartTime: mondayEvening,
		EndTime:   mondayEvening.Add(time.Hour),
		Rules:     []engine.Rule{engine.WeekendRule{Name: "Weekend Surcharge", Surcharge: floatPtr(5)}},
	})

	assert.Empty(t, breakdown.RuleAdjustments)
	assert.Equal(t, 10.0, breakdown.Total)
}

func TestQuote_CourtTypeRuleMatchesCategoryOnly(t *testing.T) {
	rule := engine.CourtTypeRule{Name: "Indoor Premium", Category: "indoor", Surcharge: floatPtr(3)}

	indoor := engine.Quote(engine.Input{
		Court:     engine.Court{Category: "indoor", BasePrice: 15},
		StartTime: mondayAfternoon,
		EndTime:   mondayAfternoon.Add(time.Hour),
		Rules:     []engine.Rule{rule},
	})

	outdoor := engine.Quote(engine.Input{
		Court:     engine.Court{Category: "outdoor", BasePrice: 10},
		StartTime: mondayAfternoon,
		EndTime:   mondayAfternoon.Add(time.Hour),
		Rules:     []engine.Rule{rule},
	})

	assert.Equal(t, 18.0, indoor.Total)
	assert.Equal(t, 10.0, outdoor.Total)
}

func TestQuote_FixedRuleAppliesUnconditionally(t *testing.T) {
	breakdown := engine.Quote(engine.Input{
		Court:     engine.Court{Category: "outdoor", BasePrice: 10},
		StartTime: mondayAfternoon,
		EndTime:   mondayAfternoon.Add(time.Hour),
		Rules:     []engine.Rule{engine.FixedRule{Name: "Holiday Surcharge", Surcharge: 10}},
	})

	assert.Equal(t, 20.0, breakdown.Total)
	assert.Len(t, breakdown.RuleAdjustments, 1)
}

func TestQuote_FixedRuleZeroSurchargeSkipped(t *testing.T) {
	breakdown := engine.Quote(engine.Input{
		Court:     engine.Court{Category: "outdoor", BasePrice: 10},
		StartTime: mondayAfternoon,
		EndTime:   mondayAfternoon.Add(time.Hour),
		Rules:     []engine.Rule{engine.FixedRule{Name: "Noop"}},
	})

	assert.Empty(t, breakdown.RuleAdjustments)
	assert.Equal(t, 10.0, breakdown.Total)
}

func TestQuote_EquipmentFallbackPrices(t *testing.T) {
	breakdown := engine.Quote(engine.Input{
		Court:     engine.Court{Category: "outdoor", BasePrice: 10},
		Rackets:   2,
		Shoes:     1,
		StartTime: mondayAfternoon,
		EndTime:   mondayAfternoon.Add(time.Hour),
	})

	// Missing pools fall back to 5 per racket and 10 per pair of shoes.
	assert.Equal(t, 20.0, breakdown.EquipmentFee)
	assert.Equal(t, 30.0, breakdown.Total)
}

func TestQuote_PoolPricesOverrideFallback(t *testing.T) {
	breakdown := engine.Quote(engine.Input{
		Court:     engine.Court{Category: "outdoor", BasePrice: 10},
		Rackets:   2,
		Shoes:     1,
		StartTime: mondayAfternoon,
		EndTime:   mondayAfternoon.Add(time.Hour),
		Pools: map[engine.PoolKind]engine.Pool{
			engine.PoolRacket: {UnitPrice: 7},
			engine.PoolShoe:   {UnitPrice: 12},
		},
	})

	assert.Equal(t, 26.0, breakdown.EquipmentFee)
	assert.Equal(t, 36.0, breakdown.Total)
}

func TestQuote_TotalRoundedToCents(t *testing.T) {
	breakdown := engine.Quote(engine.Input{
		Court:     engine.Court{Category: "outdoor", BasePrice: 10.333},
		StartTime: mondayEvening,
		EndTime:   mondayEvening.Add(time.Hour),
		Rules: []engine.Rule{
			engine.PeakRule{Name: "Peak", StartHour: 18, EndHour: 21, Multiplier: floatPtr(1.5)},
		},
	})

	assert.Equal(t, 15.5, breakdown.Total)
}

func TestQuote_Deterministic(t *testing.T) {
	input := engine.Input{
		Court:     engine.Court{Category: "indoor", BasePrice: 15},
		Rackets:   1,
		Shoes:     2,
		Coach:     &engine.Coach{Fee: 20},
		StartTime: saturdayEvening,
		EndTime:   saturdayEvening.Add(2 * time.Hour),
		Rules: []engine.Rule{
			engine.PeakRule{Name: "Peak Hours", StartHour: 18, EndHour: 21, Multiplier: floatPtr(1.5)},
			engine.WeekendRule{Name: "Weekend Surcharge", Surcharge: floatPtr(5)},
			engine.CourtTypeRule{Name: "Indoor Premium", Category: "indoor", Surcharge: floatPtr(3)},
		},
	}

	assert.Equal(t, engine.Quote(input), engine.Quote(input))
}
