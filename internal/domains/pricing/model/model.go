package model

import (
	"courtside/internal/domains/pricing/engine"
	"courtside/shared/model"
)

const (
	TableName  = "pricing_rules"
	EntityName = "pricing_rule"

	FieldID            = "id"
	FieldName          = "name"
	FieldKind          = "kind"
	FieldStartHour     = "start_hour"
	FieldEndHour       = "end_hour"
	FieldMultiplier    = "multiplier"
	FieldSurcharge     = "surcharge"
	FieldCourtCategory = "court_category"
	FieldEnabled       = "enabled"
)

const (
	KindPeak      = "peak"
	KindWeekend   = "weekend"
	KindCourtType = "courtType"
	KindFixed     = "fixed"
)

// PricingRule is the persisted row. Kind-irrelevant columns are NULL; ToRule
// narrows the row into the engine's tagged union so the engine never sees an
// invalid combination.
type PricingRule struct {
	ID            string   `db:"id"`
	Name          string   `db:"name"`
	Kind          string   `db:"kind"`
	StartHour     *int     `db:"start_hour"`
	EndHour       *int     `db:"end_hour"`
	Multiplier    *float64 `db:"multiplier"`
	Surcharge     *float64 `db:"surcharge"`
	CourtCategory *string  `db:"court_category"`
	Enabled       bool     `db:"enabled"`
	model.Metadata
}

// ToRule converts the row to its engine representation. It returns false for
// disabled rows, unknown kinds, and peak rules missing their hour window.
func (r PricingRule) ToRule() (engine.Rule, bool) {
	if !r.Enabled {
		return nil, false
	}

	switch r.Kind {
	case KindPeak:
		if r.StartHour == nil || r.EndHour == nil {
			return nil, false
		}

		return engine.PeakRule{
			Name:       r.Name,
			StartHour:  *r.StartHour,
			EndHour:    *r.EndHour,
			Multiplier: presentValue(r.Multiplier),
			Surcharge:  presentValue(r.Surcharge),
		}, true
	case KindWeekend:
		return engine.WeekendRule{
			Name:       r.Name,
			Multiplier: presentValue(r.Multiplier),
			Surcharge:  presentValue(r.Surcharge),
		}, true
	case KindCourtType:
		if r.CourtCategory == nil {
			return nil, false
		}

		return engine.CourtTypeRule{
			Name:       r.Name,
			Category:   *r.CourtCategory,
			Multiplier: presentValue(r.Multiplier),
			Surcharge:  presentValue(r.Surcharge),
		}, true
	case KindFixed:
		surcharge := 0.0
		if r.Surcharge != nil {
			surcharge = *r.Surcharge
		}

		return engine.FixedRule{
			Name:      r.Name,
			Surcharge: surcharge,
		}, true
	default:
		return nil, false
	}
}

// ToRules converts rows in order, skipping the ones ToRule rejects.
func ToRules(rows []PricingRule) []engine.Rule {
	rules := make([]engine.Rule, 0, len(rows))

	for _, row := range rows {
		if rule, ok := row.ToRule(); ok {
			rules = append(rules, rule)
		}
	}

	return rules
}

// A zero multiplier or surcharge means "not set", matching the historical
// rule records where both columns defaulted to zero.
func presentValue(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}

	return v
}
