package engine

import "time"

const (
	AdjustmentMultiplier = "multiplier"
	AdjustmentSurcharge  = "surcharge"
)

// Slot captures the properties of a reservation interval that rules can match
// on. Hour and Weekday are taken from the interval's start instant in the
// reference timezone.
type Slot struct {
	Hour          int
	Weekday       time.Weekday
	CourtCategory string
}

// Rule is one enabled pricing rule. Each kind carries only its own
// parameters, so invalid combinations cannot be represented.
type Rule interface {
	RuleName() string
	apply(slot Slot, current float64) (float64, []Adjustment)
}

// PeakRule matches when the slot's start hour falls in [StartHour, EndHour).
// A window spanning midnight must be expressed as two rules. A multiplier is
// applied before the surcharge.
type PeakRule struct {
	Name       string
	StartHour  int
	EndHour    int
	Multiplier *float64
	Surcharge  *float64
}

func (r PeakRule) RuleName() string { return r.Name }

func (r PeakRule) apply(slot Slot, current float64) (float64, []Adjustment) {
	if slot.Hour < r.StartHour || slot.Hour >= r.EndHour {
		return current, nil
	}

	var adjustments []Adjustment

	if r.Multiplier != nil {
		before := current
		current *= *r.Multiplier
		adjustments = append(adjustments, Adjustment{
			Name:       r.Name,
			Type:       AdjustmentMultiplier,
			Multiplier: *r.Multiplier,
			Before:     before,
			After:      current,
		})
	}

	if r.Surcharge != nil {
		current += *r.Surcharge
		adjustments = append(adjustments, Adjustment{
			Name:      r.Name,
			Type:      AdjustmentSurcharge,
			Surcharge: *r.Surcharge,
		})
	}

	return current, adjustments
}

// WeekendRule matches when the slot starts on Saturday or Sunday. Unlike
// PeakRule, the surcharge is applied before the multiplier. The asymmetry is
// deliberate: stored breakdowns and client-side estimates depend on it.
type WeekendRule struct {
	Name       string
	Multiplier *float64
	Surcharge  *float64
}

func (r WeekendRule) RuleName() string { return r.Name }

func (r WeekendRule) apply(slot Slot, current float64) (float64, []Adjustment) {
	if slot.Weekday != time.Saturday && slot.Weekday != time.Sunday {
		return current, nil
	}

	return applySurchargeThenMultiplier(r.Name, r.Surcharge, r.Multiplier, current)
}

// CourtTypeRule matches when the rule's category equals the court's category.
// Same surcharge-before-multiplier order as WeekendRule.
type CourtTypeRule struct {
	Name       string
	Category   string
	Multiplier *float64
	Surcharge  *float64
}

func (r CourtTypeRule) RuleName() string { return r.Name }

func (r CourtTypeRule) apply(slot Slot, current float64) (float64, []Adjustment) {
	if r.Category == "" || r.Category != slot.CourtCategory {
		return current, nil
	}

	return applySurchargeThenMultiplier(r.Name, r.Surcharge, r.Multiplier, current)
}

// FixedRule applies its surcharge unconditionally.
type FixedRule struct {
	Name      string
	Surcharge float64
}

func (r FixedRule) RuleName() string { return r.Name }

func (r FixedRule) apply(_ Slot, current float64) (float64, []Adjustment) {
	if r.Surcharge == 0 {
		return current, nil
	}

	current += r.Surcharge

	return current, []Adjustment{{
		Name:      r.Name,
		Type:      AdjustmentSurcharge,
		Surcharge: r.Surcharge,
	}}
}

func applySurchargeThenMultiplier(name string, surcharge, multiplier *float64, current float64) (float64, []Adjustment) {
	var adjustments []Adjustment

	if surcharge != nil {
		current += *surcharge
		adjustments = append(adjustments, Adjustment{
			Name:      name,
			Type:      AdjustmentSurcharge,
			Surcharge: *surcharge,
		})
	}

	if multiplier != nil {
		before := current
		current *= *multiplier
		adjustments = append(adjustments, Adjustment{
			Name:       name,
			Type:       AdjustmentMultiplier,
			Multiplier: *multiplier,
			Before:     before,
			After:      current,
		})
	}

	return current, adjustments
}
