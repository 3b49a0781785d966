// Package engine computes reservation price breakdowns. Quote is a pure
// function of its inputs: the same court, quantities, interval and rule
// sequence always produce a bit-identical breakdown, so the server's
// authoritative computation and any advisory estimate agree exactly.
package engine

import (
	"math"
	"time"
)

// Pool kinds the engine charges for.
const (
	PoolRacket PoolKind = "racket"
	PoolShoe   PoolKind = "shoe"
)

// Legacy unit prices used only when no pool is supplied for a kind.
const (
	defaultRacketPrice = 5
	defaultShoePrice   = 10
)

type PoolKind string

// Pool carries the per-unit rental price of one equipment kind.
type Pool struct {
	UnitPrice float64
}

type Court struct {
	Category  string
	BasePrice float64
}

type Coach struct {
	Fee float64
}

// Input is one price computation request. StartTime must already be in the
// reference timezone; the hour-of-day and day-of-week that rules match on are
// derived from it directly. Rules are evaluated in the exact order given.
type Input struct {
	Court     Court
	Rackets   int
	Shoes     int
	Coach     *Coach
	StartTime time.Time
	EndTime   time.Time
	Rules     []Rule
	Pools     map[PoolKind]Pool
}

type Adjustment struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Multiplier float64 `json:"multiplier,omitempty"`
	Surcharge  float64 `json:"surcharge,omitempty"`
	Before     float64 `json:"before,omitempty"`
	After      float64 `json:"after,omitempty"`
}

type Breakdown struct {
	BasePrice       float64      `json:"basePrice"`
	RuleAdjustments []Adjustment `json:"ruleAdjustments"`
	EquipmentFee    float64      `json:"equipmentFee"`
	CoachFee        float64      `json:"coachFee"`
	Total           float64      `json:"total"`
}

// Quote computes the full price breakdown for a reservation request.
func Quote(in Input) Breakdown {
	breakdown := Breakdown{
		BasePrice:       in.Court.BasePrice,
		RuleAdjustments: []Adjustment{},
	}

	current := breakdown.BasePrice

	slot := Slot{
		Hour:          in.StartTime.Hour(),
		Weekday:       in.StartTime.Weekday(),
		CourtCategory: in.Court.Category,
	}

	for _, rule := range in.Rules {
		var adjustments []Adjustment

		current, adjustments = rule.apply(slot, current)
		breakdown.RuleAdjustments = append(breakdown.RuleAdjustments, adjustments...)
	}

	breakdown.EquipmentFee = float64(in.Rackets)*unitPrice(in.Pools, PoolRacket, defaultRacketPrice) +
		float64(in.Shoes)*unitPrice(in.Pools, PoolShoe, defaultShoePrice)
	current += breakdown.EquipmentFee

	if in.Coach != nil {
		breakdown.CoachFee = in.Coach.Fee
		current += breakdown.CoachFee
	}

	breakdown.Total = round2(current)

	return breakdown
}

func unitPrice(pools map[PoolKind]Pool, kind PoolKind, fallback float64) float64 {
	if pool, ok := pools[kind]; ok {
		return pool.UnitPrice
	}

	return fallback
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
