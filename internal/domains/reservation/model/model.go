package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"courtside/internal/domains/pricing/engine"
	"courtside/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID        = "id"
	FieldUserName  = "user_name"
	FieldCourtID   = "court_id"
	FieldCoachID   = "coach_id"
	FieldRackets   = "rackets"
	FieldShoes     = "shoes"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldStatus    = "status"
)

// Only confirmed rows are ever written today; the other statuses are reserved
// for lifecycle extensions and already excluded by the availability queries.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusWaitlist  = "waitlist"
)

var errBreakdownScan = errors.New("pricing breakdown column is not jsonb")

// Breakdown stores the priced quote as a jsonb column. The stored document is
// the exact breakdown computed at reservation time; it is never recomputed.
type Breakdown struct {
	engine.Breakdown
}

func (b Breakdown) Value() (driver.Value, error) {
	raw, err := json.Marshal(b.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pricing breakdown: %w", err)
	}

	return raw, nil
}

func (b *Breakdown) Scan(src any) error {
	var raw []byte

	switch value := src.(type) {
	case []byte:
		raw = value
	case string:
		raw = []byte(value)
	case nil:
		return nil
	default:
		return errBreakdownScan
	}

	if err := json.Unmarshal(raw, &b.Breakdown); err != nil {
		return fmt.Errorf("failed to unmarshal pricing breakdown: %w", err)
	}

	return nil
}

type Reservation struct {
	ID               string    `db:"id"`
	UserName         string    `db:"user_name"`
	CourtID          string    `db:"court_id"`
	CoachID          *string   `db:"coach_id"`
	Rackets          int       `db:"rackets"`
	Shoes            int       `db:"shoes"`
	StartTime        time.Time `db:"start_time"`
	EndTime          time.Time `db:"end_time"`
	Status           string    `db:"status"`
	PricingBreakdown Breakdown `db:"pricing_breakdown"`
	model.Metadata
}
