package dto

import (
	"time"

	"courtside/internal/domains/pricing/engine"
	"courtside/internal/domains/reservation/model"
	"courtside/shared"
	gDto "courtside/shared/dto"
	gModel "courtside/shared/model"
	"courtside/shared/timezone"

	"github.com/google/uuid"
)

const defaultUserName = "Guest"

// CreateReservationRequest is also the estimate payload: an estimate is the
// same computation without the availability checks or the insert.
type CreateReservationRequest struct {
	UserName  string    `json:"user_name"  validate:"omitempty,max=100"`
	CourtID   string    `json:"court_id"   validate:"required,uuid"`
	CoachID   *string   `json:"coach_id"   validate:"omitempty,uuid"`
	Rackets   int       `json:"rackets"    validate:"omitempty,min=0"`
	Shoes     int       `json:"shoes"      validate:"omitempty,min=0"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time"   validate:"required"`
}

func (c *CreateReservationRequest) ToModel(breakdown engine.Breakdown, user string) model.Reservation {
	userName := c.UserName
	if userName == "" {
		userName = defaultUserName
	}

	return model.Reservation{
		ID:               uuid.NewString(),
		UserName:         userName,
		CourtID:          c.CourtID,
		CoachID:          c.CoachID,
		Rackets:          c.Rackets,
		Shoes:            c.Shoes,
		StartTime:        timezone.ToAppTime(c.StartTime),
		EndTime:          timezone.ToAppTime(c.EndTime),
		Status:           model.StatusConfirmed,
		PricingBreakdown: model.Breakdown{Breakdown: breakdown},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ReservationResponse struct {
	ID               string           `json:"id"`
	UserName         string           `json:"user_name"`
	CourtID          string           `json:"court_id"`
	CoachID          *string          `json:"coach_id,omitempty"`
	Rackets          int              `json:"rackets"`
	Shoes            int              `json:"shoes"`
	StartTime        time.Time        `json:"start_time"`
	EndTime          time.Time        `json:"end_time"`
	Status           string           `json:"status"`
	PricingBreakdown engine.Breakdown `json:"pricing_breakdown"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.UserName = model.UserName
	r.CourtID = model.CourtID
	r.CoachID = model.CoachID
	r.Rackets = model.Rackets
	r.Shoes = model.Shoes
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Status = model.Status
	r.PricingBreakdown = model.PricingBreakdown.Breakdown
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

type EstimateResponse struct {
	PricingBreakdown engine.Breakdown `json:"pricing_breakdown"`
}
