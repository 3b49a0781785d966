package dto

import (
	"courtside/internal/domains/coach/model"
	"courtside/shared"
	gDto "courtside/shared/dto"
	gModel "courtside/shared/model"
	"courtside/shared/timezone"

	"github.com/google/uuid"
)

type CreateCoachRequest struct {
	Name   string  `json:"name"   validate:"required,max=100"`
	Fee    float64 `json:"fee"    validate:"omitempty,min=0"`
	Active *bool   `json:"active" validate:"omitempty"`
}

func (c *CreateCoachRequest) ToModel(user string) model.Coach {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Coach{
		ID:     uuid.NewString(),
		Name:   c.Name,
		Fee:    c.Fee,
		Active: active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCoachRequest struct {
	Name   string   `db:"name"   json:"name"   validate:"omitempty,max=100"`
	Fee    *float64 `db:"fee"    json:"fee"    validate:"omitempty,min=0"`
	Active *bool    `db:"active" json:"active" validate:"omitempty"`
}

type CoachResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Fee    float64 `json:"fee"`
	Active bool    `json:"active"`
	gDto.Metadata
}

func (r *CoachResponse) FromModel(model model.Coach) {
	r.ID = model.ID
	r.Name = model.Name
	r.Fee = model.Fee
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetCoachesResponse struct {
	Coaches   []CoachResponse `json:"coaches"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetCoachesResponse) FromModels(models []model.Coach, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Coaches = make([]CoachResponse, len(models))
	for i, mod := range models {
		r.Coaches[i].FromModel(mod)
	}
}
