package dto

import (
	"courtside/internal/domains/pricing/model"
	"courtside/shared"
	gDto "courtside/shared/dto"
	gModel "courtside/shared/model"
	"courtside/shared/timezone"

	"github.com/google/uuid"
)

type CreatePricingRuleRequest struct {
	Name          string   `json:"name"           validate:"required,max=100"`
	Kind          string   `json:"kind"           validate:"required,oneof=peak weekend courtType fixed"`
	StartHour     *int     `json:"start_hour"     validate:"required_if=Kind peak,omitempty,min=0,max=23"`
	EndHour       *int     `json:"end_hour"       validate:"required_if=Kind peak,omitempty,min=1,max=24"`
	Multiplier    *float64 `json:"multiplier"     validate:"omitempty,gt=0"`
	Surcharge     *float64 `json:"surcharge"      validate:"omitempty,min=0"`
	CourtCategory *string  `json:"court_category" validate:"required_if=Kind courtType,omitempty,oneof=indoor outdoor"`
	Enabled       *bool    `json:"enabled"        validate:"omitempty"`
}

func (c *CreatePricingRuleRequest) ToModel(user string) model.PricingRule {
	enabled := true
	if c.Enabled != nil {
		enabled = *c.Enabled
	}

	return model.PricingRule{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Kind:          c.Kind,
		StartHour:     c.StartHour,
		EndHour:       c.EndHour,
		Multiplier:    c.Multiplier,
		Surcharge:     c.Surcharge,
		CourtCategory: c.CourtCategory,
		Enabled:       enabled,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdatePricingRuleRequest never changes a rule's kind. Reshaping a rule into
// another kind invalidates stored breakdowns, so that path is create-and-disable.
type UpdatePricingRuleRequest struct {
	Name          string   `db:"name"           json:"name"           validate:"omitempty,max=100"`
	StartHour     *int     `db:"start_hour"     json:"start_hour"     validate:"omitempty,min=0,max=23"`
	EndHour       *int     `db:"end_hour"       json:"end_hour"       validate:"omitempty,min=1,max=24"`
	Multiplier    *float64 `db:"multiplier"     json:"multiplier"     validate:"omitempty,gt=0"`
	Surcharge     *float64 `db:"surcharge"      json:"surcharge"      validate:"omitempty,min=0"`
	CourtCategory *string  `db:"court_category" json:"court_category" validate:"omitempty,oneof=indoor outdoor"`
	Enabled       *bool    `db:"enabled"        json:"enabled"        validate:"omitempty"`
}

type PricingRuleResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Kind          string   `json:"kind"`
	StartHour     *int     `json:"start_hour,omitempty"`
	EndHour       *int     `json:"end_hour,omitempty"`
	Multiplier    *float64 `json:"multiplier,omitempty"`
	Surcharge     *float64 `json:"surcharge,omitempty"`
	CourtCategory *string  `json:"court_category,omitempty"`
	Enabled       bool     `json:"enabled"`
	gDto.Metadata
}

func (r *PricingRuleResponse) FromModel(model model.PricingRule) {
	r.ID = model.ID
	r.Name = model.Name
	r.Kind = model.Kind
	r.StartHour = model.StartHour
	r.EndHour = model.EndHour
	r.Multiplier = model.Multiplier
	r.Surcharge = model.Surcharge
	r.CourtCategory = model.CourtCategory
	r.Enabled = model.Enabled
	r.Metadata.FromModel(model.Metadata)
}

type GetPricingRulesResponse struct {
	PricingRules []PricingRuleResponse `json:"pricing_rules"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetPricingRulesResponse) FromModels(models []model.PricingRule, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.PricingRules = make([]PricingRuleResponse, len(models))
	for i, mod := range models {
		r.PricingRules[i].FromModel(mod)
	}
}
