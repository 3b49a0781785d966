package dto

import (
	"courtside/internal/domains/equipment/model"
	"courtside/shared"
	gDto "courtside/shared/dto"
	gModel "courtside/shared/model"
	"courtside/shared/timezone"

	"github.com/google/uuid"
)

type CreateEquipmentRequest struct {
	Kind       string  `json:"kind"        validate:"required,oneof=racket shoe"`
	Name       string  `json:"name"        validate:"required,max=100"`
	TotalStock int     `json:"total_stock" validate:"omitempty,min=0"`
	UnitPrice  float64 `json:"unit_price"  validate:"omitempty,min=0"`
}

func (c *CreateEquipmentRequest) ToModel(user string) model.EquipmentPool {
	return model.EquipmentPool{
		ID:         uuid.NewString(),
		Kind:       c.Kind,
		Name:       c.Name,
		TotalStock: c.TotalStock,
		UnitPrice:  c.UnitPrice,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEquipmentRequest struct {
	Name       string   `db:"name"        json:"name"        validate:"omitempty,max=100"`
	TotalStock *int     `db:"total_stock" json:"total_stock" validate:"omitempty,min=0"`
	UnitPrice  *float64 `db:"unit_price"  json:"unit_price"  validate:"omitempty,min=0"`
}

type EquipmentResponse struct {
	ID         string  `json:"id"`
	Kind       string  `json:"kind"`
	Name       string  `json:"name"`
	TotalStock int     `json:"total_stock"`
	UnitPrice  float64 `json:"unit_price"`
	gDto.Metadata
}

func (r *EquipmentResponse) FromModel(model model.EquipmentPool) {
	r.ID = model.ID
	r.Kind = model.Kind
	r.Name = model.Name
	r.TotalStock = model.TotalStock
	r.UnitPrice = model.UnitPrice
	r.Metadata.FromModel(model.Metadata)
}

type GetEquipmentResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
	TotalPage int                 `json:"total_page"`
	TotalData int                 `json:"total_data"`
}

func (r *GetEquipmentResponse) FromModels(models []model.EquipmentPool, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Equipment = make([]EquipmentResponse, len(models))
	for i, mod := range models {
		r.Equipment[i].FromModel(mod)
	}
}
