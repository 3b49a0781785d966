package dto

import (
	"mime/multipart"

	"courtside/internal/domains/court/model"
	"courtside/shared"
	gDto "courtside/shared/dto"
	gModel "courtside/shared/model"
	"courtside/shared/timezone"

	"github.com/google/uuid"
)

type CreateCourtRequest struct {
	Name      string                `json:"name"       validate:"required,max=100"`
	Category  string                `json:"category"   validate:"required,oneof=indoor outdoor"`
	BasePrice float64               `json:"base_price" validate:"omitempty,min=0"`
	Image     *multipart.FileHeader `json:"image"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
}

func (c *CreateCourtRequest) ToModel(user, imageURL string) model.Court {
	return model.Court{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Category:  c.Category,
		BasePrice: c.BasePrice,
		Image:     imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCourtRequest struct {
	Name      string                `db:"name"       json:"name"       validate:"omitempty,max=100"`
	Category  string                `db:"category"   json:"category"   validate:"omitempty,oneof=indoor outdoor"`
	BasePrice *float64              `db:"base_price" json:"base_price" validate:"omitempty,min=0"`
	Image     *multipart.FileHeader `json:"image"    validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
}

type CourtResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	BasePrice float64 `json:"base_price"`
	Image     string  `json:"image"`
	gDto.Metadata
}

func (r *CourtResponse) FromModel(model model.Court) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.BasePrice = model.BasePrice
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetCourtsResponse struct {
	Courts    []CourtResponse `json:"courts"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetCourtsResponse) FromModels(models []model.Court, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Courts = make([]CourtResponse, len(models))
	for i, mod := range models {
		r.Courts[i].FromModel(mod)
	}
}
