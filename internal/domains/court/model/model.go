package model

import "courtside/shared/model"

const (
	TableName  = "courts"
	EntityName = "court"

	FieldID        = "id"
	FieldName      = "name"
	FieldCategory  = "category"
	FieldBasePrice = "base_price"
	FieldImage     = "image"
)

const (
	CategoryIndoor  = "indoor"
	CategoryOutdoor = "outdoor"
)

type Court struct {
	ID        string  `db:"id"`
	Name      string  `db:"name"`
	Category  string  `db:"category"`
	BasePrice float64 `db:"base_price"`
	Image     string  `db:"image"`
	model.Metadata
}
