package model

import "courtside/shared/model"

const (
	TableName  = "coaches"
	EntityName = "coach"

	FieldID     = "id"
	FieldName   = "name"
	FieldFee    = "fee"
	FieldActive = "active"
)

type Coach struct {
	ID     string  `db:"id"`
	Name   string  `db:"name"`
	Fee    float64 `db:"fee"`
	Active bool    `db:"active"`
	model.Metadata
}
