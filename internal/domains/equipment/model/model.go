package model

import "courtside/shared/model"

const (
	TableName  = "equipment_pools"
	EntityName = "equipment_pool"

	FieldID         = "id"
	FieldKind       = "kind"
	FieldName       = "name"
	FieldTotalStock = "total_stock"
	FieldUnitPrice  = "unit_price"
)

// Pool kinds are stable identifiers; display names are free-form.
const (
	KindRacket = "racket"
	KindShoe   = "shoe"
)

// EquipmentPool tracks aggregate stock for one equipment kind. Availability is
// capacity against the pool total, not per-item identity.
type EquipmentPool struct {
	ID         string  `db:"id"`
	Kind       string  `db:"kind"`
	Name       string  `db:"name"`
	TotalStock int     `db:"total_stock"`
	UnitPrice  float64 `db:"unit_price"`
	model.Metadata
}
