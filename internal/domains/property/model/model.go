package model

import "stayhub/shared/model"

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID       = "id"
	FieldTenantID = "tenant_id"
	FieldName     = "name"
	FieldCity     = "city"
	FieldActive   = "active"
)

const (
	RoomTableName  = "rooms"
	RoomEntityName = "room"

	RoomFieldID         = "id"
	RoomFieldPropertyID = "property_id"
	RoomFieldName       = "name"
	RoomFieldCapacity   = "capacity"
	RoomFieldQty        = "qty"
	RoomFieldBasePrice  = "base_price"
	RoomFieldActive     = "active"
)

type Property struct {
	ID       string `db:"id"`
	TenantID string `db:"tenant_id"`
	Name     string `db:"name"`
	City     string `db:"city"`
	Active   bool   `db:"active"`
	model.Metadata
}

// Room is a bookable unit within a property. Qty is how many identical units the
// property offers; BasePrice is the undiscounted nightly rate.
type Room struct {
	ID         string  `db:"id"`
	PropertyID string  `db:"property_id"`
	Name       string  `db:"name"`
	Capacity   int     `db:"capacity"`
	Qty        int     `db:"qty"`
	BasePrice  float64 `db:"base_price"`
	Active     bool    `db:"active"`
	model.Metadata
}
