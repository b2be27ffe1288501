package model

import "bookly/shared/model"

const (
	TableName  = "brands"
	EntityName = "brand"

	FieldID       = "id"
	FieldName     = "name"
	FieldSlug     = "slug"
	FieldTimezone = "timezone"
	FieldActive   = "active"
)

// Brand is an independent business account with its own calendar and
// booking policy.
type Brand struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Slug     string `db:"slug"`
	Timezone string `db:"timezone"`
	Active   bool   `db:"active"`
	model.Metadata
}
