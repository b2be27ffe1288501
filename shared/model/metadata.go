package model

import "time"

// Metadata carries the audit columns shared by every persisted row.
// CreatedAt and ModifiedAt are filled by database defaults; the db-tagged
// fields are written by the application.
type Metadata struct {
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}
