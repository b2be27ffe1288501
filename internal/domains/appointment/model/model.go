package model

import (
	"time"

	"bookly/internal/scheduling"
	"bookly/shared/model"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID          = "id"
	FieldBrandID     = "brand_id"
	FieldClientName  = "client_name"
	FieldClientEmail = "client_email"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldStatus      = "status"
	FieldNotes       = "notes"
)

// Appointment times are naive wall-clock values in the brand's local time.
type Appointment struct {
	ID          string    `db:"id"`
	BrandID     string    `db:"brand_id"`
	ClientName  string    `db:"client_name"`
	ClientEmail string    `db:"client_email"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	Status      string    `db:"status"`
	Notes       string    `db:"notes"`
	model.Metadata
}

// ToEngine maps the row onto the scheduling engine's view of an appointment.
func (a *Appointment) ToEngine() scheduling.Appointment {
	return scheduling.Appointment{
		ID:     a.ID,
		Start:  a.StartTime,
		End:    a.EndTime,
		Status: scheduling.Status(a.Status),
	}
}
