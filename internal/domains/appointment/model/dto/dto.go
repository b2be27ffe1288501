package dto

import (
	"time"

	"bookly/internal/domains/appointment/model"
	"bookly/internal/scheduling"
	"bookly/shared"
	gDto "bookly/shared/dto"
	gModel "bookly/shared/model"
	"bookly/shared/timezone"

	"github.com/google/uuid"
)

const (
	dateLayout     = "2006-01-02"
	clockLayout    = "15:04"
	dateTimeLayout = "2006-01-02 15:04"
)

type CreateAppointmentRequest struct {
	BrandID         string `json:"brand_id"         validate:"required"`
	ClientName      string `json:"client_name"      validate:"omitempty,max=100"`
	ClientEmail     string `json:"client_email"     validate:"omitempty,email,max=100"`
	Date            string `json:"date"             validate:"required,datetime=2006-01-02"`
	StartTime       string `json:"start_time"       validate:"required,datetime=15:04"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=15,max=480"`
	Notes           string `json:"notes"            validate:"omitempty,max=1000"`
}

// ToModel builds the appointment row. Duration falls back to the brand's
// default when the request leaves it unset.
func (c *CreateAppointmentRequest) ToModel(user string, defaultDurationMinutes int) (model.Appointment, error) {
	start, err := time.Parse(dateTimeLayout, c.Date+" "+c.StartTime)
	if err != nil {
		return model.Appointment{}, err
	}

	duration := c.DurationMinutes
	if duration == 0 {
		duration = defaultDurationMinutes
	}

	return model.Appointment{
		ID:          uuid.NewString(),
		BrandID:     c.BrandID,
		ClientName:  c.ClientName,
		ClientEmail: c.ClientEmail,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(duration) * time.Minute),
		Status:      string(scheduling.InitialStatus),
		Notes:       c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type RescheduleAppointmentRequest struct {
	Date            string `json:"date"             validate:"required,datetime=2006-01-02"`
	StartTime       string `json:"start_time"       validate:"required,datetime=15:04"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=15,max=480"`
}

// Window resolves the requested interval, keeping the current duration when
// the request does not override it.
func (r *RescheduleAppointmentRequest) Window(current model.Appointment) (start, end time.Time, err error) {
	start, err = time.Parse(dateTimeLayout, r.Date+" "+r.StartTime)
	if err != nil {
		return start, end, err
	}

	duration := time.Duration(r.DurationMinutes) * time.Minute
	if r.DurationMinutes == 0 {
		duration = current.EndTime.Sub(current.StartTime)
	}

	return start, start.Add(duration), nil
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed in_progress completed cancelled no_show"`
}

type UpdateAppointmentNotesRequest struct {
	ClientName  string `db:"client_name"  json:"client_name"  validate:"omitempty,max=100"`
	ClientEmail string `db:"client_email" json:"client_email" validate:"omitempty,email,max=100"`
	Notes       string `db:"notes"        json:"notes"        validate:"omitempty,max=1000"`
}

type RejectionResponse struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type AppointmentResponse struct {
	ID              string `json:"id"`
	BrandID         string `json:"brand_id"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email,omitempty"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	Notes           string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.BrandID = model.BrandID
	r.ClientName = model.ClientName
	r.ClientEmail = model.ClientEmail
	r.Date = model.StartTime.Format(dateLayout)
	r.StartTime = model.StartTime.Format(clockLayout)
	r.EndTime = model.EndTime.Format(clockLayout)
	r.DurationMinutes = int(model.EndTime.Sub(model.StartTime).Minutes())
	r.Status = model.Status
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}

type DayAvailabilityResponse struct {
	BrandID string            `json:"brand_id"`
	Date    string            `json:"date"`
	IsOpen  bool              `json:"is_open"`
	Reason  string            `json:"reason,omitempty"`
	Slots   []scheduling.Slot `json:"slots"`
}
