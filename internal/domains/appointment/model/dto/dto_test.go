package dto_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bookly/internal/domains/appointment/model"
	"bookly/internal/domains/appointment/model/dto"
	"bookly/internal/scheduling"
	"bookly/shared/validator"
)

func TestCreateAppointmentRequest_ToModel(t *testing.T) {
	req := dto.CreateAppointmentRequest{
		BrandID:    "brand-id",
		ClientName: "Jane Client",
		Date:       "2026-09-14",
		StartTime:  "10:00",
	}

	appointment, err := req.ToModel("user-id", 30)

	assert.NoError(t, err)
	assert.NotEmpty(t, appointment.ID)
	assert.Equal(t, "brand-id", appointment.BrandID)
	assert.Equal(t, string(scheduling.StatusPending), appointment.Status)
	assert.Equal(t, "2026-09-14 10:00", appointment.StartTime.Format("2006-01-02 15:04"))
	assert.Equal(t, 30*time.Minute, appointment.EndTime.Sub(appointment.StartTime))
	assert.Equal(t, "user-id", appointment.CreatedBy)
}

func TestCreateAppointmentRequest_ToModelExplicitDuration(t *testing.T) {
	req := dto.CreateAppointmentRequest{
		BrandID:         "brand-id",
		ClientName:      "Jane Client",
		Date:            "2026-09-14",
		StartTime:       "10:00",
		DurationMinutes: 45,
	}

	appointment, err := req.ToModel("user-id", 30)

	assert.NoError(t, err)
	assert.Equal(t, 45*time.Minute, appointment.EndTime.Sub(appointment.StartTime))
}

// Staff-created entries may leave the client unassigned.
func TestCreateAppointmentRequest_WithoutClient(t *testing.T) {
	body := strings.NewReader(`{"brand_id":"brand-id","date":"2026-09-14","start_time":"10:00"}`)

	var req dto.CreateAppointmentRequest
	assert.NoError(t, validator.Validate(body, &req))

	appointment, err := req.ToModel("staff-id", 30)

	assert.NoError(t, err)
	assert.Empty(t, appointment.ClientName)
	assert.Empty(t, appointment.ClientEmail)
	assert.Equal(t, string(scheduling.StatusPending), appointment.Status)
}

func TestCreateAppointmentRequest_ToModelBadDate(t *testing.T) {
	req := dto.CreateAppointmentRequest{
		BrandID:    "brand-id",
		ClientName: "Jane Client",
		Date:       "14-09-2026",
		StartTime:  "10:00",
	}

	_, err := req.ToModel("user-id", 30)

	assert.Error(t, err)
}

func TestRescheduleAppointmentRequest_WindowKeepsDuration(t *testing.T) {
	current := model.Appointment{
		StartTime: time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 14, 10, 45, 0, 0, time.UTC),
	}

	req := dto.RescheduleAppointmentRequest{Date: "2026-09-15", StartTime: "14:00"}

	start, end, err := req.Window(current)

	assert.NoError(t, err)
	assert.Equal(t, "2026-09-15 14:00", start.Format("2006-01-02 15:04"))
	assert.Equal(t, 45*time.Minute, end.Sub(start))
}

func TestAppointmentResponse_FromModel(t *testing.T) {
	appointment := model.Appointment{
		ID:         "appointment-id",
		BrandID:    "brand-id",
		ClientName: "Jane Client",
		StartTime:  time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC),
		Status:     string(scheduling.StatusConfirmed),
	}

	var res dto.AppointmentResponse
	res.FromModel(appointment)

	assert.Equal(t, "2026-09-14", res.Date)
	assert.Equal(t, "10:00", res.StartTime)
	assert.Equal(t, "10:30", res.EndTime)
	assert.Equal(t, 30, res.DurationMinutes)
	assert.Equal(t, "confirmed", res.Status)
}
