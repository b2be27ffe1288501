package dto

import (
	"time"

	"bookly/internal/domains/schedule/model"
	gModel "bookly/shared/model"
	"bookly/shared/timezone"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type DayHoursRequest struct {
	Weekday   *int   `json:"weekday"    validate:"required,min=0,max=6"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time"  validate:"required_if=IsOpen true,omitempty,datetime=15:04"`
	CloseTime string `json:"close_time" validate:"required_if=IsOpen true,omitempty,datetime=15:04"`
}

type UpdateWeeklyHoursRequest struct {
	Days []DayHoursRequest `json:"days" validate:"required,min=1,max=7,dive"`
}

func (d *DayHoursRequest) ToModel(brandID, user string) model.WeeklyHours {
	return model.WeeklyHours{
		ID:        uuid.NewString(),
		BrandID:   brandID,
		Weekday:   *d.Weekday,
		IsOpen:    d.IsOpen,
		OpenTime:  d.OpenTime,
		CloseTime: d.CloseTime,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type WeeklyHoursResponse struct {
	Weekday   int    `json:"weekday"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time,omitempty"`
	CloseTime string `json:"close_time,omitempty"`
}

type GetWeeklyHoursResponse struct {
	BrandID string                `json:"brand_id"`
	Days    []WeeklyHoursResponse `json:"days"`
}

func (r *GetWeeklyHoursResponse) FromModels(brandID string, models []model.WeeklyHours) {
	r.BrandID = brandID

	r.Days = make([]WeeklyHoursResponse, len(models))
	for i, mod := range models {
		r.Days[i] = WeeklyHoursResponse{
			Weekday:   mod.Weekday,
			IsOpen:    mod.IsOpen,
			OpenTime:  mod.OpenTime,
			CloseTime: mod.CloseTime,
		}
	}
}

type UpsertDateExceptionRequest struct {
	Date      string `json:"date"       validate:"required,datetime=2006-01-02"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time"  validate:"required_if=IsOpen true,omitempty,datetime=15:04"`
	CloseTime string `json:"close_time" validate:"required_if=IsOpen true,omitempty,datetime=15:04"`
	Reason    string `json:"reason"     validate:"omitempty,max=255"`
}

func (c *UpsertDateExceptionRequest) ToModel(brandID, user string) (model.DateException, error) {
	date, err := time.Parse(dateLayout, c.Date)
	if err != nil {
		return model.DateException{}, err
	}

	return model.DateException{
		ID:        uuid.NewString(),
		BrandID:   brandID,
		Date:      date,
		IsOpen:    c.IsOpen,
		OpenTime:  c.OpenTime,
		CloseTime: c.CloseTime,
		Reason:    c.Reason,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type DateExceptionResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time,omitempty"`
	CloseTime string `json:"close_time,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

func (r *DateExceptionResponse) FromModel(model model.DateException) {
	r.ID = model.ID
	r.Date = model.Date.Format(dateLayout)
	r.IsOpen = model.IsOpen
	r.OpenTime = model.OpenTime
	r.CloseTime = model.CloseTime
	r.Reason = model.Reason
}

type GetDateExceptionsResponse struct {
	BrandID    string                  `json:"brand_id"`
	Exceptions []DateExceptionResponse `json:"exceptions"`
}

func (r *GetDateExceptionsResponse) FromModels(brandID string, models []model.DateException) {
	r.BrandID = brandID

	r.Exceptions = make([]DateExceptionResponse, len(models))
	for i, mod := range models {
		r.Exceptions[i].FromModel(mod)
	}
}

type UpdateBookingPolicyRequest struct {
	DefaultDurationMinutes *int  `db:"default_duration_minutes"  json:"default_duration_minutes"  validate:"omitempty,min=15,max=480"`
	BufferMinutes          *int  `db:"buffer_minutes"            json:"buffer_minutes"            validate:"omitempty,min=0"`
	MaxAdvanceBookingDays  *int  `db:"max_advance_booking_days"  json:"max_advance_booking_days"  validate:"omitempty,min=0"`
	MinAdvanceBookingHours *int  `db:"min_advance_booking_hours" json:"min_advance_booking_hours" validate:"omitempty,min=0"`
	AllowSameDayBooking    *bool `db:"allow_same_day_booking"    json:"allow_same_day_booking"    validate:"omitempty"`
}

type BookingPolicyResponse struct {
	BrandID                string `json:"brand_id"`
	DefaultDurationMinutes int    `json:"default_duration_minutes"`
	BufferMinutes          int    `json:"buffer_minutes"`
	MaxAdvanceBookingDays  int    `json:"max_advance_booking_days"`
	MinAdvanceBookingHours int    `json:"min_advance_booking_hours"`
	AllowSameDayBooking    bool   `json:"allow_same_day_booking"`
}

func (r *BookingPolicyResponse) FromModel(model model.BookingPolicy) {
	r.BrandID = model.BrandID
	r.DefaultDurationMinutes = model.DefaultDurationMinutes
	r.BufferMinutes = model.BufferMinutes
	r.MaxAdvanceBookingDays = model.MaxAdvanceBookingDays
	r.MinAdvanceBookingHours = model.MinAdvanceBookingHours
	r.AllowSameDayBooking = model.AllowSameDayBooking
}
