package model

import (
	"time"

	"bookly/shared/model"
)

const (
	WeeklyHoursTableName  = "weekly_hours"
	WeeklyHoursEntityName = "weekly_hours"

	DateExceptionTableName  = "date_exceptions"
	DateExceptionEntityName = "date_exception"

	BookingPolicyTableName  = "booking_policies"
	BookingPolicyEntityName = "booking_policy"

	FieldID        = "id"
	FieldBrandID   = "brand_id"
	FieldWeekday   = "weekday"
	FieldIsOpen    = "is_open"
	FieldOpenTime  = "open_time"
	FieldCloseTime = "close_time"
	FieldDate      = "date"
	FieldReason    = "reason"
)

// WeeklyHours is one brand's default schedule for a single day of week.
// Weekday follows time.Weekday numbering (Sunday = 0). Open/close times are
// stored as HH:MM strings and parsed into the scheduling engine's clock type
// when a calendar snapshot is assembled.
type WeeklyHours struct {
	ID        string `db:"id"`
	BrandID   string `db:"brand_id"`
	Weekday   int    `db:"weekday"`
	IsOpen    bool   `db:"is_open"`
	OpenTime  string `db:"open_time"`
	CloseTime string `db:"close_time"`
	model.Metadata
}

// DateException is a one-off override for a specific calendar date, at most
// one per (brand, date). It fully replaces the weekly entry for that date.
type DateException struct {
	ID        string    `db:"id"`
	BrandID   string    `db:"brand_id"`
	Date      time.Time `db:"date"`
	IsOpen    bool      `db:"is_open"`
	OpenTime  string    `db:"open_time"`
	CloseTime string    `db:"close_time"`
	Reason    string    `db:"reason"`
	model.Metadata
}

// BookingPolicy holds one brand's booking rules, keyed by brand.
type BookingPolicy struct {
	BrandID                string `db:"brand_id"`
	DefaultDurationMinutes int    `db:"default_duration_minutes"`
	BufferMinutes          int    `db:"buffer_minutes"`
	MaxAdvanceBookingDays  int    `db:"max_advance_booking_days"`
	MinAdvanceBookingHours int    `db:"min_advance_booking_hours"`
	AllowSameDayBooking    bool   `db:"allow_same_day_booking"`
	model.Metadata
}
