// Package timezone pins the application wall clock. Appointment times are
// stored as naive local values, so every "now" the scheduling services feed
// into validation comes from here rather than time.Now directly.
//
// The location is read from APP_TIMEZONE at import time; use standard IANA
// names ("UTC", "Asia/Jakarta", "America/New_York"). Unset or invalid values
// fall back to UTC.
package timezone
