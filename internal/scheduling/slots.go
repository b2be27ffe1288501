package scheduling

// Slot is one candidate bookable interval of fixed duration. Slots are
// derived on demand and never persisted.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

const slotReasonBooked = "booked"

// GenerateSlots enumerates the candidate slots of durationMinutes inside the
// resolved window, in order, marking each as available unless an existing
// appointment occupies it. The cursor advances by duration plus buffer after
// every emitted slot, occupied or not, so the spacing between slots is
// stable regardless of occupancy. A closed day yields an empty list: no
// availability is a normal outcome, not an error.
//
// The buffer is enforced only between generated slots; existing
// appointments' own trailing gaps are not reconstructed here.
func GenerateSlots(window DayWindow, durationMinutes, bufferMinutes int, existing []Appointment) ([]Slot, error) {
	if durationMinutes <= 0 || bufferMinutes < 0 {
		return nil, ErrInvalidDuration
	}

	slots := []Slot{}
	if !window.IsOpen {
		return slots, nil
	}

	booked := make([][2]ClockTime, 0, len(existing))

	for _, appointment := range existing {
		if !appointment.Status.CountsForConflict() {
			continue
		}

		booked = append(booked, [2]ClockTime{ClockOf(appointment.Start), ClockOf(appointment.End)})
	}

	duration := ClockTime(durationMinutes)
	step := ClockTime(durationMinutes + bufferMinutes)

	for cursor := window.Open; cursor+duration <= window.Close; cursor += step {
		slot := Slot{Time: cursor.String(), Available: true}

		for _, interval := range booked {
			if ClockOverlaps(cursor, cursor+duration, interval[0], interval[1]) {
				slot.Available = false
				slot.Reason = slotReasonBooked

				break
			}
		}

		slots = append(slots, slot)
	}

	return slots, nil
}
