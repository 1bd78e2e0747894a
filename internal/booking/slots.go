// internal/booking/slots.go
package booking

import (
	"fmt"
	"time"
)

// SlotRequest describes one day's availability question for a single service.
type SlotRequest struct {
	OpensAt         string   // "HH:MM", 24h
	ClosesAt        string   // "HH:MM", 24h
	DurationMinutes int      // service length
	IntervalMinutes int      // spacing between candidate start times
	BookedStarts    []string // start times already taken, "HH:MM"
}

const clockLayout = "15:04"

// GenerateSlots returns the bookable start times for the request, in order.
// A slot is offered when the service fits fully before closing and the start
// time is not already booked. The result is never nil: a fully booked day is
// an empty list, not an error.
func GenerateSlots(req SlotRequest) ([]string, error) {
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("invalid service duration: %d", req.DurationMinutes)
	}
	if req.IntervalMinutes <= 0 {
		return nil, fmt.Errorf("invalid slot interval: %d", req.IntervalMinutes)
	}

	opens, err := time.Parse(clockLayout, req.OpensAt)
	if err != nil {
		return nil, fmt.Errorf("invalid opening time %q: %w", req.OpensAt, err)
	}
	closes, err := time.Parse(clockLayout, req.ClosesAt)
	if err != nil {
		return nil, fmt.Errorf("invalid closing time %q: %w", req.ClosesAt, err)
	}
	if !closes.After(opens) {
		return nil, fmt.Errorf("closing time %s is not after opening time %s", req.ClosesAt, req.OpensAt)
	}

	booked := make(map[string]bool, len(req.BookedStarts))
	for _, start := range req.BookedStarts {
		booked[start] = true
	}

	duration := time.Duration(req.DurationMinutes) * time.Minute
	interval := time.Duration(req.IntervalMinutes) * time.Minute

	slots := []string{}
	for start := opens; !start.Add(duration).After(closes); start = start.Add(interval) {
		label := start.Format(clockLayout)
		if booked[label] {
			continue
		}
		slots = append(slots, label)
	}
	return slots, nil
}
