// internal/booking/slots_test.go
package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name     string
		req      SlotRequest
		expected []string
	}{
		{
			name: "full open day",
			req: SlotRequest{
				OpensAt:         "09:00",
				ClosesAt:        "11:00",
				DurationMinutes: 30,
				IntervalMinutes: 30,
			},
			expected: []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name: "last slot must finish before closing",
			req: SlotRequest{
				OpensAt:         "09:00",
				ClosesAt:        "10:45",
				DurationMinutes: 30,
				IntervalMinutes: 30,
			},
			expected: []string{"09:00", "09:30", "10:00"},
		},
		{
			name: "booked starts are skipped",
			req: SlotRequest{
				OpensAt:         "09:00",
				ClosesAt:        "11:00",
				DurationMinutes: 30,
				IntervalMinutes: 30,
				BookedStarts:    []string{"09:30", "10:30"},
			},
			expected: []string{"09:00", "10:00"},
		},
		{
			name: "interval shorter than duration overlaps candidates",
			req: SlotRequest{
				OpensAt:         "09:00",
				ClosesAt:        "10:00",
				DurationMinutes: 45,
				IntervalMinutes: 15,
			},
			expected: []string{"09:00", "09:15"},
		},
		{
			name: "service longer than the whole day",
			req: SlotRequest{
				OpensAt:         "09:00",
				ClosesAt:        "10:00",
				DurationMinutes: 90,
				IntervalMinutes: 30,
			},
			expected: []string{},
		},
		{
			name: "fully booked day is empty not nil",
			req: SlotRequest{
				OpensAt:         "09:00",
				ClosesAt:        "10:00",
				DurationMinutes: 30,
				IntervalMinutes: 30,
				BookedStarts:    []string{"09:00", "09:30"},
			},
			expected: []string{},
		},
		{
			name: "exact fit at closing time is offered",
			req: SlotRequest{
				OpensAt:         "09:00",
				ClosesAt:        "09:30",
				DurationMinutes: 30,
				IntervalMinutes: 30,
			},
			expected: []string{"09:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateSlots(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, slots)
		})
	}
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  SlotRequest
	}{
		{
			name: "zero duration",
			req:  SlotRequest{OpensAt: "09:00", ClosesAt: "17:00", DurationMinutes: 0, IntervalMinutes: 30},
		},
		{
			name: "negative interval",
			req:  SlotRequest{OpensAt: "09:00", ClosesAt: "17:00", DurationMinutes: 30, IntervalMinutes: -15},
		},
		{
			name: "malformed opening time",
			req:  SlotRequest{OpensAt: "9am", ClosesAt: "17:00", DurationMinutes: 30, IntervalMinutes: 30},
		},
		{
			name: "malformed closing time",
			req:  SlotRequest{OpensAt: "09:00", ClosesAt: "25:99", DurationMinutes: 30, IntervalMinutes: 30},
		},
		{
			name: "closes before it opens",
			req:  SlotRequest{OpensAt: "17:00", ClosesAt: "09:00", DurationMinutes: 30, IntervalMinutes: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSlots(tt.req)
			assert.Error(t, err)
		})
	}
}
