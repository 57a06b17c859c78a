package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"confirmed to booked", StatusConfirmed, StatusBooked, true},
		{"confirmed to checked_in", StatusConfirmed, StatusCheckedIn, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, false},
		{"booked to checked_in", StatusBooked, StatusCheckedIn, true},
		{"booked to cancelled", StatusBooked, StatusCancelled, true},
		{"booked to confirmed", StatusBooked, StatusConfirmed, false},
		{"booked to completed", StatusBooked, StatusCompleted, false},
		{"checked_in to completed", StatusCheckedIn, StatusCompleted, true},
		{"checked_in to cancelled", StatusCheckedIn, StatusCancelled, true},
		{"checked_in to booked", StatusCheckedIn, StatusBooked, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusBooked, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, StatusConfirmed.IsActive())
	assert.True(t, StatusBooked.IsActive())
	assert.True(t, StatusCheckedIn.IsActive())
	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusBooked.IsTerminal())
	assert.False(t, StatusCheckedIn.IsTerminal())
}

func TestInitialStatus(t *testing.T) {
	today := date(10)

	// Future check-in starts confirmed.
	assert.Equal(t, StatusConfirmed, InitialStatus(date(11), today))

	// Same-day booking skips the pending state.
	assert.Equal(t, StatusBooked, InitialStatus(date(10), today))

	// Overdue check-in also starts booked.
	assert.Equal(t, StatusBooked, InitialStatus(date(9), today))
}

func TestInitialStatus_IgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2025, time.June, 10, 23, 30, 0, 0, time.UTC)
	checkIn := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, StatusBooked, InitialStatus(checkIn, today))
}

func TestDurationDays(t *testing.T) {
	assert.Equal(t, 4, DurationDays(date(1), date(5)))
	assert.Equal(t, 1, DurationDays(date(4), date(5)))
}

// The night of the spring-forward transition is only 23 hours long in local
// time; it still counts as a full night.
func TestDurationDays_AcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Chisinau")
	require.NoError(t, err)

	localDate := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 0, 0, 0, 0, loc)
	}

	// Clocks move forward on 2026-03-29 in Europe/Chisinau.
	assert.Equal(t, 1, DurationDays(localDate(2026, time.March, 29), localDate(2026, time.March, 30)))
	assert.Equal(t, 7, DurationDays(localDate(2026, time.March, 25), localDate(2026, time.April, 1)))
}

// Stored check-in dates arrive as UTC midnights while extend-stay checkout
// dates parse in the local timezone; nights count by calendar date.
func TestDurationDays_MixedLocations(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Chisinau")
	require.NoError(t, err)

	checkOut := time.Date(2025, time.June, 8, 0, 0, 0, 0, loc)

	assert.Equal(t, 5, DurationDays(date(3), checkOut))
}
