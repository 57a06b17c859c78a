package service

import (
	"testing"
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func booking(id string, status bookingModel.Status, checkIn, checkOut time.Time) bookingModel.Booking {
	return bookingModel.Booking{
		ID:           id,
		RoomID:       "r-1",
		Status:       status,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}
}

func TestSweep_ConfirmedArrivingTodayBecomesBooked(t *testing.T) {
	today := date(10)

	result := Sweep(today, []bookingModel.Booking{
		booking("arriving", bookingModel.StatusConfirmed, date(10), date(12)),
		booking("future", bookingModel.StatusConfirmed, date(11), date(13)),
	})

	require.Len(t, result.ToBooked, 1)
	assert.Equal(t, "arriving", result.ToBooked[0].ID)
	assert.Empty(t, result.ToCompleted)
	assert.Equal(t, 1, result.Processed())
}

func TestSweep_OverdueCheckedInBecomesCompleted(t *testing.T) {
	today := date(10)

	result := Sweep(today, []bookingModel.Booking{
		booking("overdue", bookingModel.StatusCheckedIn, date(5), date(9)),
		booking("due-today", bookingModel.StatusCheckedIn, date(8), date(10)),
		booking("still-staying", bookingModel.StatusCheckedIn, date(9), date(11)),
	})

	require.Len(t, result.ToCompleted, 2)
	assert.Equal(t, "overdue", result.ToCompleted[0].ID)
	assert.Equal(t, "due-today", result.ToCompleted[1].ID)
	assert.Empty(t, result.ToBooked)
}

func TestSweep_LeavesOtherStatusesUntouched(t *testing.T) {
	today := date(10)

	result := Sweep(today, []bookingModel.Booking{
		booking("booked", bookingModel.StatusBooked, date(10), date(12)),
		booking("cancelled", bookingModel.StatusCancelled, date(10), date(12)),
		booking("completed", bookingModel.StatusCompleted, date(5), date(9)),
	})

	assert.Zero(t, result.Processed())
}

func TestSweep_IgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2025, time.June, 10, 23, 45, 0, 0, time.UTC)

	result := Sweep(today, []bookingModel.Booking{
		booking("arriving", bookingModel.StatusConfirmed, date(10), date(12)),
	})

	assert.Len(t, result.ToBooked, 1)
}

// A second run for the same date has nothing left to move once the first
// run's updates are applied; the date advance is what makes the run
// non-idempotent, not the sweep itself.
func TestSweep_SecondRunFindsNothing(t *testing.T) {
	today := date(10)
	bookings := []bookingModel.Booking{
		booking("arriving", bookingModel.StatusConfirmed, date(10), date(12)),
		booking("overdue", bookingModel.StatusCheckedIn, date(5), date(9)),
	}

	first := Sweep(today, bookings)
	require.Equal(t, 2, first.Processed())

	// Apply the first run's decisions.
	bookings[0].Status = bookingModel.StatusBooked
	bookings[1].Status = bookingModel.StatusCompleted

	second := Sweep(today, bookings)
	assert.Zero(t, second.Processed())
}

// Stored check-in dates arrive as UTC midnights while the business date is a
// local midnight; arrivals must still match by calendar date.
func TestSweep_StoredArrivalMatchesLocalBusinessDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Chisinau")
	require.NoError(t, err)

	today := time.Date(2025, time.June, 3, 0, 0, 0, 0, loc)

	result := Sweep(today, []bookingModel.Booking{
		booking("arriving", bookingModel.StatusConfirmed, date(3), date(5)),
		booking("departing", bookingModel.StatusCheckedIn, date(1), date(3)),
	})

	require.Len(t, result.ToBooked, 1)
	assert.Equal(t, "arriving", result.ToBooked[0].ID)
	require.Len(t, result.ToCompleted, 1)
	assert.Equal(t, "departing", result.ToCompleted[0].ID)
}

func TestExpiredStays(t *testing.T) {
	now := date(10)

	expired := ExpiredStays(now, []bookingModel.Booking{
		booking("overdue", bookingModel.StatusCheckedIn, date(5), date(9)),
		booking("still-staying", bookingModel.StatusCheckedIn, date(9), date(11)),
		booking("confirmed-past", bookingModel.StatusConfirmed, date(5), date(9)),
	})

	require.Len(t, expired, 1)
	assert.Equal(t, "overdue", expired[0].ID)
}
