package service

import (
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/occupancy"
)

// SweepResult partitions the bookings a sweep decided to move. The caller
// owns applying the updates; Sweep itself never mutates anything.
type SweepResult struct {
	ToBooked    []bookingModel.Booking
	ToCompleted []bookingModel.Booking
}

func (r SweepResult) Processed() int {
	return len(r.ToBooked) + len(r.ToCompleted)
}

// Sweep applies the night-audit rules to a snapshot of active bookings for
// the given business date:
//
//   - a confirmed booking whose check-in date is today becomes booked, so the
//     desk sees it as an expected arrival;
//   - a checked-in booking whose check-out date has passed becomes completed,
//     closing out stays the desk forgot to check out.
//
// Everything else is left untouched. Running the sweep twice for the same
// date finds nothing left to move, but the caller advances the business date
// on every run, so back-to-back runs walk the calendar forward.
func Sweep(today time.Time, bookings []bookingModel.Booking) SweepResult {
	day := occupancy.NormalizeDate(today)

	var result SweepResult

	for _, booking := range bookings {
		switch booking.Status {
		case bookingModel.StatusConfirmed:
			if occupancy.NormalizeDate(booking.CheckInDate).Equal(day) {
				result.ToBooked = append(result.ToBooked, booking)
			}
		case bookingModel.StatusCheckedIn:
			if !occupancy.NormalizeDate(booking.CheckOutDate).After(day) {
				result.ToCompleted = append(result.ToCompleted, booking)
			}
		case bookingModel.StatusBooked, bookingModel.StatusCompleted, bookingModel.StatusCancelled:
		}
	}

	return result
}

// ExpiredStays picks the checked-in bookings whose check-out date has passed.
// The recurring timer sweep completes these without touching confirmed
// arrivals or the business date.
func ExpiredStays(now time.Time, bookings []bookingModel.Booking) []bookingModel.Booking {
	var expired []bookingModel.Booking

	for _, booking := range bookings {
		if booking.Status != bookingModel.StatusCheckedIn {
			continue
		}

		if !occupancy.NormalizeDate(booking.CheckOutDate).After(occupancy.NormalizeDate(now)) {
			expired = append(expired, booking)
		}
	}

	return expired
}
