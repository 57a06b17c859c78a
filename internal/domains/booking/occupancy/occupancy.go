// Package occupancy holds the pure date-interval logic behind the front-desk
// grid: room status for a date, half-open overlap tests, and the capacity
// check that guards against overbooking. Functions here never touch storage;
// callers pass booking snapshots in and own all mutation.
package occupancy

import (
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/timezone"
)

// NormalizeDate reduces a time to its calendar date at midnight in the
// application timezone. The date is read from the value's own location:
// DATE columns scan as UTC midnights while request dates parse in the app
// timezone, and both must normalize to the same instant.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, timezone.GetLocation())
}

// Overlaps tests two half-open date ranges [aStart, aEnd) and [bStart, bEnd).
// A range ending on the day another starts does not overlap: the checkout
// date itself is free for the next guest.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return NormalizeDate(aStart).Before(NormalizeDate(bEnd)) &&
		NormalizeDate(aEnd).After(NormalizeDate(bStart))
}

// covers reports whether date d falls inside the half-open stay
// [checkIn, checkOut).
func covers(d, checkIn, checkOut time.Time) bool {
	day := NormalizeDate(d)

	return !day.Before(NormalizeDate(checkIn)) && day.Before(NormalizeDate(checkOut))
}

// ComputeStatus derives the status of a room on a date from the supplied
// bookings. Priority order, first match wins: a blocked room is always
// blocked; a checked-in stay covering the date makes it occupied; a booked
// or confirmed stay covering the date makes it booked; otherwise free.
// Cancelled and completed bookings never contribute.
func ComputeStatus(room roomModel.Room, asOf time.Time, bookings []bookingModel.Booking) roomModel.Status {
	if room.Blocked {
		return roomModel.StatusBlocked
	}

	for _, booking := range bookings {
		if booking.RoomID != room.ID || booking.Status != bookingModel.StatusCheckedIn {
			continue
		}

		if covers(asOf, booking.CheckInDate, booking.CheckOutDate) {
			return roomModel.StatusOccupied
		}
	}

	for _, booking := range bookings {
		if booking.RoomID != room.ID {
			continue
		}

		if booking.Status != bookingModel.StatusBooked && booking.Status != bookingModel.StatusConfirmed {
			continue
		}

		if covers(asOf, booking.CheckInDate, booking.CheckOutDate) {
			return roomModel.StatusBooked
		}
	}

	return roomModel.StatusFree
}

// CountOverlapping counts the active bookings for a room whose stay overlaps
// the proposed half-open range. excludeID skips the booking being mutated so
// extend-stay and transfer re-validation does not count the record against
// itself.
func CountOverlapping(roomID string, checkIn, checkOut time.Time, bookings []bookingModel.Booking, excludeID string) int {
	count := 0

	for _, booking := range bookings {
		if booking.RoomID != roomID || booking.ID == excludeID {
			continue
		}

		if !booking.Status.IsActive() {
			continue
		}

		if Overlaps(checkIn, checkOut, booking.CheckInDate, booking.CheckOutDate) {
			count++
		}
	}

	return count
}

// HasCapacity reports whether a room can take one more booking over the
// proposed range. Must be re-run for every booking-mutating operation, not
// only at creation: an extended stay can create an overlap that did not
// exist before.
func HasCapacity(room roomModel.Room, checkIn, checkOut time.Time, bookings []bookingModel.Booking, excludeID string) bool {
	return CountOverlapping(room.ID, checkIn, checkOut, bookings, excludeID) < room.Capacity
}
