package model

import (
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/model"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID                = "id"
	FieldRoomID            = "room_id"
	FieldGuestID           = "guest_id"
	FieldGuestName         = "guest_name"
	FieldGuestPhone        = "guest_phone"
	FieldGuestAge          = "guest_age"
	FieldGuestAddress      = "guest_address"
	FieldGuestGender       = "guest_gender"
	FieldGuestPassport     = "guest_passport"
	FieldCheckInDate       = "check_in_date"
	FieldCheckOutDate      = "check_out_date"
	FieldDuration          = "duration"
	FieldStatus            = "status"
	FieldActualCheckInAt   = "actual_check_in_at"
	FieldActualCheckOutAt  = "actual_check_out_at"
	FieldVoucherNumber     = "voucher_number"
	FieldOrganizationID    = "organization_id"
	FieldSecondGuestID     = "second_guest_id"
	FieldSecondGuestName   = "second_guest_name"
	FieldSecondGuestGender = "second_guest_gender"
)

// Status is the closed booking lifecycle enum. The happy path is
// confirmed -> booked -> checked_in -> completed; cancelled is reachable
// from every non-terminal state. Cancellation marks the record, it never
// deletes it.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusBooked    Status = "booked"
	StatusCheckedIn Status = "checked_in"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusBooked, StatusCheckedIn, StatusCompleted, StatusCancelled:
		return true
	}

	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsActive reports whether the booking counts toward room occupancy
// and capacity. Cancelled and completed bookings never do.
func (s Status) IsActive() bool {
	switch s {
	case StatusConfirmed, StatusBooked, StatusCheckedIn:
		return true
	case StatusCompleted, StatusCancelled:
		return false
	}

	return false
}

// CanTransitionTo is the exhaustive transition table.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusConfirmed:
		return next == StatusBooked || next == StatusCheckedIn || next == StatusCancelled
	case StatusBooked:
		return next == StatusCheckedIn || next == StatusCancelled
	case StatusCheckedIn:
		return next == StatusCompleted || next == StatusCancelled
	case StatusCompleted, StatusCancelled:
		return false
	}

	return false
}

// InitialStatus applies the creation rule: a booking whose check-in date is
// strictly in the future starts confirmed; a same-day (or overdue) booking
// skips the pending state and starts booked.
func InitialStatus(checkIn, today time.Time) Status {
	if normalize(checkIn).After(normalize(today)) {
		return StatusConfirmed
	}

	return StatusBooked
}

// DurationDays derives the stay length in nights from a half-open date range.
func DurationDays(checkIn, checkOut time.Time) int {
	return int(normalize(checkOut).Sub(normalize(checkIn)).Hours()) / constant.HoursPerDay
}

// normalize anchors the calendar date at midnight UTC. Reading the date from
// the value's own location keeps stored dates and parsed request dates
// comparable, and the UTC anchor keeps every day exactly 24 hours so stays
// spanning a DST transition still count whole nights.
func normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Booking struct {
	ID                string     `db:"id"`
	RoomID            string     `db:"room_id"`
	GuestID           string     `db:"guest_id"`
	GuestName         string     `db:"guest_name"`
	GuestPhone        string     `db:"guest_phone"`
	GuestAge          int        `db:"guest_age"`
	GuestAddress      string     `db:"guest_address"`
	GuestGender       string     `db:"guest_gender"`
	GuestPassport     string     `db:"guest_passport"`
	CheckInDate       time.Time  `db:"check_in_date"`
	CheckOutDate      time.Time  `db:"check_out_date"`
	Duration          int        `db:"duration"`
	Status            Status     `db:"status"`
	ActualCheckInAt   *time.Time `db:"actual_check_in_at"`
	ActualCheckOutAt  *time.Time `db:"actual_check_out_at"`
	VoucherNumber     string     `db:"voucher_number"`
	OrganizationID    string     `db:"organization_id"`
	SecondGuestID     string     `db:"second_guest_id"`
	SecondGuestName   string     `db:"second_guest_name"`
	SecondGuestGender string     `db:"second_guest_gender"`
	model.Metadata
}
