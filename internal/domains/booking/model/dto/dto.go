package dto

import (
	"time"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID            string `json:"room_id"             validate:"required,uuid"`
	GuestName         string `json:"guest_name"          validate:"required,max=200"`
	GuestPhone        string `json:"guest_phone"         validate:"required,max=20"`
	GuestAge          int    `json:"guest_age"           validate:"omitempty,min=0,max=130"`
	GuestAddress      string `json:"guest_address"       validate:"omitempty,max=200"`
	GuestGender       string `json:"guest_gender"        validate:"required,oneof=male female"`
	GuestPassport     string `json:"guest_passport"      validate:"omitempty,max=30"`
	CheckInDate       string `json:"check_in_date"       validate:"required,datetime=2006-01-02"`
	CheckOutDate      string `json:"check_out_date"      validate:"required,datetime=2006-01-02"`
	VoucherNumber     string `json:"voucher_number"      validate:"omitempty,max=50"`
	OrganizationID    string `json:"organization_id"     validate:"omitempty,uuid"`
	SecondGuestName   string `json:"second_guest_name"   validate:"omitempty,max=200"`
	SecondGuestGender string `json:"second_guest_gender" validate:"omitempty,oneof=male female"`
}

// ParseDates validates the half-open stay window. Both dates are calendar
// dates in the application timezone; a zero-night stay is rejected.
func (c *CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check-in date") // nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check-out date") // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.InvalidDateRange // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

func (c *CreateBookingRequest) ToModel(user, guestID string, status model.Status, checkIn, checkOut time.Time) model.Booking {
	return model.Booking{
		ID:                uuid.NewString(),
		RoomID:            c.RoomID,
		GuestID:           guestID,
		GuestName:         c.GuestName,
		GuestPhone:        c.GuestPhone,
		GuestAge:          c.GuestAge,
		GuestAddress:      c.GuestAddress,
		GuestGender:       c.GuestGender,
		GuestPassport:     c.GuestPassport,
		CheckInDate:       checkIn,
		CheckOutDate:      checkOut,
		Duration:          model.DurationDays(checkIn, checkOut),
		Status:            status,
		VoucherNumber:     c.VoucherNumber,
		OrganizationID:    c.OrganizationID,
		SecondGuestName:   c.SecondGuestName,
		SecondGuestGender: c.SecondGuestGender,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateBookingRequest covers the editable contact and voucher details.
// Dates, room and status move through their dedicated operations instead.
type UpdateBookingRequest struct {
	GuestName         string `db:"guest_name"          json:"guest_name"          validate:"omitempty,max=200"`
	GuestPhone        string `db:"guest_phone"         json:"guest_phone"         validate:"omitempty,max=20"`
	GuestAge          *int   `db:"guest_age"           json:"guest_age"           validate:"omitempty,min=0,max=130"`
	GuestAddress      string `db:"guest_address"       json:"guest_address"       validate:"omitempty,max=200"`
	GuestPassport     string `db:"guest_passport"      json:"guest_passport"      validate:"omitempty,max=30"`
	VoucherNumber     string `db:"voucher_number"      json:"voucher_number"      validate:"omitempty,max=50"`
	OrganizationID    string `db:"organization_id"     json:"organization_id"     validate:"omitempty,uuid"`
	SecondGuestName   string `db:"second_guest_name"   json:"second_guest_name"   validate:"omitempty,max=200"`
	SecondGuestGender string `db:"second_guest_gender" json:"second_guest_gender" validate:"omitempty,oneof=male female"`
}

type ExtendStayRequest struct {
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}

type TransferRequest struct {
	RoomID string `json:"room_id" validate:"required,uuid"`
}

type BookingResponse struct {
	ID                string `json:"id"`
	RoomID            string `json:"room_id"`
	GuestID           string `json:"guest_id,omitempty"`
	GuestName         string `json:"guest_name"`
	GuestPhone        string `json:"guest_phone"`
	GuestAge          int    `json:"guest_age,omitempty"`
	GuestAddress      string `json:"guest_address,omitempty"`
	GuestGender       string `json:"guest_gender"`
	GuestPassport     string `json:"guest_passport,omitempty"`
	CheckInDate       string `json:"check_in_date"`
	CheckOutDate      string `json:"check_out_date"`
	Duration          int    `json:"duration"`
	Status            string `json:"status"`
	ActualCheckInAt   string `json:"actual_check_in_at,omitempty"`
	ActualCheckOutAt  string `json:"actual_check_out_at,omitempty"`
	VoucherNumber     string `json:"voucher_number,omitempty"`
	OrganizationID    string `json:"organization_id,omitempty"`
	SecondGuestName   string `json:"second_guest_name,omitempty"`
	SecondGuestGender string `json:"second_guest_gender,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.GuestID = model.GuestID
	r.GuestName = model.GuestName
	r.GuestPhone = model.GuestPhone
	r.GuestAge = model.GuestAge
	r.GuestAddress = model.GuestAddress
	r.GuestGender = model.GuestGender
	r.GuestPassport = model.GuestPassport
	r.CheckInDate = timezone.Format(model.CheckInDate, constant.DateOnlyFormat)
	r.CheckOutDate = timezone.Format(model.CheckOutDate, constant.DateOnlyFormat)
	r.Duration = model.Duration
	r.Status = string(model.Status)
	r.VoucherNumber = model.VoucherNumber
	r.OrganizationID = model.OrganizationID
	r.SecondGuestName = model.SecondGuestName
	r.SecondGuestGender = model.SecondGuestGender

	if model.ActualCheckInAt != nil {
		r.ActualCheckInAt = timezone.Format(*model.ActualCheckInAt, constant.DateFormat)
	}

	if model.ActualCheckOutAt != nil {
		r.ActualCheckOutAt = timezone.Format(*model.ActualCheckOutAt, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type CheckAvailabilityRequest struct {
	RoomID           string `json:"room_id"            validate:"required,uuid"`
	CheckInDate      string `json:"check_in_date"      validate:"required,datetime=2006-01-02"`
	CheckOutDate     string `json:"check_out_date"     validate:"required,datetime=2006-01-02"`
	ExcludeBookingID string `json:"exclude_booking_id" validate:"omitempty,uuid"`
}

func (c *CheckAvailabilityRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	req := CreateBookingRequest{CheckInDate: c.CheckInDate, CheckOutDate: c.CheckOutDate}

	return req.ParseDates()
}

type CheckAvailabilityResponse struct {
	Available bool `json:"available"`
	Capacity  int  `json:"capacity"`
	Occupied  int  `json:"occupied"`
}

// BookingEvent is the payload published to the booking events topic after a
// lifecycle mutation commits.
type BookingEvent struct {
	BookingID  string `json:"booking_id"`
	RoomID     string `json:"room_id"`
	Action     string `json:"action"`
	Status     string `json:"status"`
	Actor      string `json:"actor"`
	OccurredAt string `json:"occurred_at"`
}

const (
	BookingEventCreated    = "created"
	BookingEventUpdated    = "updated"
	BookingEventCheckedIn  = "checked_in"
	BookingEventCheckedOut = "checked_out"
	BookingEventCancelled  = "cancelled"
	BookingEventExtended   = "extended"
	BookingEventTransfer   = "transferred"
)
