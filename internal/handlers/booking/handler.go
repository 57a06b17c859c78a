package booking

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)

		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/availability", handler.CheckAvailability)
		routerGroup.Get("/{id}", handler.GetBookingByID)

		routerGroup.Group(func(deskGroup chi.Router) {
			deskGroup.Use(handler.middleware.RequireRoles(
				constant.RoleAdministrator, constant.RoleManager, constant.RoleReception,
			))

			deskGroup.Post("/", handler.CreateBooking)
			deskGroup.Patch("/{id}", handler.UpdateBooking)
			deskGroup.Post("/{id}/check-in", handler.CheckIn)
			deskGroup.Post("/{id}/check-out", handler.CheckOut)
			deskGroup.Post("/{id}/cancel", handler.CancelBooking)
			deskGroup.Post("/{id}/extend", handler.ExtendStay)
			deskGroup.Post("/{id}/transfer", handler.TransferBooking)
		})
	})

	router.With(handler.middleware.Auth).
		Get("/rooms/statuses", handler.GetRoomStatuses)
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Create a new room booking; the guest is matched by phone or passport and created when unknown.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room ID"
// @Param guest_id query string false "Filter by guest ID"
// @Param status query string false "Filter by status (confirmed, booked, checked_in, completed, cancelled)"
// @Param organization_id query string false "Filter by organization ID"
// @Param voucher_number query string false "Filter by voucher number"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{
		model.FieldRoomID,
		model.FieldGuestID,
		model.FieldStatus,
		model.FieldOrganizationID,
		model.FieldVoucherNumber,
	} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking updates contact and voucher details of an existing booking.
// @Summary Update a booking by ID
// @Description Update guest contact details, voucher, or second guest of an existing booking. Dates and room are changed through extend and transfer.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// CheckIn marks the guest as arrived.
// @Summary Check in a booking
// @Description Mark the guest as arrived; allowed from confirmed or booked status.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Guest checked in successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.CheckIn(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest checked in successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Guest checked in successfully")
}

// CheckOut completes the stay.
// @Summary Check out a booking
// @Description Complete the stay; allowed from checked_in status only.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Guest checked out successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.CheckOut(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest checked out successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Guest checked out successfully")
}

// CancelBooking cancels a booking while keeping its record.
// @Summary Cancel a booking
// @Description Cancel a booking; the record is retained and the room nights are released.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

// ExtendStay moves the check-out date of an active booking.
// @Summary Extend a stay
// @Description Move the check-out date of an active booking after re-validating room capacity for the new range.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ExtendStayRequest true "Extend Stay Request"
// @Success 200 {object} response.Message "Stay extended successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/extend [post]
// @Security BearerAuth
func (handler *Handler) ExtendStay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExtendStay")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ExtendStayRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ExtendStay(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to extend stay")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Stay extended successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Stay extended successfully")
}

// TransferBooking moves an active booking to another room.
// @Summary Transfer a booking to another room
// @Description Move an active booking to another room after validating the target room's capacity.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.TransferRequest true "Transfer Request"
// @Success 200 {object} response.Message "Booking transferred successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/transfer [post]
// @Security BearerAuth
func (handler *Handler) TransferBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TransferBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.TransferRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Transfer(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to transfer booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking transferred successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking transferred successfully")
}

// CheckAvailability reports whether a room can take another booking for a range.
// @Summary Check room availability
// @Description Report whether a room has spare capacity for a date range. Advisory only; creation re-validates under lock.
// @Tags Booking
// @Accept json
// @Produce json
// @Param room_id query string true "Room ID"
// @Param check_in_date query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out_date query string true "Check-out date (YYYY-MM-DD)"
// @Param exclude_booking_id query string false "Booking ID to exclude from the overlap count"
// @Success 200 {object} response.Data[dto.CheckAvailabilityResponse] "Availability result"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/availability [get]
// @Security BearerAuth
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.CheckAvailabilityRequest{
		RoomID:           r.URL.Query().Get(model.FieldRoomID),
		CheckInDate:      r.URL.Query().Get(model.FieldCheckInDate),
		CheckOutDate:     r.URL.Query().Get(model.FieldCheckOutDate),
		ExcludeBookingID: r.URL.Query().Get("exclude_booking_id"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	availability, err := handler.service.CheckAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// GetRoomStatuses renders the front-desk grid for a date.
// @Summary Get room statuses for a date
// @Description Compute the status of every room (free, booked, occupied, blocked) for the given date; defaults to today.
// @Tags Booking
// @Accept json
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[roomDto.GetRoomStatusesResponse] "Room statuses"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/statuses [get]
// @Security BearerAuth
func (handler *Handler) GetRoomStatuses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomStatuses")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	statuses, err := handler.service.RoomStatuses(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room statuses")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room statuses retrieved successfully")

	response.WithJSON(w, http.StatusOK, statuses)
}
