package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/occupancy"
	"frontdesk/internal/domains/booking/repository"
	guestModel "frontdesk/internal/domains/guest/model"
	guestRepository "frontdesk/internal/domains/guest/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	roomRepository "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheRoomStatuses  = "booking:statuses"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	CheckIn(ctx context.Context, id string) error
	CheckOut(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	ExtendStay(ctx context.Context, req dto.ExtendStayRequest, id string) error
	Transfer(ctx context.Context, req dto.TransferRequest, id string) error
	CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.CheckAvailabilityResponse, error)
	RoomStatuses(ctx context.Context, date string) (roomDto.GetRoomStatusesResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepository.Room
	guestRepo guestRepository.Guest
	cfg       *config.Config
	cache     cache.RedisCache
	kafka     kafka.Client
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepository.Room,
	guestRepo guestRepository.Guest,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
		cfg:       cfg,
		cache:     cache,
		kafka:     kafka,
		otel:      otel,
	}
}

// Create registers a stay. The capacity check and the insert run in one
// transaction holding the room row lock, so two concurrent requests for the
// last slot cannot both succeed. The booking starts confirmed when check-in
// is a future date, booked otherwise.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, err
	}

	guestID, err := s.findOrCreateGuest(ctx, req, user)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(user, guestID, model.InitialStatus(checkIn, timezone.Now()), checkIn, checkOut)

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		room, err := s.roomRepo.LockTx(ctx, tx, req.RoomID)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		if room.Blocked {
			return failure.RoomBlocked // nolint:wrapcheck
		}

		active, err := s.repo.GetActiveByRoomTx(ctx, tx, room.ID)
		if err != nil {
			return fmt.Errorf("failed to get active bookings: %w", err)
		}

		if !occupancy.HasCapacity(room, checkIn, checkOut, active, constant.Empty) {
			return failure.CapacityExceeded // nolint:wrapcheck
		}

		return s.repo.InsertTx(ctx, tx, booking) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("roomID", req.RoomID).Msg("failed to create booking")

		return res, err
	}

	s.invalidate(ctx, booking.ID)
	s.publishEvent(ctx, booking, dto.BookingEventCreated, user)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status.IsTerminal() {
		return failure.Conflict("booking is already " + string(booking.Status)) // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, id)
	s.publishEvent(ctx, booking, dto.BookingEventUpdated, user)

	return nil
}

// CheckIn moves a confirmed or booked stay to checked_in and stamps the
// actual arrival time.
func (s *serviceImpl) CheckIn(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusCheckedIn, dto.BookingEventCheckedIn, map[string]any{
		model.FieldActualCheckInAt: timezone.Now(),
	})
}

// CheckOut completes a checked-in stay and stamps the actual departure time.
func (s *serviceImpl) CheckOut(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusCompleted, dto.BookingEventCheckedOut, map[string]any{
		model.FieldActualCheckOutAt: timezone.Now(),
	})
}

// Cancel marks the booking cancelled. The record stays in place for history;
// it simply stops counting toward occupancy and capacity.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusCancelled, dto.BookingEventCancelled, nil)
}

// ExtendStay moves the check-out date. The new range is re-validated against
// room capacity under the room lock: an extension can create an overlap that
// did not exist when the stay was created.
func (s *serviceImpl) ExtendStay(ctx context.Context, req dto.ExtendStayRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExtendStay")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, req.CheckOutDate)
	if err != nil {
		return failure.BadRequestFromString("invalid check-out date") // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status.IsTerminal() {
		return failure.Conflict("booking is already " + string(booking.Status)) // nolint:wrapcheck
	}

	if !checkOut.After(occupancy.NormalizeDate(booking.CheckInDate)) {
		return failure.InvalidDateRange // nolint:wrapcheck
	}

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		room, err := s.roomRepo.LockTx(ctx, tx, booking.RoomID)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		active, err := s.repo.GetActiveByRoomTx(ctx, tx, room.ID)
		if err != nil {
			return fmt.Errorf("failed to get active bookings: %w", err)
		}

		if !occupancy.HasCapacity(room, booking.CheckInDate, checkOut, active, booking.ID) {
			return failure.CapacityExceeded // nolint:wrapcheck
		}

		return s.repo.UpdateTx(ctx, tx, map[string]any{ //nolint:wrapcheck
			model.FieldCheckOutDate:  checkOut,
			model.FieldDuration:      model.DurationDays(booking.CheckInDate, checkOut),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to extend stay")

		return err
	}

	s.invalidate(ctx, id)
	s.publishEvent(ctx, booking, dto.BookingEventExtended, user)

	return nil
}

// Transfer moves the stay to another room. The target room is validated the
// same way a fresh booking would be: not blocked, and with capacity left over
// the stay's date range.
func (s *serviceImpl) Transfer(ctx context.Context, req dto.TransferRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transfer")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status.IsTerminal() {
		return failure.Conflict("booking is already " + string(booking.Status)) // nolint:wrapcheck
	}

	if booking.RoomID == req.RoomID {
		return failure.BadRequestFromString("booking is already in the requested room") // nolint:wrapcheck
	}

	err = s.repo.Transact(ctx, func(tx *sqlx.Tx) error {
		room, err := s.roomRepo.LockTx(ctx, tx, req.RoomID)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		if room.Blocked {
			return failure.RoomBlocked // nolint:wrapcheck
		}

		active, err := s.repo.GetActiveByRoomTx(ctx, tx, room.ID)
		if err != nil {
			return fmt.Errorf("failed to get active bookings: %w", err)
		}

		if !occupancy.HasCapacity(room, booking.CheckInDate, booking.CheckOutDate, active, booking.ID) {
			return failure.CapacityExceeded // nolint:wrapcheck
		}

		return s.repo.UpdateTx(ctx, tx, map[string]any{ //nolint:wrapcheck
			model.FieldRoomID:        req.RoomID,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Str("roomID", req.RoomID).Msg("failed to transfer booking")

		return err
	}

	s.invalidate(ctx, id)
	s.publishEvent(ctx, booking, dto.BookingEventTransfer, user)

	return nil
}

// CheckAvailability is the read-only preview of the capacity rule. It runs
// without the room lock, so the answer is advisory; Create re-validates.
func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.CheckAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, err
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	active, err := s.repo.GetActiveByRoom(ctx, room.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active bookings")

		return res, fmt.Errorf("failed to get active bookings: %w", err)
	}

	occupied := occupancy.CountOverlapping(room.ID, checkIn, checkOut, active, req.ExcludeBookingID)

	res.Capacity = room.Capacity
	res.Occupied = occupied
	res.Available = !room.Blocked && occupied < room.Capacity

	return res, nil
}

// RoomStatuses builds the front-desk grid: every room with its computed
// status for the requested date, defaulting to today.
func (s *serviceImpl) RoomStatuses(ctx context.Context, date string) (res roomDto.GetRoomStatusesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomStatuses")
	defer scope.End()
	defer scope.TraceIfError(err)

	asOf := occupancy.NormalizeDate(timezone.Now())

	if date != constant.Empty {
		asOf, err = timezone.Parse(constant.DateOnlyFormat, date)
		if err != nil {
			return res, failure.BadRequestFromString("invalid date") // nolint:wrapcheck
		}
	}

	cacheKey := shared.BuildCacheKey(cacheRoomStatuses, timezone.Format(asOf, constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room statuses")

		return res, nil
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  roomModel.FieldNumber,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	active, err := s.repo.GetAllActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active bookings")

		return res, fmt.Errorf("failed to get active bookings: %w", err)
	}

	res.Date = timezone.Format(asOf, constant.DateOnlyFormat)
	res.Statuses = make([]roomDto.RoomStatusResponse, len(rooms))

	for i, room := range rooms {
		res.Statuses[i] = roomDto.RoomStatusResponse{
			RoomID:   room.ID,
			Number:   room.Number,
			Type:     string(room.Type),
			Floor:    room.Floor,
			Building: room.Building,
			Capacity: room.Capacity,
			Status:   string(occupancy.ComputeStatus(room, asOf, active)),
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room statuses to cache")
		}
	}()

	return res, nil
}

// transition applies one step of the lifecycle table. extra carries the
// timestamp columns the step stamps, such as the actual check-in time.
func (s *serviceImpl) transition(ctx context.Context, id string, next model.Status, action string, extra map[string]any) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if !booking.Status.CanTransitionTo(next) {
		return failure.Conflict(fmt.Sprintf("cannot move booking from %s to %s", booking.Status, next)) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	for field, value := range extra {
		updatedFields[field] = value
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = next
	s.invalidate(ctx, id)
	s.publishEvent(ctx, booking, action, user)

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// findOrCreateGuest resolves the booking's guest card by phone or passport,
// creating a minimal one when the guest has never stayed before.
func (s *serviceImpl) findOrCreateGuest(ctx context.Context, req dto.CreateBookingRequest, user string) (string, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				Field:    guestModel.FieldPhone,
				Operator: gDto.FilterOperatorEq,
				Value:    req.GuestPhone,
				Table:    guestModel.TableName,
			},
		},
	}

	if req.GuestPassport != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    guestModel.FieldPassportNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    req.GuestPassport,
			Table:    guestModel.TableName,
		})
	}

	guest, err := s.guestRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to find guest")

		return constant.Empty, fmt.Errorf("failed to find guest: %w", err)
	}

	if guest.ID != constant.Empty {
		return guest.ID, nil
	}

	guest = guestModel.Guest{
		ID:             uuid.NewString(),
		FullName:       req.GuestName,
		Phone:          req.GuestPhone,
		Age:            req.GuestAge,
		Address:        req.GuestAddress,
		PassportNumber: req.GuestPassport,
		Gender:         req.GuestGender,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.guestRepo.Insert(ctx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return constant.Empty, fmt.Errorf("failed to create guest: %w", err)
	}

	return guest.ID, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheRoomStatuses)
	}()
}

func (s *serviceImpl) publishEvent(ctx context.Context, booking model.Booking, action, actor string) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.BookingEvent{
			BookingID:  booking.ID,
			RoomID:     booking.RoomID,
			Action:     action,
			Status:     string(booking.Status),
			Actor:      actor,
			OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
		}

		if err := s.kafka.SendMessages(c, constant.KafkaTopicBookingEvents, kafka.Message{
			Key:   booking.ID,
			Value: event,
		}); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking event")
		}
	}()
}
