package service

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"

	imageDirectory = "rooms"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	Block(ctx context.Context, req dto.BlockRoomRequest, id string) error
	Unblock(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Room
	bookingRepo bookingRepository.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	s3          s3.S3
	otel        otel.Otel
}

func New(
	repo repository.Room,
	bookingRepo bookingRepository.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	s3 s3.S3,
	otel otel.Otel,
) Room {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		s3:          s3,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, filterByNumber(req.Number))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if exist {
		return failure.Conflict("room number already exists") // nolint:wrapcheck
	}

	imageURL := constant.Empty

	if req.Image != nil {
		imageURL, err = s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, imageDirectory, req.ImageFile, req.Image, uuid.NewString())
		if err != nil {
			log.Error().Err(err).Msg("failed to upload room image")

			return fmt.Errorf("failed to upload room image: %w", err)
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, imageURL)); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidateLists(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)

	if req.Image != nil {
		imageURL, err := s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, imageDirectory, req.ImageFile, req.Image, uuid.NewString())
		if err != nil {
			log.Error().Err(err).Msg("failed to upload room image")

			return fmt.Errorf("failed to upload room image: %w", err)
		}

		updatedFields[model.FieldImage] = imageURL

		s.deleteImage(ctx, room.Image)
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Block takes the room out of service. A blocked room reports blocked on the
// grid regardless of its bookings and rejects new ones until unblocked.
func (s *serviceImpl) Block(ctx context.Context, req dto.BlockRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Block")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return err
	}

	if room.Blocked {
		return failure.Conflict("room is already blocked") // nolint:wrapcheck
	}

	err = s.repo.Update(ctx, map[string]any{
		model.FieldBlocked:       true,
		model.FieldBlockReason:   req.Reason,
		model.FieldBlockedAt:     timezone.Now(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to block room")

		return fmt.Errorf("failed to block room: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Unblock(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unblock")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return err
	}

	if !room.Blocked {
		return failure.Conflict("room is not blocked") // nolint:wrapcheck
	}

	err = s.repo.Update(ctx, map[string]any{
		model.FieldBlocked:       false,
		model.FieldBlockReason:   constant.Empty,
		model.FieldBlockedAt:     nil,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to unblock room")

		return fmt.Errorf("failed to unblock room: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete removes a room that has no active bookings. History for the room's
// past stays keeps the room id, so only rooms never booked or with all stays
// closed out can go.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.getRoom(ctx, id)
	if err != nil {
		return err
	}

	active, err := s.bookingRepo.GetActiveByRoom(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active bookings")

		return fmt.Errorf("failed to get active bookings: %w", err)
	}

	if len(active) > 0 {
		return failure.Conflict("room has active bookings") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.deleteImage(ctx, room.Image)
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) getRoom(ctx context.Context, id string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) deleteImage(ctx context.Context, imageURL string) {
	if imageURL == constant.Empty {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)
		bucket := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucket, imageURL)
		if objectName == constant.Empty {
			return
		}

		if err := s.s3.DeleteFile(c, bucket, constant.Empty, objectName); err != nil {
			log.Error().Err(err).Str("object", objectName).Msg("failed to delete room image")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}

func filterByNumber(number string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    number,
				Table:    model.TableName,
			},
		},
	}
}
