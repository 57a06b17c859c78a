package service

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGuest    = "guest:get"
	cacheGetAllGuest = "guest:gets"
	cacheCountGuest  = "guest:count"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	FindByPhoneOrPassport(ctx context.Context, phone, passport string) (dto.GuestResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return fmt.Errorf("failed to create guest: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
		shared.InvalidateCaches(c, s.cache, cacheCountGuest)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGuest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGuest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		return res, nil
	}

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	res.FromModel(guest)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest to cache")
		}
	}()

	return res, nil
}

// FindByPhoneOrPassport looks a guest up by the identifiers a booking form
// carries. Booking creation uses it to decide whether a new guest card is
// needed.
func (s *serviceImpl) FindByPhoneOrPassport(ctx context.Context, phone, passport string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindByPhoneOrPassport")
	defer scope.End()
	defer scope.TraceIfError(err)

	if phone == constant.Empty && passport == constant.Empty {
		return res, failure.BadRequestFromString("phone or passport is required") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters:  []any{},
	}

	if phone != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldPhone,
			Operator: gDto.FilterOperatorEq,
			Value:    phone,
			Table:    model.TableName,
		})
	}

	if passport != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldPassportNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    passport,
			Table:    model.TableName,
		})
	}

	guest, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to find guest")

		return res, fmt.Errorf("failed to find guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exist {
		log.Error().Msg("guest not found")

		return failure.NotFound("guest not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest")

		return fmt.Errorf("failed to update guest: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
		shared.InvalidateCaches(c, s.cache, cacheCountGuest)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exist {
		log.Error().Msg("guest not found")

		return failure.NotFound("guest not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
		shared.InvalidateCaches(c, s.cache, cacheCountGuest)
	}()

	return nil
}
