package service

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/organization/model"
	"frontdesk/internal/domains/organization/model/dto"
	"frontdesk/internal/domains/organization/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetOrganization    = "organization:get"
	cacheGetAllOrganization = "organization:gets"
	cacheCountOrganization  = "organization:count"
)

type Organization interface {
	Create(ctx context.Context, req dto.CreateOrganizationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrganizationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.OrganizationResponse, error)
	Update(ctx context.Context, req dto.UpdateOrganizationRequest, id string) error
	Delete(ctx context.Context, id string) error
	IssueVoucher(ctx context.Context, req dto.IssueVoucherRequest, id string) (dto.VoucherResponse, error)
	VoucherStatus(ctx context.Context, number string) (dto.VoucherStatusResponse, error)
}

type serviceImpl struct {
	repo        repository.Organization
	voucherRepo repository.Voucher
	bookingRepo bookingRepository.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Organization,
	voucherRepo repository.Voucher,
	bookingRepo bookingRepository.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Organization {
	return &serviceImpl{
		repo:        repo,
		voucherRepo: voucherRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOrganizationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create organization")

		return fmt.Errorf("failed to create organization: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllOrganization)
		shared.InvalidateCaches(c, s.cache, cacheCountOrganization)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrganizationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOrganization, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for organizations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count organizations")

		return res, fmt.Errorf("failed to count organizations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get organizations")

		return res, fmt.Errorf("failed to get organizations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save organizations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountOrganization, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for organization count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count organizations")

		return res, fmt.Errorf("failed to count organizations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save organization count to cache")
		}
	}()

	return res, nil
}

// Get returns the organization with its issued voucher numbers attached.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.OrganizationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetOrganization, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for organization")

		return res, nil
	}

	organization, err := s.getOrganization(ctx, id)
	if err != nil {
		return res, err
	}

	vouchers, err := s.voucherRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.VoucherFieldIssuedAt,
		SortDir: gDto.SortDirAsc,
	}, filterByOrganization(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vouchers")

		return res, fmt.Errorf("failed to get vouchers: %w", err)
	}

	res.FromModel(organization)

	res.IssuedVouchers = make([]string, len(vouchers))
	for i, voucher := range vouchers {
		res.IssuedVouchers[i] = voucher.Number
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save organization to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateOrganizationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getOrganization(ctx, id); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update organization")

		return fmt.Errorf("failed to update organization: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getOrganization(ctx, id); err != nil {
		return err
	}

	if err = s.voucherRepo.Delete(ctx, filterByOrganization(id)); err != nil {
		log.Error().Err(err).Msg("failed to delete vouchers")

		return fmt.Errorf("failed to delete vouchers: %w", err)
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete organization")

		return fmt.Errorf("failed to delete organization: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// IssueVoucher appends a voucher number to the organization's issued list.
// Numbers are unique across organizations; bookings reference them as plain
// strings.
func (s *serviceImpl) IssueVoucher(ctx context.Context, req dto.IssueVoucherRequest, id string) (res dto.VoucherResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IssueVoucher")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getOrganization(ctx, id); err != nil {
		return res, err
	}

	exist, err := s.voucherRepo.Exist(ctx, filterByVoucherNumber(req.Number))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if voucher exists")

		return res, fmt.Errorf("failed to check if voucher exists: %w", err)
	}

	if exist {
		return res, failure.Conflict("voucher number already issued") // nolint:wrapcheck
	}

	voucher := model.Voucher{
		ID:             uuid.NewString(),
		OrganizationID: id,
		Number:         req.Number,
		IssuedAt:       timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.voucherRepo.Insert(ctx, voucher); err != nil {
		log.Error().Err(err).Msg("failed to issue voucher")

		return res, fmt.Errorf("failed to issue voucher: %w", err)
	}

	s.invalidate(ctx, id)

	res.FromModel(voucher)

	return res, nil
}

// VoucherStatus reports whether a voucher is in use: active while the booking
// carrying its number is confirmed, booked or checked in, inactive once that
// booking completes or is cancelled, or when no booking references it at all.
func (s *serviceImpl) VoucherStatus(ctx context.Context, number string) (res dto.VoucherStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VoucherStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.voucherRepo.Exist(ctx, filterByVoucherNumber(number))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if voucher exists")

		return res, fmt.Errorf("failed to check if voucher exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("voucher not found") // nolint:wrapcheck
	}

	res.Number = number

	booking, err := s.bookingRepo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldVoucherNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    number,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorNotIn,
				Value:    []string{string(bookingModel.StatusCancelled), string(bookingModel.StatusCompleted)},
				Table:    bookingModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking for voucher")

		return res, fmt.Errorf("failed to get booking for voucher: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, nil
	}

	res.Active = true
	res.BookingID = booking.ID
	res.BookingStatus = string(booking.Status)

	return res, nil
}

func (s *serviceImpl) getOrganization(ctx context.Context, id string) (model.Organization, error) {
	organization, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get organization")

		return organization, fmt.Errorf("failed to get organization: %w", err)
	}

	if organization.ID == constant.Empty {
		return organization, failure.NotFound("organization not found") // nolint:wrapcheck
	}

	return organization, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetOrganization, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete organization from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllOrganization)
		shared.InvalidateCaches(c, s.cache, cacheCountOrganization)
	}()
}

func filterByOrganization(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.VoucherFieldOrganizationID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.VoucherTableName,
			},
		},
	}
}

func filterByVoucherNumber(number string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.VoucherFieldNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    number,
				Table:    model.VoucherTableName,
			},
		},
	}
}
