package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/audit/model"
	"frontdesk/internal/domains/audit/model/dto"
	"frontdesk/internal/domains/audit/repository"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/occupancy"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheBookingPrefixes = "booking:"
)

type Audit interface {
	RunNightAudit(ctx context.Context) (dto.NightAuditResponse, error)
	BusinessDate(ctx context.Context) (dto.BusinessDateResponse, error)
	Logs(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAuditLogsResponse, error)
	AutoSweep(ctx context.Context)
}

type serviceImpl struct {
	repo        repository.Audit
	bookingRepo bookingRepository.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	kafka       kafka.Client
	otel        otel.Otel
}

func New(
	repo repository.Audit,
	bookingRepo bookingRepository.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Audit {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		kafka:       kafka,
		otel:        otel,
	}
}

// RunNightAudit closes out the current business date: confirmed arrivals for
// the date become booked, overdue checked-in stays are completed with an
// actual check-out stamp, and the business date advances one day. Each run
// advances the date whether or not anything moved, so the operation is not
// idempotent; running it twice ends two business dates.
func (s *serviceImpl) RunNightAudit(ctx context.Context) (res dto.NightAuditResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RunNightAudit")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == constant.Empty {
		actor = constant.ActorSystem
	}

	today, err := s.businessDate(ctx)
	if err != nil {
		return res, err
	}

	active, err := s.bookingRepo.GetAllActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active bookings")

		return res, fmt.Errorf("failed to get active bookings: %w", err)
	}

	result := Sweep(today, active)
	now := timezone.Now()

	err = s.bookingRepo.Transact(ctx, func(tx *sqlx.Tx) error {
		if len(result.ToBooked) > 0 {
			err := s.bookingRepo.UpdateTx(ctx, tx, map[string]any{
				bookingModel.FieldStatus: bookingModel.StatusBooked,
				constant.FieldModifiedAt: now,
				constant.FieldModifiedBy: actor,
			}, filterByIDs(bookingIDs(result.ToBooked)))
			if err != nil {
				return fmt.Errorf("failed to move confirmed bookings: %w", err)
			}
		}

		if len(result.ToCompleted) > 0 {
			err := s.bookingRepo.UpdateTx(ctx, tx, map[string]any{
				bookingModel.FieldStatus:           bookingModel.StatusCompleted,
				bookingModel.FieldActualCheckOutAt: now,
				constant.FieldModifiedAt:           now,
				constant.FieldModifiedBy:           actor,
			}, filterByIDs(bookingIDs(result.ToCompleted)))
			if err != nil {
				return fmt.Errorf("failed to complete overdue bookings: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("night audit failed")

		return res, err
	}

	nextDate := today.AddDate(0, 0, 1)

	auditLog := model.AuditLog{
		ID:                uuid.NewString(),
		Type:              model.TypeNightAudit,
		DateRun:           today,
		Actor:             actor,
		Details:           fmt.Sprintf("confirmed_to_booked=%d auto_completed=%d", len(result.ToBooked), len(result.ToCompleted)),
		Processed:         result.Processed(),
		ConfirmedToBooked: len(result.ToBooked),
		AutoCompleted:     len(result.ToCompleted),
		NextDate:          nextDate,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}

	if err = s.repo.Insert(ctx, auditLog); err != nil {
		log.Error().Err(err).Msg("failed to record audit log")

		return res, fmt.Errorf("failed to record audit log: %w", err)
	}

	s.afterRun(ctx, auditLog)

	log.Info().
		Str("dateRun", timezone.Format(today, constant.DateOnlyFormat)).
		Int("processed", result.Processed()).
		Msg("night audit completed")

	res = dto.NightAuditResponse{
		DateRun:           timezone.Format(today, constant.DateOnlyFormat),
		Processed:         result.Processed(),
		ConfirmedToBooked: len(result.ToBooked),
		AutoCompleted:     len(result.ToCompleted),
		NextDate:          timezone.Format(nextDate, constant.DateOnlyFormat),
	}

	return res, nil
}

func (s *serviceImpl) BusinessDate(ctx context.Context) (res dto.BusinessDateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BusinessDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := s.businessDate(ctx)
	if err != nil {
		return res, err
	}

	res.BusinessDate = timezone.Format(date, constant.DateOnlyFormat)

	return res, nil
}

func (s *serviceImpl) Logs(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAuditLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logs")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit logs")

		return res, fmt.Errorf("failed to count audit logs: %w", err)
	}

	logs, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit logs")

		return res, fmt.Errorf("failed to get audit logs: %w", err)
	}

	res.FromModels(logs, total, req.Limit)

	return res, nil
}

// AutoSweep completes expired checked-in stays on a timer until the context
// is cancelled. It never touches confirmed arrivals or the business date;
// the staff-triggered night audit owns those.
func (s *serviceImpl) AutoSweep(ctx context.Context) {
	if !s.cfg.FrontDesk.NightAudit.AutoSweep {
		log.Info().Msg("auto sweep disabled")

		return
	}

	interval := time.Duration(s.cfg.FrontDesk.NightAudit.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	log.Info().Dur("interval", interval).Msg("auto sweep started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("auto sweep stopped")

			return
		case <-ticker.C:
			if err := s.sweepExpired(ctx); err != nil {
				log.Error().Err(err).Msg("auto sweep run failed")
			}
		}
	}
}

func (s *serviceImpl) sweepExpired(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sweepExpired")
	defer scope.End()
	defer scope.TraceIfError(err)

	active, err := s.bookingRepo.GetAllActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active bookings: %w", err)
	}

	now := timezone.Now()

	expired := ExpiredStays(now, active)
	if len(expired) == 0 {
		return nil
	}

	err = s.bookingRepo.Update(ctx, map[string]any{
		bookingModel.FieldStatus:           bookingModel.StatusCompleted,
		bookingModel.FieldActualCheckOutAt: now,
		constant.FieldModifiedAt:           now,
		constant.FieldModifiedBy:           constant.ActorSystem,
	}, filterByIDs(bookingIDs(expired)))
	if err != nil {
		return fmt.Errorf("failed to complete expired bookings: %w", err)
	}

	auditLog := model.AuditLog{
		ID:            uuid.NewString(),
		Type:          model.TypeTimerSweep,
		DateRun:       occupancy.NormalizeDate(now),
		Actor:         constant.ActorSystem,
		Details:       fmt.Sprintf("auto_completed=%d", len(expired)),
		Processed:     len(expired),
		AutoCompleted: len(expired),
		NextDate:      occupancy.NormalizeDate(now),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ActorSystem,
			ModifiedBy: constant.ActorSystem,
		},
	}

	if err = s.repo.Insert(ctx, auditLog); err != nil {
		return fmt.Errorf("failed to record audit log: %w", err)
	}

	s.afterRun(ctx, auditLog)

	log.Info().Int("completed", len(expired)).Msg("auto sweep completed expired stays")

	return nil
}

// businessDate derives the current business date from the latest night audit
// log; before the first run it is simply today.
func (s *serviceImpl) businessDate(ctx context.Context) (time.Time, error) {
	latest, err := s.repo.GetLatest(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get latest audit log")

		return time.Time{}, fmt.Errorf("failed to get latest audit log: %w", err)
	}

	if latest.ID == constant.Empty {
		return occupancy.NormalizeDate(timezone.Now()), nil
	}

	return occupancy.NormalizeDate(latest.NextDate), nil
}

func (s *serviceImpl) afterRun(ctx context.Context, auditLog model.AuditLog) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheBookingPrefixes)

		event := dto.AuditEvent{
			Type:              auditLog.Type,
			DateRun:           timezone.Format(auditLog.DateRun, constant.DateOnlyFormat),
			Actor:             auditLog.Actor,
			Processed:         auditLog.Processed,
			ConfirmedToBooked: auditLog.ConfirmedToBooked,
			AutoCompleted:     auditLog.AutoCompleted,
			OccurredAt:        timezone.Format(timezone.Now(), constant.DateFormat),
		}

		if err := s.kafka.SendMessages(c, constant.KafkaTopicAuditEvents, kafka.Message{
			Key:   auditLog.ID,
			Value: event,
		}); err != nil {
			log.Error().Err(err).Msg("failed to publish audit event")
		}
	}()
}

func bookingIDs(bookings []bookingModel.Booking) []string {
	ids := make([]string, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.ID
	}

	return ids
}

func filterByIDs(ids []string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
				Table:    bookingModel.TableName,
			},
		},
	}
}
