package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"frontdesk/config"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/audit/mocks"
	"frontdesk/internal/domains/audit/model"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/occupancy"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type auditFixture struct {
	repo        *mocks.MockAudit
	bookingRepo *bookingMocks.MockBooking
	cache       *cacheMocks.MockRedisCache
	kafka       *kafkaMocks.MockClient
	svc         Audit
	async       *sync.WaitGroup
}

func newAuditFixture(t *testing.T) *auditFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &auditFixture{
		repo:        mocks.NewMockAudit(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		kafka:       kafkaMocks.NewMockClient(ctrl),
		async:       &sync.WaitGroup{},
	}

	f.svc = New(f.repo, f.bookingRepo, &config.Config{}, f.cache, f.kafka, otelMocks.NewOtel())

	return f
}

func (f *auditFixture) expectAsyncWrites() {
	f.async.Add(2)

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Do(func(any, any) {
		f.async.Done()
	}).Return(nil)
	f.kafka.EXPECT().SendMessages(gomock.Any(), constant.KafkaTopicAuditEvents, gomock.Any()).Do(func(any, any, ...any) {
		f.async.Done()
	}).Return(nil)
}

func (f *auditFixture) expectTransact() {
	f.bookingRepo.EXPECT().Transact(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		},
	)
}

func today() time.Time {
	return occupancy.NormalizeDate(timezone.Now())
}

func TestRunNightAudit_FirstRunAdvancesFromToday(t *testing.T) {
	f := newAuditFixture(t)

	arriving := booking("arriving", bookingModel.StatusConfirmed, today(), today().AddDate(0, 0, 2))
	overdue := booking("overdue", bookingModel.StatusCheckedIn, today().AddDate(0, 0, -3), today().AddDate(0, 0, -1))
	staying := booking("staying", bookingModel.StatusCheckedIn, today().AddDate(0, 0, -1), today().AddDate(0, 0, 1))

	f.repo.EXPECT().GetLatest(gomock.Any()).Return(model.AuditLog{}, nil)
	f.bookingRepo.EXPECT().GetAllActive(gomock.Any()).
		Return([]bookingModel.Booking{arriving, overdue, staying}, nil)

	f.expectTransact()
	f.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, bookingModel.StatusBooked, req[bookingModel.FieldStatus])

			return nil
		},
	)
	f.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, bookingModel.StatusCompleted, req[bookingModel.FieldStatus])
			assert.NotNil(t, req[bookingModel.FieldActualCheckOutAt])

			return nil
		},
	)

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, auditLog model.AuditLog) error {
			assert.Equal(t, model.TypeNightAudit, auditLog.Type)
			assert.Equal(t, constant.ActorSystem, auditLog.Actor)
			assert.Equal(t, 2, auditLog.Processed)
			assert.Equal(t, 1, auditLog.ConfirmedToBooked)
			assert.Equal(t, 1, auditLog.AutoCompleted)
			assert.True(t, auditLog.NextDate.After(auditLog.DateRun))

			return nil
		},
	)
	f.expectAsyncWrites()

	res, err := f.svc.RunNightAudit(context.Background())
	f.async.Wait()

	require.NoError(t, err)
	assert.Equal(t, timezone.Format(today(), constant.DateOnlyFormat), res.DateRun)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 1, res.ConfirmedToBooked)
	assert.Equal(t, 1, res.AutoCompleted)
	assert.Equal(t, timezone.Format(today().AddDate(0, 0, 1), constant.DateOnlyFormat), res.NextDate)
}

func TestRunNightAudit_BusinessDateComesFromLatestLog(t *testing.T) {
	f := newAuditFixture(t)

	businessDate := today().AddDate(0, 0, 5)

	f.repo.EXPECT().GetLatest(gomock.Any()).
		Return(model.AuditLog{ID: "log-1", NextDate: businessDate}, nil)
	f.bookingRepo.EXPECT().GetAllActive(gomock.Any()).
		Return([]bookingModel.Booking{
			booking("arriving", bookingModel.StatusConfirmed, businessDate, businessDate.AddDate(0, 0, 2)),
		}, nil)

	f.expectTransact()
	f.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.expectAsyncWrites()

	res, err := f.svc.RunNightAudit(context.Background())
	f.async.Wait()

	require.NoError(t, err)
	assert.Equal(t, timezone.Format(businessDate, constant.DateOnlyFormat), res.DateRun)
	assert.Equal(t, timezone.Format(businessDate.AddDate(0, 0, 1), constant.DateOnlyFormat), res.NextDate)
}

func TestRunNightAudit_QuietNightStillAdvancesDate(t *testing.T) {
	f := newAuditFixture(t)

	f.repo.EXPECT().GetLatest(gomock.Any()).Return(model.AuditLog{}, nil)
	f.bookingRepo.EXPECT().GetAllActive(gomock.Any()).Return(nil, nil)

	f.expectTransact()

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, auditLog model.AuditLog) error {
			assert.Zero(t, auditLog.Processed)

			return nil
		},
	)
	f.expectAsyncWrites()

	res, err := f.svc.RunNightAudit(context.Background())
	f.async.Wait()

	require.NoError(t, err)
	assert.Zero(t, res.Processed)
	assert.Equal(t, timezone.Format(today().AddDate(0, 0, 1), constant.DateOnlyFormat), res.NextDate)
}

func TestRunNightAudit_UsesAuthenticatedActor(t *testing.T) {
	f := newAuditFixture(t)

	f.repo.EXPECT().GetLatest(gomock.Any()).Return(model.AuditLog{}, nil)
	f.bookingRepo.EXPECT().GetAllActive(gomock.Any()).Return(nil, nil)
	f.expectTransact()

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, auditLog model.AuditLog) error {
			assert.Equal(t, "manager-id", auditLog.Actor)

			return nil
		},
	)
	f.expectAsyncWrites()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "manager-id")
	_, err := f.svc.RunNightAudit(ctx)
	f.async.Wait()

	require.NoError(t, err)
}

func TestRunNightAudit_LatestLogError(t *testing.T) {
	f := newAuditFixture(t)

	f.repo.EXPECT().GetLatest(gomock.Any()).Return(model.AuditLog{}, errors.New("connection refused"))

	_, err := f.svc.RunNightAudit(context.Background())

	assert.Error(t, err)
}

func TestRunNightAudit_ActiveBookingsError(t *testing.T) {
	f := newAuditFixture(t)

	f.repo.EXPECT().GetLatest(gomock.Any()).Return(model.AuditLog{}, nil)
	f.bookingRepo.EXPECT().GetAllActive(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := f.svc.RunNightAudit(context.Background())

	assert.Error(t, err)
}

func TestRunNightAudit_TransactionError(t *testing.T) {
	f := newAuditFixture(t)

	f.repo.EXPECT().GetLatest(gomock.Any()).Return(model.AuditLog{}, nil)
	f.bookingRepo.EXPECT().GetAllActive(gomock.Any()).
		Return([]bookingModel.Booking{
			booking("arriving", bookingModel.StatusConfirmed, today(), today().AddDate(0, 0, 2)),
		}, nil)
	f.bookingRepo.EXPECT().Transact(gomock.Any(), gomock.Any()).Return(errors.New("tx failed"))

	_, err := f.svc.RunNightAudit(context.Background())

	assert.Error(t, err)
}

func TestBusinessDate_DefaultsToTodayBeforeFirstRun(t *testing.T) {
	f := newAuditFixture(t)

	f.repo.EXPECT().GetLatest(gomock.Any()).Return(model.AuditLog{}, nil)

	res, err := f.svc.BusinessDate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, timezone.Format(today(), constant.DateOnlyFormat), res.BusinessDate)
}

func TestBusinessDate_FollowsLatestLog(t *testing.T) {
	f := newAuditFixture(t)

	next := today().AddDate(0, 0, 3)

	f.repo.EXPECT().GetLatest(gomock.Any()).Return(model.AuditLog{ID: "log-1", NextDate: next}, nil)

	res, err := f.svc.BusinessDate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, timezone.Format(next, constant.DateOnlyFormat), res.BusinessDate)
}

func TestLogs(t *testing.T) {
	f := newAuditFixture(t)

	logs := []model.AuditLog{
		{ID: "log-1", Type: model.TypeNightAudit, DateRun: today(), NextDate: today().AddDate(0, 0, 1)},
		{ID: "log-2", Type: model.TypeTimerSweep, DateRun: today(), NextDate: today()},
	}

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(logs, nil)

	res, err := f.svc.Logs(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	require.Len(t, res.Logs, 2)
	assert.Equal(t, model.TypeNightAudit, res.Logs[0].Type)
}

func TestLogs_CountError(t *testing.T) {
	f := newAuditFixture(t)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("connection refused"))

	_, err := f.svc.Logs(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

	assert.Error(t, err)
}

func TestSweepExpired_CompletesOverdueStays(t *testing.T) {
	f := newAuditFixture(t)

	overdue := booking("overdue", bookingModel.StatusCheckedIn, today().AddDate(0, 0, -3), today())
	arriving := booking("arriving", bookingModel.StatusConfirmed, today(), today().AddDate(0, 0, 2))

	f.bookingRepo.EXPECT().GetAllActive(gomock.Any()).
		Return([]bookingModel.Booking{overdue, arriving}, nil)
	f.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, bookingModel.StatusCompleted, req[bookingModel.FieldStatus])

			return nil
		},
	)
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, auditLog model.AuditLog) error {
			assert.Equal(t, model.TypeTimerSweep, auditLog.Type)
			assert.Equal(t, 1, auditLog.AutoCompleted)
			assert.Zero(t, auditLog.ConfirmedToBooked)
			assert.Equal(t, auditLog.DateRun, auditLog.NextDate)

			return nil
		},
	)
	f.expectAsyncWrites()

	impl, ok := f.svc.(*serviceImpl)
	require.True(t, ok)

	err := impl.sweepExpired(context.Background())
	f.async.Wait()

	require.NoError(t, err)
}

func TestSweepExpired_NothingToComplete(t *testing.T) {
	f := newAuditFixture(t)

	f.bookingRepo.EXPECT().GetAllActive(gomock.Any()).
		Return([]bookingModel.Booking{
			booking("staying", bookingModel.StatusCheckedIn, today().AddDate(0, 0, -1), today().AddDate(0, 0, 1)),
		}, nil)

	impl, ok := f.svc.(*serviceImpl)
	require.True(t, ok)

	err := impl.sweepExpired(context.Background())

	require.NoError(t, err)
}

func TestAutoSweep_DisabledReturnsImmediately(t *testing.T) {
	f := newAuditFixture(t)

	done := make(chan struct{})
	go func() {
		f.svc.AutoSweep(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected AutoSweep to return when disabled")
	}
}

func TestAutoSweep_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.FrontDesk.NightAudit.AutoSweep = true
	cfg.FrontDesk.NightAudit.IntervalMinutes = 60

	svc := New(
		mocks.NewMockAudit(ctrl),
		bookingMocks.NewMockBooking(ctrl),
		cfg,
		cacheMocks.NewMockRedisCache(ctrl),
		kafkaMocks.NewMockClient(ctrl),
		otelMocks.NewOtel(),
	)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		svc.AutoSweep(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected AutoSweep to stop once the context is cancelled")
	}
}
