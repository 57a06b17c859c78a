package service

import (
	"context"
	"sync"
	"testing"

	"frontdesk/config"
	otelMocks "frontdesk/infras/otel/mocks"
	s3Mocks "frontdesk/infras/s3/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/room/mocks"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo        *mocks.MockRoom
	bookingRepo *bookingMocks.MockBooking
	cache       *cacheMocks.MockRedisCache
	s3          *s3Mocks.MockS3
	svc         Room
	async       *sync.WaitGroup
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:        mocks.NewMockRoom(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		s3:          s3Mocks.NewMockS3(ctrl),
		async:       &sync.WaitGroup{},
	}

	f.svc = New(f.repo, f.bookingRepo, &config.Config{}, f.cache, f.s3, otelMocks.NewOtel())

	return f
}

func (f *fixture) expectInvalidate() {
	f.async.Add(3)

	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Do(func(any, any) {
		f.async.Done()
	}).Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Do(func(any, any) {
		f.async.Done()
	}).Return(nil).Times(2)
}

func (f *fixture) expectInvalidateLists() {
	f.async.Add(2)

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Do(func(any, any) {
		f.async.Done()
	}).Return(nil).Times(2)
}

func validRoom() model.Room {
	return model.Room{
		ID:       "room-1",
		Number:   "101A",
		Type:     model.TypeDouble,
		Floor:    1,
		Building: "A",
		Capacity: 2,
	}
}

func TestRoomService_Create(t *testing.T) {
	f := newFixture(t)

	req := dto.CreateRoomRequest{
		Number: "101A",
		Type:   string(model.TypeDouble),
		Floor:  1,
	}

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, room model.Room) error {
			assert.Equal(t, "101A", room.Number)
			assert.Equal(t, model.TypeDouble, room.Type)
			assert.Equal(t, model.TypeDouble.DefaultCapacity(), room.Capacity)

			return nil
		},
	)
	f.expectInvalidateLists()

	err := f.svc.Create(context.Background(), req)
	f.async.Wait()

	require.NoError(t, err)
}

func TestRoomService_CreateDuplicateNumber(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	err := f.svc.Create(context.Background(), dto.CreateRoomRequest{
		Number: "101A",
		Type:   string(model.TypeDouble),
		Floor:  1,
	})

	require.Error(t, err)

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, 409, fail.Code)
}

func TestRoomService_Get(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validRoom(), nil)

	f.async.Add(1)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Do(func(any, any, any, any) {
		f.async.Done()
	}).Return(nil)

	res, err := f.svc.Get(context.Background(), "room-1")
	f.async.Wait()

	require.NoError(t, err)
	assert.Equal(t, "101A", res.Number)
}

func TestRoomService_GetNotFound(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

	_, err := f.svc.Get(context.Background(), "missing")

	require.Error(t, err)

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, 404, fail.Code)
}

func TestRoomService_Block(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validRoom(), nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req map[string]any, _ any) error {
			assert.Equal(t, true, req[model.FieldBlocked])
			assert.Equal(t, "renovation", req[model.FieldBlockReason])

			return nil
		},
	)
	f.expectInvalidate()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "manager-id")
	err := f.svc.Block(ctx, dto.BlockRoomRequest{Reason: "renovation"}, "room-1")
	f.async.Wait()

	require.NoError(t, err)
}

func TestRoomService_BlockAlreadyBlocked(t *testing.T) {
	f := newFixture(t)

	blocked := validRoom()
	blocked.Blocked = true

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(blocked, nil)

	err := f.svc.Block(context.Background(), dto.BlockRoomRequest{}, "room-1")

	require.Error(t, err)

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, 409, fail.Code)
}

func TestRoomService_Unblock(t *testing.T) {
	f := newFixture(t)

	blocked := validRoom()
	blocked.Blocked = true
	blocked.BlockReason = "renovation"

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(blocked, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req map[string]any, _ any) error {
			assert.Equal(t, false, req[model.FieldBlocked])
			assert.Equal(t, constant.Empty, req[model.FieldBlockReason])

			return nil
		},
	)
	f.expectInvalidate()

	err := f.svc.Unblock(context.Background(), "room-1")
	f.async.Wait()

	require.NoError(t, err)
}

func TestRoomService_UnblockNotBlocked(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validRoom(), nil)

	err := f.svc.Unblock(context.Background(), "room-1")

	require.Error(t, err)

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, 409, fail.Code)
}

func TestRoomService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validRoom(), nil)
	f.bookingRepo.EXPECT().GetActiveByRoom(gomock.Any(), "room-1").Return(nil, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	f.expectInvalidate()

	err := f.svc.Delete(context.Background(), "room-1")
	f.async.Wait()

	require.NoError(t, err)
}

func TestRoomService_DeleteWithActiveBookings(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validRoom(), nil)
	f.bookingRepo.EXPECT().GetActiveByRoom(gomock.Any(), "room-1").Return([]bookingModel.Booking{
		{ID: "bk-1", RoomID: "room-1", Status: bookingModel.StatusCheckedIn},
	}, nil)

	err := f.svc.Delete(context.Background(), "room-1")

	require.Error(t, err)

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, 409, fail.Code)
}
