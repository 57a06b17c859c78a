package service

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"frontdesk/config"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	guestModel "frontdesk/internal/domains/guest/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo      *mocks.MockBooking
	roomRepo  *roomMocks.MockRoom
	guestRepo *guestMocks.MockGuest
	cache     *cacheMocks.MockRedisCache
	kafka     *kafkaMocks.MockClient
	svc       Booking
	async     *sync.WaitGroup
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:      mocks.NewMockBooking(ctrl),
		roomRepo:  roomMocks.NewMockRoom(ctrl),
		guestRepo: guestMocks.NewMockGuest(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		kafka:     kafkaMocks.NewMockClient(ctrl),
		async:     &sync.WaitGroup{},
	}

	f.svc = New(f.repo, f.roomRepo, f.guestRepo, &config.Config{}, f.cache, f.kafka, otelMocks.NewOtel())

	return f
}

// expectAsyncWrites arms the cache invalidation and event publish that run
// after a successful mutation, and lets the test wait for them.
func (f *fixture) expectAsyncWrites() {
	f.async.Add(5)

	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Do(func(any, any) {
		f.async.Done()
	}).Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Do(func(any, any) {
		f.async.Done()
	}).Return(nil).Times(3)
	f.kafka.EXPECT().SendMessages(gomock.Any(), constant.KafkaTopicBookingEvents, gomock.Any()).Do(func(any, any, ...any) {
		f.async.Done()
	}).Return(nil)
}

func (f *fixture) expectTransact() {
	f.repo.EXPECT().Transact(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		},
	)
}

func dateString(offsetDays int) string {
	return timezone.Format(timezone.Now().AddDate(0, 0, offsetDays), constant.DateOnlyFormat)
}

func createRequest(roomID string) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomID:       roomID,
		GuestName:    "Ionescu Maria",
		GuestPhone:   "+37360000001",
		GuestGender:  "female",
		CheckInDate:  dateString(2),
		CheckOutDate: dateString(4),
	}
}

func activeBooking(id, roomID string, inOffset, outOffset int, status model.Status) model.Booking {
	return model.Booking{
		ID:           id,
		RoomID:       roomID,
		Status:       status,
		CheckInDate:  timezone.Now().AddDate(0, 0, inOffset),
		CheckOutDate: timezone.Now().AddDate(0, 0, outOffset),
	}
}

func TestBookingService_Create(t *testing.T) {
	roomID := "5f6c2f1e-0000-4000-8000-000000000001"

	t.Run("future check-in starts confirmed", func(t *testing.T) {
		f := newFixture(t)
		req := createRequest(roomID)

		f.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{ID: "guest-1"}, nil)
		f.expectTransact()
		f.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), roomID).Return(roomModel.Room{ID: roomID, Capacity: 1}, nil)
		f.repo.EXPECT().GetActiveByRoomTx(gomock.Any(), gomock.Any(), roomID).Return(nil, nil)

		var inserted model.Booking

		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				inserted = booking

				return nil
			},
		)
		f.expectAsyncWrites()

		res, err := f.svc.Create(context.Background(), req)
		require.NoError(t, err)
		f.async.Wait()

		assert.Equal(t, string(model.StatusConfirmed), res.Status)
		assert.Equal(t, model.StatusConfirmed, inserted.Status)
		assert.Equal(t, "guest-1", inserted.GuestID)
		assert.Equal(t, 2, inserted.Duration)
	})

	t.Run("same-day check-in starts booked", func(t *testing.T) {
		f := newFixture(t)
		req := createRequest(roomID)
		req.CheckInDate = dateString(0)
		req.CheckOutDate = dateString(1)

		f.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{ID: "guest-1"}, nil)
		f.expectTransact()
		f.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), roomID).Return(roomModel.Room{ID: roomID, Capacity: 1}, nil)
		f.repo.EXPECT().GetActiveByRoomTx(gomock.Any(), gomock.Any(), roomID).Return(nil, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.expectAsyncWrites()

		res, err := f.svc.Create(context.Background(), req)
		require.NoError(t, err)
		f.async.Wait()

		assert.Equal(t, string(model.StatusBooked), res.Status)
	})

	t.Run("rejects zero-night stay", func(t *testing.T) {
		f := newFixture(t)
		req := createRequest(roomID)
		req.CheckOutDate = req.CheckInDate

		_, err := f.svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, failure.InvalidDateRange)
	})

	t.Run("rejects blocked room", func(t *testing.T) {
		f := newFixture(t)
		req := createRequest(roomID)

		f.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{ID: "guest-1"}, nil)
		f.expectTransact()
		f.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), roomID).Return(roomModel.Room{ID: roomID, Capacity: 1, Blocked: true}, nil)

		_, err := f.svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, failure.RoomBlocked)
	})

	t.Run("rejects unknown room", func(t *testing.T) {
		f := newFixture(t)
		req := createRequest(roomID)

		f.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{ID: "guest-1"}, nil)
		f.expectTransact()
		f.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), roomID).Return(roomModel.Room{}, nil)

		_, err := f.svc.Create(context.Background(), req)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("rejects overlap beyond capacity", func(t *testing.T) {
		f := newFixture(t)
		req := createRequest(roomID)

		f.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{ID: "guest-1"}, nil)
		f.expectTransact()
		f.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), roomID).Return(roomModel.Room{ID: roomID, Capacity: 1}, nil)
		f.repo.EXPECT().GetActiveByRoomTx(gomock.Any(), gomock.Any(), roomID).Return([]model.Booking{
			activeBooking("other", roomID, 1, 5, model.StatusBooked),
		}, nil)

		_, err := f.svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, failure.CapacityExceeded)
	})

	t.Run("second booking fits a two-capacity room", func(t *testing.T) {
		f := newFixture(t)
		req := createRequest(roomID)

		f.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{ID: "guest-1"}, nil)
		f.expectTransact()
		f.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), roomID).Return(roomModel.Room{ID: roomID, Capacity: 2}, nil)
		f.repo.EXPECT().GetActiveByRoomTx(gomock.Any(), gomock.Any(), roomID).Return([]model.Booking{
			activeBooking("other", roomID, 1, 5, model.StatusBooked),
		}, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.expectAsyncWrites()

		_, err := f.svc.Create(context.Background(), req)
		require.NoError(t, err)
		f.async.Wait()
	})

	t.Run("creates guest card for a first-time guest", func(t *testing.T) {
		f := newFixture(t)
		req := createRequest(roomID)

		f.guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{}, nil)

		var created guestModel.Guest

		f.guestRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, guest guestModel.Guest) error {
				created = guest

				return nil
			},
		)
		f.expectTransact()
		f.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), roomID).Return(roomModel.Room{ID: roomID, Capacity: 1}, nil)
		f.repo.EXPECT().GetActiveByRoomTx(gomock.Any(), gomock.Any(), roomID).Return(nil, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.expectAsyncWrites()

		_, err := f.svc.Create(context.Background(), req)
		require.NoError(t, err)
		f.async.Wait()

		assert.Equal(t, req.GuestName, created.FullName)
		assert.Equal(t, req.GuestPhone, created.Phone)
		assert.NotEmpty(t, created.ID)
	})
}

func TestBookingService_CheckIn(t *testing.T) {
	t.Run("stamps the actual arrival time", func(t *testing.T) {
		f := newFixture(t)
		booking := activeBooking("b-1", "r-1", 0, 2, model.StatusBooked)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		var updated map[string]any

		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ any) error {
				updated = fields

				return nil
			},
		)
		f.expectAsyncWrites()

		err := f.svc.CheckIn(context.Background(), "b-1")
		require.NoError(t, err)
		f.async.Wait()

		assert.Equal(t, model.StatusCheckedIn, updated[model.FieldStatus])
		assert.IsType(t, time.Time{}, updated[model.FieldActualCheckInAt])
	})

	t.Run("rejects check-in on a completed stay", func(t *testing.T) {
		f := newFixture(t)
		booking := activeBooking("b-1", "r-1", -3, -1, model.StatusCompleted)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		err := f.svc.CheckIn(context.Background(), "b-1")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("rejects unknown booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := f.svc.CheckIn(context.Background(), "missing")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_CheckOut(t *testing.T) {
	t.Run("completes a checked-in stay", func(t *testing.T) {
		f := newFixture(t)
		booking := activeBooking("b-1", "r-1", -2, 1, model.StatusCheckedIn)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		var updated map[string]any

		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ any) error {
				updated = fields

				return nil
			},
		)
		f.expectAsyncWrites()

		err := f.svc.CheckOut(context.Background(), "b-1")
		require.NoError(t, err)
		f.async.Wait()

		assert.Equal(t, model.StatusCompleted, updated[model.FieldStatus])
		assert.IsType(t, time.Time{}, updated[model.FieldActualCheckOutAt])
	})

	t.Run("rejects check-out before check-in", func(t *testing.T) {
		f := newFixture(t)
		booking := activeBooking("b-1", "r-1", 1, 3, model.StatusBooked)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		err := f.svc.CheckOut(context.Background(), "b-1")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("marks the record cancelled instead of deleting", func(t *testing.T) {
		f := newFixture(t)
		booking := activeBooking("b-1", "r-1", 1, 3, model.StatusConfirmed)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		var updated map[string]any

		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ any) error {
				updated = fields

				return nil
			},
		)
		f.expectAsyncWrites()

		err := f.svc.Cancel(context.Background(), "b-1")
		require.NoError(t, err)
		f.async.Wait()

		assert.Equal(t, model.StatusCancelled, updated[model.FieldStatus])
	})

	t.Run("rejects double cancellation", func(t *testing.T) {
		f := newFixture(t)
		booking := activeBooking("b-1", "r-1", 1, 3, model.StatusCancelled)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		err := f.svc.Cancel(context.Background(), "b-1")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestBookingService_ExtendStay(t *testing.T) {
	roomID := "r-1"

	t.Run("re-validates capacity without counting itself", func(t *testing.T) {
		f := newFixture(t)
		booking := activeBooking("b-1", roomID, 0, 2, model.StatusCheckedIn)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.expectTransact()
		f.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), roomID).Return(roomModel.Room{ID: roomID, Capacity: 1}, nil)
		f.repo.EXPECT().GetActiveByRoomTx(gomock.Any(), gomock.Any(), roomID).Return([]model.Booking{booking}, nil)

		var updated map[string]any

		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				updated = fields

				return nil
			},
		)
		f.expectAsyncWrites()

		err := f.svc.ExtendStay(context.Background(), dto.ExtendStayRequest{CheckOutDate: dateString(5)}, "b-1")
		require.NoError(t, err)
		f.async.Wait()

		assert.Equal(t, 5, updated[model.FieldDuration])
	})

	t.Run("rejects extension that collides with the next stay", func(t *testing.T) {
		f := newFixture(t)
		booking := activeBooking("b-1", roomID, 0, 2, model.StatusCheckedIn)
		next := activeBooking("b-2", roomID, 2, 5, model.StatusConfirmed)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.expectTransact()
		f.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), roomID).Return(roomModel.Room{ID: roomID, Capacity: 1}, nil)
		f.repo.EXPECT().GetActiveByRoomTx(gomock.Any(), gomock.Any(), roomID).Return([]model.Booking{booking, next}, nil)

		err := f.svc.ExtendStay(context.Background(), dto.ExtendStayRequest{CheckOutDate: dateString(4)}, "b-1")
		assert.ErrorIs(t, err, failure.CapacityExceeded)
	})

	t.Run("rejects a check-out before check-in", func(t *testing.T) {
		f := newFixture(t)
		booking := activeBooking("b-1", roomID, 2, 4, model.StatusConfirmed)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		err := f.svc.ExtendStay(context.Background(), dto.ExtendStayRequest{CheckOutDate: dateString(1)}, "b-1")
		assert.ErrorIs(t, err, failure.InvalidDateRange)
	})
}

func TestBookingService_Transfer(t *testing.T) {
	t.Run("moves the stay when the target room has space", func(t *testing.T) {
		f := newFixture(t)
		booking := activeBooking("b-1", "r-1", 0, 2, model.StatusCheckedIn)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.expectTransact()
		f.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), "r-2").Return(roomModel.Room{ID: "r-2", Capacity: 1}, nil)
		f.repo.EXPECT().GetActiveByRoomTx(gomock.Any(), gomock.Any(), "r-2").Return(nil, nil)

		var updated map[string]any

		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				updated = fields

				return nil
			},
		)
		f.expectAsyncWrites()

		err := f.svc.Transfer(context.Background(), dto.TransferRequest{RoomID: "r-2"}, "b-1")
		require.NoError(t, err)
		f.async.Wait()

		assert.Equal(t, "r-2", updated[model.FieldRoomID])
	})

	t.Run("rejects a blocked target room", func(t *testing.T) {
		f := newFixture(t)
		booking := activeBooking("b-1", "r-1", 0, 2, model.StatusCheckedIn)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.expectTransact()
		f.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), "r-2").Return(roomModel.Room{ID: "r-2", Capacity: 1, Blocked: true}, nil)

		err := f.svc.Transfer(context.Background(), dto.TransferRequest{RoomID: "r-2"}, "b-1")
		assert.ErrorIs(t, err, failure.RoomBlocked)
	})

	t.Run("rejects transfer to the same room", func(t *testing.T) {
		f := newFixture(t)
		booking := activeBooking("b-1", "r-1", 0, 2, model.StatusCheckedIn)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		err := f.svc.Transfer(context.Background(), dto.TransferRequest{RoomID: "r-1"}, "b-1")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_CheckAvailability(t *testing.T) {
	roomID := "r-1"

	t.Run("reports remaining capacity", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: roomID, Capacity: 2}, nil)
		f.repo.EXPECT().GetActiveByRoom(gomock.Any(), roomID).Return([]model.Booking{
			activeBooking("b-1", roomID, 1, 5, model.StatusBooked),
		}, nil)

		res, err := f.svc.CheckAvailability(context.Background(), dto.CheckAvailabilityRequest{
			RoomID:       roomID,
			CheckInDate:  dateString(2),
			CheckOutDate: dateString(4),
		})
		require.NoError(t, err)

		assert.True(t, res.Available)
		assert.Equal(t, 2, res.Capacity)
		assert.Equal(t, 1, res.Occupied)
	})

	t.Run("full room is unavailable", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: roomID, Capacity: 1}, nil)
		f.repo.EXPECT().GetActiveByRoom(gomock.Any(), roomID).Return([]model.Booking{
			activeBooking("b-1", roomID, 1, 5, model.StatusBooked),
		}, nil)

		res, err := f.svc.CheckAvailability(context.Background(), dto.CheckAvailabilityRequest{
			RoomID:       roomID,
			CheckInDate:  dateString(2),
			CheckOutDate: dateString(4),
		})
		require.NoError(t, err)

		assert.False(t, res.Available)
	})

	t.Run("back-to-back stays do not collide", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: roomID, Capacity: 1}, nil)
		f.repo.EXPECT().GetActiveByRoom(gomock.Any(), roomID).Return([]model.Booking{
			activeBooking("b-1", roomID, 0, 2, model.StatusCheckedIn),
		}, nil)

		res, err := f.svc.CheckAvailability(context.Background(), dto.CheckAvailabilityRequest{
			RoomID:       roomID,
			CheckInDate:  dateString(2),
			CheckOutDate: dateString(4),
		})
		require.NoError(t, err)

		assert.True(t, res.Available)
		assert.Equal(t, 0, res.Occupied)
	})
}

func TestBookingService_RoomStatuses(t *testing.T) {
	f := newFixture(t)

	rooms := []roomModel.Room{
		{ID: "r-1", Number: "101", Capacity: 1},
		{ID: "r-2", Number: "102", Capacity: 1},
		{ID: "r-3", Number: "103", Capacity: 1, Blocked: true},
	}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	f.roomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(rooms, nil)
	f.repo.EXPECT().GetAllActive(gomock.Any()).Return([]model.Booking{
		activeBooking("b-1", "r-1", 0, 2, model.StatusCheckedIn),
	}, nil)

	f.async.Add(1)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Do(func(any, any, any, any) {
		f.async.Done()
	}).Return(nil)

	res, err := f.svc.RoomStatuses(context.Background(), dateString(0))
	require.NoError(t, err)
	f.async.Wait()

	require.Len(t, res.Statuses, 3)
	assert.Equal(t, string(roomModel.StatusOccupied), res.Statuses[0].Status)
	assert.Equal(t, string(roomModel.StatusFree), res.Statuses[1].Status)
	assert.Equal(t, string(roomModel.StatusBlocked), res.Statuses[2].Status)
}
