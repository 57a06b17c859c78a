package service

import (
	"context"
	"sync"
	"testing"

	"frontdesk/config"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/guest/mocks"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	cacheMocks "frontdesk/shared/cache/mocks"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo  *mocks.MockGuest
	cache *cacheMocks.MockRedisCache
	svc   Guest
	async *sync.WaitGroup
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:  mocks.NewMockGuest(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		async: &sync.WaitGroup{},
	}

	f.svc = New(f.repo, &config.Config{}, f.cache, otelMocks.NewOtel())

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

func validGuest() model.Guest {
	return model.Guest{
		ID:             "guest-1",
		FirstName:      "Ana",
		LastName:       "Popescu",
		FullName:       "Ana Popescu",
		Phone:          "+37360000000",
		PassportNumber: "A1234567",
		Gender:         model.GenderFemale,
	}
}

func TestGuestService_FindByPhoneOrPassport(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		passport string
	}{
		{
			name:  "finds by phone",
			phone: "+37360000000",
		},
		{
			name:     "finds by passport",
			passport: "A1234567",
		},
		{
			name:     "finds by either identifier",
			phone:    "+37360000000",
			passport: "A1234567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Guest, error) {
					assert.Equal(t, gDto.FilterGroupOperatorOr, filter.Operator)
					assert.NotEmpty(t, filter.Filters)

					return validGuest(), nil
				},
			)

			res, err := f.svc.FindByPhoneOrPassport(context.Background(), tt.phone, tt.passport)

			require.NoError(t, err)
			assert.Equal(t, "guest-1", res.ID)
			assert.Equal(t, "Ana Popescu", res.FullName)
		})
	}
}

func TestGuestService_FindWithoutIdentifiers(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.FindByPhoneOrPassport(context.Background(), "", "")

	require.Error(t, err)

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, 400, fail.Code)
}

func TestGuestService_FindNoMatch(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

	_, err := f.svc.FindByPhoneOrPassport(context.Background(), "+37399999999", "")

	require.Error(t, err)

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, 404, fail.Code)
}

func TestGuestService_Update(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.expectInvalidate()

	err := f.svc.Update(context.Background(), dto.UpdateGuestRequest{
		Phone: "+37361111111",
	}, "guest-1")
	f.async.Wait()

	require.NoError(t, err)
}

func TestGuestService_UpdateNotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.svc.Update(context.Background(), dto.UpdateGuestRequest{}, "missing")

	require.Error(t, err)

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, 404, fail.Code)
}

func TestGuestService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	f.expectInvalidate()

	err := f.svc.Delete(context.Background(), "guest-1")
	f.async.Wait()

	require.NoError(t, err)
}

func TestGuestService_DeleteNotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.svc.Delete(context.Background(), "missing")

	require.Error(t, err)

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, 404, fail.Code)
}
