package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetAllActive(ctx context.Context) ([]model.Booking, error)
	GetActiveByRoom(ctx context.Context, roomID string) ([]model.Booking, error)
	GetActiveByRoomTx(ctx context.Context, tx *sqlx.Tx, roomID string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func activeStatusFilter() gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorNotIn,
		Value:    []string{string(model.StatusCancelled), string(model.StatusCompleted)},
		Table:    model.TableName,
	}
}

// GetAllActive returns every booking still counting toward occupancy,
// across all rooms. The status grid and the night audit both start here.
func (repo *repositoryImpl) GetAllActive(ctx context.Context) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetAllActive")
	defer scope.End()

	return repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{ //nolint:wrapcheck
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{activeStatusFilter()},
	})
}

func (repo *repositoryImpl) GetActiveByRoom(ctx context.Context, roomID string) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetActiveByRoom")
	defer scope.End()

	return repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{ //nolint:wrapcheck
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
			activeStatusFilter(),
		},
	})
}

// GetActiveByRoomTx re-reads the room's active bookings inside the same
// transaction that holds the room row lock. A capacity decision made on this
// snapshot stays valid until the transaction commits.
func (repo *repositoryImpl) GetActiveByRoomTx(ctx context.Context, tx *sqlx.Tx, roomID string) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetActiveByRoomTx")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT id, room_id, guest_id, guest_name, guest_phone, guest_age, guest_address, guest_gender, guest_passport, check_in_date, check_out_date, duration, status, actual_check_in_at, actual_check_out_at, voucher_number, organization_id, second_guest_id, second_guest_name, second_guest_gender, created_at, created_by, modified_at, modified_by FROM %s WHERE room_id = $1 AND status NOT IN ($2, $3)",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []model.Booking

	err := tx.SelectContext(ctx, &bookings, query, roomID, string(model.StatusCancelled), string(model.StatusCompleted))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return bookings, fmt.Errorf("failed to get active data (%s): %w", model.EntityName, err)
	}

	return bookings, nil
}
