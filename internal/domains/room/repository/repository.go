package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	LockTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Room, error)
	Transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// LockTx reads a room inside the given transaction while taking a row lock,
// so an availability check and the write that depends on it see a stable room.
// Returns a zero-ID room when no row matches.
func (repo *repositoryImpl) LockTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".LockTx")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT id, number, type, floor, building, capacity, image, blocked, block_reason, blocked_at, created_at, created_by, modified_at, modified_by FROM %s WHERE id = $1 FOR UPDATE",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var room model.Room

	err := tx.GetContext(ctx, &room, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return room, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return room, fmt.Errorf("failed to lock data (%s): %w", model.EntityName, err)
	}

	return room, nil
}
