package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/organization/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type Organization interface {
	Insert(ctx context.Context, model model.Organization) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Organization, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Organization, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Voucher interface {
	Insert(ctx context.Context, model model.Voucher) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Voucher, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Voucher, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Organization]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Organization {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Organization](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type voucherRepositoryImpl struct {
	gRepo.Repository[model.Voucher]
	db   *postgres.Connection
	otel otel.Otel
}

func NewVoucher(db *postgres.Connection, otel otel.Otel) Voucher {
	return &voucherRepositoryImpl{
		Repository: gRepo.NewRepository[model.Voucher](model.VoucherEntityName, model.VoucherTableName, model.VoucherFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
