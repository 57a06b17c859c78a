package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/audit/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type Audit interface {
	Insert(ctx context.Context, model model.AuditLog) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AuditLog, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AuditLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetLatest(ctx context.Context) (model.AuditLog, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.AuditLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Audit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AuditLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetLatest returns the most recent night audit log. A zero-ID log means no
// audit has ever run.
func (repo *repositoryImpl) GetLatest(ctx context.Context) (model.AuditLog, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetLatest")
	defer scope.End()

	logs, err := repo.GetAll(ctx, gDto.QueryParams{
		Limit:   1,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldType,
				Operator: gDto.FilterOperatorEq,
				Value:    model.TypeNightAudit,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		return model.AuditLog{}, err //nolint:wrapcheck
	}

	if len(logs) == 0 {
		return model.AuditLog{}, nil
	}

	return logs[0], nil
}
