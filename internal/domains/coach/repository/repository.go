package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"courtside/infras/otel"
	"courtside/infras/postgres"
	"courtside/internal/domains/coach/model"
	"courtside/shared"
	gDto "courtside/shared/dto"
	gRepo "courtside/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Coach interface {
	Insert(ctx context.Context, model model.Coach) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Coach, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Coach, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Coach, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Coach]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Coach {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Coach](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByIDTx resolves the coach inside the caller's reservation transaction.
func (repo *repositoryImpl) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Coach, error) {
	return repo.Repository.GetTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
}
