package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"courtside/infras/otel"
	"courtside/infras/postgres"
	"courtside/internal/domains/court/model"
	"courtside/shared"
	gDto "courtside/shared/dto"
	gRepo "courtside/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Court interface {
	Insert(ctx context.Context, model model.Court) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Court, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Court, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Court, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Court]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Court {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Court](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByIDTx resolves the court inside the caller's reservation transaction.
func (repo *repositoryImpl) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Court, error) {
	return repo.Repository.GetTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
}
