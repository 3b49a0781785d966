package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"courtside/infras/otel"
	"courtside/infras/postgres"
	"courtside/internal/domains/equipment/model"
	gDto "courtside/shared/dto"
	gRepo "courtside/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Equipment interface {
	Insert(ctx context.Context, model model.EquipmentPool) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.EquipmentPool, error)
	GetByKind(ctx context.Context, kind string) (model.EquipmentPool, error)
	GetByKindTx(ctx context.Context, tx *sqlx.Tx, kind string) (model.EquipmentPool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.EquipmentPool, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.EquipmentPool]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Equipment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.EquipmentPool](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func filterByKind(kind string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldKind,
				Value:    kind,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func (repo *repositoryImpl) GetByKind(ctx context.Context, kind string) (model.EquipmentPool, error) {
	return repo.Repository.Get(ctx, filterByKind(kind))
}

// GetByKindTx reads the pool inside the caller's reservation transaction so the
// stock total and the overlap sums come from one snapshot.
func (repo *repositoryImpl) GetByKindTx(ctx context.Context, tx *sqlx.Tx, kind string) (model.EquipmentPool, error) {
	return repo.Repository.GetTx(ctx, tx, filterByKind(kind))
}
