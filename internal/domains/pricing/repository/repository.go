package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"courtside/infras/otel"
	"courtside/infras/postgres"
	"courtside/internal/domains/pricing/model"
	gDto "courtside/shared/dto"
	gRepo "courtside/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Pricing interface {
	Insert(ctx context.Context, model model.PricingRule) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PricingRule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PricingRule, error)
	ListEnabled(ctx context.Context) ([]model.PricingRule, error)
	ListEnabledTx(ctx context.Context, tx *sqlx.Tx) ([]model.PricingRule, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.PricingRule]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Pricing {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PricingRule](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Enabled rules are applied in creation order. The ordering is part of the
// pricing contract: multipliers and surcharges do not commute, so every read
// path must hand the engine the same sequence.
func enabledOrdering() (gDto.QueryParams, gDto.FilterGroup) {
	params := gDto.QueryParams{
		SortBy:  "created_at",
		SortDir: "ASC",
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEnabled,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return params, filter
}

func (repo *repositoryImpl) ListEnabled(ctx context.Context) ([]model.PricingRule, error) {
	params, filter := enabledOrdering()

	return repo.Repository.GetAll(ctx, params, filter)
}

// ListEnabledTx reads the rule set inside the caller's reservation
// transaction so the priced breakdown reflects the committed snapshot.
func (repo *repositoryImpl) ListEnabledTx(ctx context.Context, tx *sqlx.Tx) ([]model.PricingRule, error) {
	params, filter := enabledOrdering()

	return repo.Repository.GetAllTx(ctx, tx, params, filter)
}
