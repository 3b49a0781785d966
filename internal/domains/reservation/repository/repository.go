package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"courtside/infras/otel"
	"courtside/infras/postgres"
	"courtside/internal/domains/reservation/model"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/logger"
	gRepo "courtside/shared/repository"

	"github.com/jmoiron/sqlx"
)

// EquipmentUsage is the number of units held by confirmed reservations that
// overlap a requested interval.
type EquipmentUsage struct {
	Rackets int `db:"rackets"`
	Shoes   int `db:"shoes"`
}

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	ExistOverlappingTx(ctx context.Context, tx *sqlx.Tx, field, id string, start, end time.Time) (bool, error)
	SumEquipmentOverlappingTx(ctx context.Context, tx *sqlx.Tx, start, end time.Time) (EquipmentUsage, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Two intervals overlap when each starts before the other ends. Both
// comparisons are strict, so back-to-back slots never collide.
func overlapFilter(field, id string, start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusConfirmed,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_end",
				Field:    model.FieldStartTime,
				Value:    end,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_start",
				Field:    model.FieldEndTime,
				Value:    start,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
		},
	}
}

// ExistOverlappingTx reports whether any confirmed reservation on the given
// resource column (court_id or coach_id) overlaps [start, end).
func (repo *repositoryImpl) ExistOverlappingTx(ctx context.Context, tx *sqlx.Tx, field, id string, start, end time.Time) (bool, error) {
	return repo.Repository.ExistTx(ctx, tx, overlapFilter(field, id, start, end))
}

// SumEquipmentOverlappingTx totals the rackets and shoes held by confirmed
// reservations overlapping [start, end).
func (repo *repositoryImpl) SumEquipmentOverlappingTx(ctx context.Context, tx *sqlx.Tx, start, end time.Time) (usage EquipmentUsage, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.SumEquipmentOverlappingTx")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(%s), 0) AS rackets, COALESCE(SUM(%s), 0) AS shoes FROM %s WHERE %s = :status AND %s < :overlap_end AND %s > :overlap_start",
		model.FieldRackets, model.FieldShoes, model.TableName, model.FieldStatus, model.FieldStartTime, model.FieldEndTime,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"status":        model.StatusConfirmed,
		"overlap_start": start,
		"overlap_end":   end,
	}

	prepare, err := tx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return usage, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &usage, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return usage, fmt.Errorf("failed to sum overlapping equipment (%s): %w", model.EntityName, err)
	}

	return usage, nil
}
