package service

import (
	"context"
	"fmt"

	equipmentModel "courtside/internal/domains/equipment/model"
	"courtside/internal/domains/pricing/engine"
	"courtside/internal/domains/reservation/model"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// equipmentAvailability is the outcome of the shared-pool capacity check for
// one requested interval.
type equipmentAvailability struct {
	RacketsOK        bool
	ShoesOK          bool
	RacketsAvailable int
	ShoesAvailable   int
}

func (s *serviceImpl) courtFreeTx(ctx context.Context, tx *sqlx.Tx, courtID string, req intervalRequest) (bool, error) {
	booked, err := s.repo.ExistOverlappingTx(ctx, tx, model.FieldCourtID, courtID, req.start, req.end)
	if err != nil {
		log.Error().Err(err).Msg("failed to check court availability")

		return false, fmt.Errorf("failed to check court availability: %w", err)
	}

	return !booked, nil
}

func (s *serviceImpl) coachFreeTx(ctx context.Context, tx *sqlx.Tx, coachID *string, req intervalRequest) (bool, error) {
	// No coach requested means the check is vacuously satisfied.
	if coachID == nil {
		return true, nil
	}

	booked, err := s.repo.ExistOverlappingTx(ctx, tx, model.FieldCoachID, *coachID, req.start, req.end)
	if err != nil {
		log.Error().Err(err).Msg("failed to check coach availability")

		return false, fmt.Errorf("failed to check coach availability: %w", err)
	}

	return !booked, nil
}

// equipmentAvailabilityTx compares requested quantities against pool stock
// minus the units held by overlapping confirmed reservations. The returned
// pools feed the pricing engine so stock and price come from one snapshot.
func (s *serviceImpl) equipmentAvailabilityTx(ctx context.Context, tx *sqlx.Tx, rackets, shoes int, req intervalRequest) (equipmentAvailability, map[engine.PoolKind]engine.Pool, error) {
	availability := equipmentAvailability{RacketsOK: true, ShoesOK: true}
	pools := map[engine.PoolKind]engine.Pool{}

	racketPool, err := s.equipmentRepo.GetByKindTx(ctx, tx, equipmentModel.KindRacket)
	if err != nil {
		log.Error().Err(err).Msg("failed to get racket pool")

		return availability, pools, fmt.Errorf("failed to get racket pool: %w", err)
	}

	shoePool, err := s.equipmentRepo.GetByKindTx(ctx, tx, equipmentModel.KindShoe)
	if err != nil {
		log.Error().Err(err).Msg("failed to get shoe pool")

		return availability, pools, fmt.Errorf("failed to get shoe pool: %w", err)
	}

	if racketPool.ID != "" {
		pools[engine.PoolRacket] = engine.Pool{UnitPrice: racketPool.UnitPrice}
	}

	if shoePool.ID != "" {
		pools[engine.PoolShoe] = engine.Pool{UnitPrice: shoePool.UnitPrice}
	}

	if rackets == 0 && shoes == 0 {
		return availability, pools, nil
	}

	usage, err := s.repo.SumEquipmentOverlappingTx(ctx, tx, req.start, req.end)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum overlapping equipment usage")

		return availability, pools, fmt.Errorf("failed to sum overlapping equipment usage: %w", err)
	}

	availability.RacketsAvailable = racketPool.TotalStock - usage.Rackets
	availability.ShoesAvailable = shoePool.TotalStock - usage.Shoes
	availability.RacketsOK = rackets <= availability.RacketsAvailable
	availability.ShoesOK = shoes <= availability.ShoesAvailable

	return availability, pools, nil
}
