package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courtside/config"
	"courtside/infras/kafka"
	"courtside/infras/otel"
	"courtside/infras/postgres"
	coachModel "courtside/internal/domains/coach/model"
	coachRepository "courtside/internal/domains/coach/repository"
	courtModel "courtside/internal/domains/court/model"
	courtRepository "courtside/internal/domains/court/repository"
	equipmentRepository "courtside/internal/domains/equipment/repository"
	"courtside/internal/domains/pricing/engine"
	pricingModel "courtside/internal/domains/pricing/model"
	pricingRepository "courtside/internal/domains/pricing/repository"
	"courtside/internal/domains/reservation/model"
	"courtside/internal/domains/reservation/model/dto"
	"courtside/internal/domains/reservation/repository"
	"courtside/shared"
	"courtside/shared/cache"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/failure"
	"courtside/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

const (
	msgCourtBooked       = "Court already booked for this slot"
	msgCoachUnavailable  = "Coach not available for this slot"
	msgNotEnoughRackets  = "Not enough rackets. Available: %d"
	msgNotEnoughShoes    = "Not enough shoes. Available: %d"
	msgConcurrentBooking = "Reservation conflicts with a concurrent booking"
)

type intervalRequest struct {
	start time.Time
	end   time.Time
}

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Estimate(ctx context.Context, req dto.CreateReservationRequest) (dto.EstimateResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
}

type serviceImpl struct {
	repo          repository.Reservation
	courtRepo     courtRepository.Court
	coachRepo     coachRepository.Coach
	equipmentRepo equipmentRepository.Equipment
	pricingRepo   pricingRepository.Pricing
	txRunner      postgres.TxRunner
	cfg           *config.Config
	cache         cache.RedisCache
	kafka         kafka.Client
	otel          otel.Otel
}

func New(
	repo repository.Reservation,
	courtRepo courtRepository.Court,
	coachRepo coachRepository.Coach,
	equipmentRepo equipmentRepository.Equipment,
	pricingRepo pricingRepository.Pricing,
	txRunner postgres.TxRunner,
	cfg *config.Config,
	cache cache.RedisCache,
	kafkaClient kafka.Client,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:          repo,
		courtRepo:     courtRepo,
		coachRepo:     coachRepo,
		equipmentRepo: equipmentRepo,
		pricingRepo:   pricingRepo,
		txRunner:      txRunner,
		cfg:           cfg,
		cache:         cache,
		kafka:         kafkaClient,
		otel:          otel,
	}
}

// Create runs the availability checks, the price computation, and the insert
// inside one serializable transaction. Either the request passes every check
// and the reservation commits with its priced breakdown, or nothing persists.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.EndTime.After(req.StartTime) {
		return res, failure.BadRequestFromString("end_time must be after start_time") // nolint:wrapcheck
	}

	interval := intervalRequest{
		start: timezone.ToAppTime(req.StartTime),
		end:   timezone.ToAppTime(req.EndTime),
	}

	var reservation model.Reservation

	err = s.txRunner.WithSerializableTx(ctx, func(tx *sqlx.Tx) error {
		input, txErr := s.buildQuoteInputTx(ctx, tx, req, interval)
		if txErr != nil {
			return txErr
		}

		reservation = req.ToModel(engine.Quote(input), constant.ContextGuest)

		return s.repo.InsertTx(ctx, tx, reservation)
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			code := string(pqErr.Code)
			if code == constant.PqErrorCodeSerializationFailure || code == constant.PqErrorCodeUniqueViolation {
				log.Warn().Str("courtID", req.CourtID).Msg("reservation lost a concurrent booking race")

				return res, failure.Conflict(msgConcurrentBooking) // nolint:wrapcheck
			}
		}

		return res, err
	}

	res.FromModel(reservation)

	s.publishConfirmed(ctx, res)
	s.invalidateLists(ctx)

	return res, nil
}

// buildQuoteInputTx resolves the court, coach, rules, and equipment pools
// inside the caller's transaction and fails on the first availability
// violation. The checks run in a fixed order: court, coach, equipment.
func (s *serviceImpl) buildQuoteInputTx(ctx context.Context, tx *sqlx.Tx, req dto.CreateReservationRequest, interval intervalRequest) (engine.Input, error) {
	var input engine.Input

	court, err := s.courtRepo.GetByIDTx(ctx, tx, req.CourtID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get court")

		return input, fmt.Errorf("failed to get court: %w", err)
	}

	if court.ID == constant.Empty {
		return input, failure.NotFound("court not found") // nolint:wrapcheck
	}

	var coach *engine.Coach

	if req.CoachID != nil {
		coachRow, err := s.coachRepo.GetByIDTx(ctx, tx, *req.CoachID)
		if err != nil {
			log.Error().Err(err).Msg("failed to get coach")

			return input, fmt.Errorf("failed to get coach: %w", err)
		}

		if coachRow.ID == constant.Empty {
			return input, failure.NotFound("coach not found") // nolint:wrapcheck
		}

		if !coachRow.Active {
			return input, failure.Conflict(msgCoachUnavailable) // nolint:wrapcheck
		}

		coach = &engine.Coach{Fee: coachRow.Fee}
	}

	courtFree, err := s.courtFreeTx(ctx, tx, req.CourtID, interval)
	if err != nil {
		return input, err
	}

	if !courtFree {
		return input, failure.Conflict(msgCourtBooked) // nolint:wrapcheck
	}

	coachFree, err := s.coachFreeTx(ctx, tx, req.CoachID, interval)
	if err != nil {
		return input, err
	}

	if !coachFree {
		return input, failure.Conflict(msgCoachUnavailable) // nolint:wrapcheck
	}

	availability, pools, err := s.equipmentAvailabilityTx(ctx, tx, req.Rackets, req.Shoes, interval)
	if err != nil {
		return input, err
	}

	if !availability.RacketsOK {
		return input, failure.Conflict(fmt.Sprintf(msgNotEnoughRackets, availability.RacketsAvailable)) // nolint:wrapcheck
	}

	if !availability.ShoesOK {
		return input, failure.Conflict(fmt.Sprintf(msgNotEnoughShoes, availability.ShoesAvailable)) // nolint:wrapcheck
	}

	ruleRows, err := s.pricingRepo.ListEnabledTx(ctx, tx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list enabled pricing rules")

		return input, fmt.Errorf("failed to list enabled pricing rules: %w", err)
	}

	return engine.Input{
		Court:     engine.Court{Category: court.Category, BasePrice: court.BasePrice},
		Rackets:   req.Rackets,
		Shoes:     req.Shoes,
		Coach:     coach,
		StartTime: interval.start,
		EndTime:   interval.end,
		Rules:     pricingModel.ToRules(ruleRows),
		Pools:     pools,
	}, nil
}

// Estimate prices a request without holding anything. The computation is the
// same one Create runs, so an estimate matches the committed price as long as
// the rule set does not change in between.
func (s *serviceImpl) Estimate(ctx context.Context, req dto.CreateReservationRequest) (res dto.EstimateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Estimate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.EndTime.After(req.StartTime) {
		return res, failure.BadRequestFromString("end_time must be after start_time") // nolint:wrapcheck
	}

	court, err := s.courtRepo.Get(ctx, shared.FilterByID(req.CourtID, courtModel.FieldID, courtModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get court")

		return res, fmt.Errorf("failed to get court: %w", err)
	}

	if court.ID == constant.Empty {
		return res, failure.NotFound("court not found") // nolint:wrapcheck
	}

	var coach *engine.Coach

	if req.CoachID != nil {
		coachRow, err := s.coachRepo.Get(ctx, shared.FilterByID(*req.CoachID, coachModel.FieldID, coachModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get coach")

			return res, fmt.Errorf("failed to get coach: %w", err)
		}

		if coachRow.ID == constant.Empty {
			return res, failure.NotFound("coach not found") // nolint:wrapcheck
		}

		if !coachRow.Active {
			return res, failure.Conflict(msgCoachUnavailable) // nolint:wrapcheck
		}

		coach = &engine.Coach{Fee: coachRow.Fee}
	}

	pools := map[engine.PoolKind]engine.Pool{}

	for _, kind := range []engine.PoolKind{engine.PoolRacket, engine.PoolShoe} {
		pool, err := s.equipmentRepo.GetByKind(ctx, string(kind))
		if err != nil {
			log.Error().Err(err).Msg("failed to get equipment pool")

			return res, fmt.Errorf("failed to get equipment pool: %w", err)
		}

		if pool.ID != constant.Empty {
			pools[kind] = engine.Pool{UnitPrice: pool.UnitPrice}
		}
	}

	ruleRows, err := s.pricingRepo.ListEnabled(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list enabled pricing rules")

		return res, fmt.Errorf("failed to list enabled pricing rules: %w", err)
	}

	res.PricingBreakdown = engine.Quote(engine.Input{
		Court:     engine.Court{Category: court.Category, BasePrice: court.BasePrice},
		Rackets:   req.Rackets,
		Shoes:     req.Shoes,
		Coach:     coach,
		StartTime: timezone.ToAppTime(req.StartTime),
		EndTime:   timezone.ToAppTime(req.EndTime),
		Rules:     pricingModel.ToRules(ruleRows),
		Pools:     pools,
	})

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) publishConfirmed(ctx context.Context, res dto.ReservationResponse) {
	topic := s.cfg.Kafka.Topics.ReservationConfirmed
	if topic == constant.Empty {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, topic, kafka.Message{Key: res.ID, Value: res})
		if err != nil {
			log.Error().Err(err).Str("reservationID", res.ID).Msg("failed to publish reservation confirmation")
		}
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}
