package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"courtside/config"
	"courtside/infras/kafka"
	kafkaMocks "courtside/infras/kafka/mocks"
	"courtside/infras/otel/mocks"
	pgMocks "courtside/infras/postgres/mocks"
	coachMocks "courtside/internal/domains/coach/mocks"
	coachModel "courtside/internal/domains/coach/model"
	courtMocks "courtside/internal/domains/court/mocks"
	courtModel "courtside/internal/domains/court/model"
	equipmentMocks "courtside/internal/domains/equipment/mocks"
	equipmentModel "courtside/internal/domains/equipment/model"
	pricingMocks "courtside/internal/domains/pricing/mocks"
	pricingModel "courtside/internal/domains/pricing/model"
	reservationMocks "courtside/internal/domains/reservation/mocks"
	"courtside/internal/domains/reservation/model"
	"courtside/internal/domains/reservation/model/dto"
	"courtside/internal/domains/reservation/repository"
	"courtside/internal/domains/reservation/service"
	cacheMocks "courtside/shared/cache/mocks"
	gDto "courtside/shared/dto"
	"courtside/shared/failure"
)

const (
	testCourtID = "0b3d9b71-65a4-4a8f-9b40-111111111111"
	testCoachID = "0b3d9b71-65a4-4a8f-9b40-222222222222"
)

var slotStart = time.Date(2026, time.January, 5, 14, 0, 0, 0, time.UTC)

type serviceMocks struct {
	repo      *reservationMocks.MockReservation
	courtRepo *courtMocks.MockCourt
	coachRepo *coachMocks.MockCoach
	equipRepo *equipmentMocks.MockEquipment
	pricing   *pricingMocks.MockPricing
	txRunner  *pgMocks.MockTxRunner
	cache     *cacheMocks.MockRedisCache
	kafka     *kafkaMocks.MockClient
	cfg       *config.Config
}

func newService(t *testing.T) (service.Reservation, *serviceMocks) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		repo:      reservationMocks.NewMockReservation(ctrl),
		courtRepo: courtMocks.NewMockCourt(ctrl),
		coachRepo: coachMocks.NewMockCoach(ctrl),
		equipRepo: equipmentMocks.NewMockEquipment(ctrl),
		pricing:   pricingMocks.NewMockPricing(ctrl),
		txRunner:  pgMocks.NewMockTxRunner(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		kafka:     kafkaMocks.NewMockClient(ctrl),
	}

	m.cfg = &config.Config{}
	m.cfg.Cache.TTL = 3600

	// List invalidation and cache saves run on background goroutines.
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(m.repo, m.courtRepo, m.coachRepo, m.equipRepo, m.pricing, m.txRunner, m.cfg, m.cache, m.kafka, mocks.NewOtel())

	return svc, m
}

func (m *serviceMocks) expectTx() {
	m.txRunner.EXPECT().
		WithSerializableTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func indoorCourt() courtModel.Court {
	return courtModel.Court{ID: testCourtID, Name: "Court 1", Category: courtModel.CategoryIndoor, BasePrice: 15}
}

func racketPool(stock int) equipmentModel.EquipmentPool {
	return equipmentModel.EquipmentPool{ID: "pool-racket", Kind: equipmentModel.KindRacket, TotalStock: stock, UnitPrice: 5}
}

func shoePool(stock int) equipmentModel.EquipmentPool {
	return equipmentModel.EquipmentPool{ID: "pool-shoe", Kind: equipmentModel.KindShoe, TotalStock: stock, UnitPrice: 10}
}

func coachPtr(id string) *string {
	return &id
}

func TestReservationService_Create(t *testing.T) {
	baseReq := dto.CreateReservationRequest{
		CourtID:   testCourtID,
		Rackets:   2,
		StartTime: slotStart,
		EndTime:   slotStart.Add(time.Hour),
	}

	t.Run("successful creation without coach", func(t *testing.T) {
		svc, m := newService(t)

		m.expectTx()
		m.courtRepo.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), testCourtID).Return(indoorCourt(), nil)
		m.repo.EXPECT().
			ExistOverlappingTx(gomock.Any(), gomock.Any(), model.FieldCourtID, testCourtID, gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.equipRepo.EXPECT().GetByKindTx(gomock.Any(), gomock.Any(), equipmentModel.KindRacket).Return(racketPool(10), nil)
		m.equipRepo.EXPECT().GetByKindTx(gomock.Any(), gomock.Any(), equipmentModel.KindShoe).Return(shoePool(6), nil)
		m.repo.EXPECT().
			SumEquipmentOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.EquipmentUsage{}, nil)
		m.pricing.EXPECT().ListEnabledTx(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(context.Background(), baseReq)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "Guest", res.UserName)
		assert.Equal(t, model.StatusConfirmed, res.Status)
		assert.Equal(t, 15.0, res.PricingBreakdown.BasePrice)
		assert.Equal(t, 10.0, res.PricingBreakdown.EquipmentFee)
		assert.Equal(t, 25.0, res.PricingBreakdown.Total)
	})

	t.Run("successful creation with coach applies enabled rules", func(t *testing.T) {
		svc, m := newService(t)

		req := baseReq
		req.UserName = "Asha"
		req.CoachID = coachPtr(testCoachID)
		req.Rackets = 0

		multiplier := 1.5
		startHour, endHour := 13, 15
		rules := []pricingModel.PricingRule{
			{
				Name:       "Afternoon Peak",
				Kind:       pricingModel.KindPeak,
				StartHour:  &startHour,
				EndHour:    &endHour,
				Multiplier: &multiplier,
				Enabled:    true,
			},
		}

		m.expectTx()
		m.courtRepo.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), testCourtID).Return(indoorCourt(), nil)
		m.coachRepo.EXPECT().
			GetByIDTx(gomock.Any(), gomock.Any(), testCoachID).
			Return(coachModel.Coach{ID: testCoachID, Name: "Rahul", Fee: 25, Active: true}, nil)
		m.repo.EXPECT().
			ExistOverlappingTx(gomock.Any(), gomock.Any(), model.FieldCourtID, testCourtID, gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.repo.EXPECT().
			ExistOverlappingTx(gomock.Any(), gomock.Any(), model.FieldCoachID, testCoachID, gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.equipRepo.EXPECT().GetByKindTx(gomock.Any(), gomock.Any(), equipmentModel.KindRacket).Return(racketPool(10), nil)
		m.equipRepo.EXPECT().GetByKindTx(gomock.Any(), gomock.Any(), equipmentModel.KindShoe).Return(shoePool(6), nil)
		m.pricing.EXPECT().ListEnabledTx(gomock.Any(), gomock.Any()).Return(rules, nil)
		m.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Asha", res.UserName)
		assert.Equal(t, 25.0, res.PricingBreakdown.CoachFee)
		// 15 * 1.5 + 25.
		assert.Equal(t, 47.5, res.PricingBreakdown.Total)
	})

	t.Run("publishes confirmation event with reservation key", func(t *testing.T) {
		svc, m := newService(t)
		m.cfg.Kafka.Topics.ReservationConfirmed = "reservation.confirmed"

		published := make(chan kafka.Message, 1)

		m.kafka.EXPECT().
			SendMessages(gomock.Any(), "reservation.confirmed", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				published <- messages[0]

				return nil
			})

		m.expectTx()
		m.courtRepo.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), testCourtID).Return(indoorCourt(), nil)
		m.repo.EXPECT().
			ExistOverlappingTx(gomock.Any(), gomock.Any(), model.FieldCourtID, testCourtID, gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.equipRepo.EXPECT().GetByKindTx(gomock.Any(), gomock.Any(), equipmentModel.KindRacket).Return(racketPool(10), nil)
		m.equipRepo.EXPECT().GetByKindTx(gomock.Any(), gomock.Any(), equipmentModel.KindShoe).Return(shoePool(6), nil)
		m.repo.EXPECT().
			SumEquipmentOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.EquipmentUsage{}, nil)
		m.pricing.EXPECT().ListEnabledTx(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(context.Background(), baseReq)

		assert.NoError(t, err)

		select {
		case msg := <-published:
			assert.Equal(t, res.ID, msg.Key)
		case <-time.After(time.Second):
			t.Fatal("expected a reservation confirmation to be published")
		}
	})

	t.Run("end time not after start time", func(t *testing.T) {
		svc, _ := newService(t)

		req := baseReq
		req.EndTime = req.StartTime

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("court not found", func(t *testing.T) {
		svc, m := newService(t)

		m.expectTx()
		m.courtRepo.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), testCourtID).Return(courtModel.Court{}, nil)

		_, err := svc.Create(context.Background(), baseReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("coach not found", func(t *testing.T) {
		svc, m := newService(t)

		req := baseReq
		req.CoachID = coachPtr(testCoachID)

		m.expectTx()
		m.courtRepo.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), testCourtID).Return(indoorCourt(), nil)
		m.coachRepo.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), testCoachID).Return(coachModel.Coach{}, nil)

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("inactive coach", func(t *testing.T) {
		svc, m := newService(t)

		req := baseReq
		req.CoachID = coachPtr(testCoachID)

		m.expectTx()
		m.courtRepo.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), testCourtID).Return(indoorCourt(), nil)
		m.coachRepo.EXPECT().
			GetByIDTx(gomock.Any(), gomock.Any(), testCoachID).
			Return(coachModel.Coach{ID: testCoachID, Name: "Rahul", Fee: 25}, nil)

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.EqualError(t, err, "Coach not available for this slot")
	})

	t.Run("court already booked", func(t *testing.T) {
		svc, m := newService(t)

		m.expectTx()
		m.courtRepo.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), testCourtID).Return(indoorCourt(), nil)
		m.repo.EXPECT().
			ExistOverlappingTx(gomock.Any(), gomock.Any(), model.FieldCourtID, testCourtID, gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Create(context.Background(), baseReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.EqualError(t, err, "Court already booked for this slot")
	})

	t.Run("coach already booked", func(t *testing.T) {
		svc, m := newService(t)

		req := baseReq
		req.CoachID = coachPtr(testCoachID)

		m.expectTx()
		m.courtRepo.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), testCourtID).Return(indoorCourt(), nil)
		m.coachRepo.EXPECT().
			GetByIDTx(gomock.Any(), gomock.Any(), testCoachID).
			Return(coachModel.Coach{ID: testCoachID, Name: "Rahul", Fee: 25, Active: true}, nil)
		m.repo.EXPECT().
			ExistOverlappingTx(gomock.Any(), gomock.Any(), model.FieldCourtID, testCourtID, gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.repo.EXPECT().
			ExistOverlappingTx(gomock.Any(), gomock.Any(), model.FieldCoachID, testCoachID, gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.EqualError(t, err, "Coach not available for this slot")
	})

	t.Run("not enough rackets", func(t *testing.T) {
		svc, m := newService(t)

		m.expectTx()
		m.courtRepo.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), testCourtID).Return(indoorCourt(), nil)
		m.repo.EXPECT().
			ExistOverlappingTx(gomock.Any(), gomock.Any(), model.FieldCourtID, testCourtID, gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.equipRepo.EXPECT().GetByKindTx(gomock.Any(), gomock.Any(), equipmentModel.KindRacket).Return(racketPool(10), nil)
		m.equipRepo.EXPECT().GetByKindTx(gomock.Any(), gomock.Any(), equipmentModel.KindShoe).Return(shoePool(6), nil)
		m.repo.EXPECT().
			SumEquipmentOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.EquipmentUsage{Rackets: 9}, nil)

		_, err := svc.Create(context.Background(), baseReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.EqualError(t, err, "Not enough rackets. Available: 1")
	})

	t.Run("not enough shoes", func(t *testing.T) {
		svc, m := newService(t)

		req := baseReq
		req.Rackets = 0
		req.Shoes = 3

		m.expectTx()
		m.courtRepo.EXPECT().GetByIDTx(gomock.Any(), gomock.Any(), testCourtID).Return(indoorCourt(), nil)
		m.repo.EXPECT().
			ExistOverlappingTx(gomock.Any(), gomock.Any(), model.FieldCourtID, testCourtID, gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.equipRepo.EXPECT().GetByKindTx(gomock.Any(), gomock.Any(), equipmentModel.KindRacket).Return(racketPool(10), nil)
		m.equipRepo.EXPECT().GetByKindTx(gomock.Any(), gomock.Any(), equipmentModel.KindShoe).Return(shoePool(6), nil)
		m.repo.EXPECT().
			SumEquipmentOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.EquipmentUsage{Shoes: 4}, nil)

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.EqualError(t, err, "Not enough shoes. Available: 2")
	})

	t.Run("serialization failure maps to conflict", func(t *testing.T) {
		svc, m := newService(t)

		m.txRunner.EXPECT().
			WithSerializableTx(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: pq.ErrorCode("40001")})

		_, err := svc.Create(context.Background(), baseReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.EqualError(t, err, "Reservation conflicts with a concurrent booking")
	})

	t.Run("unrelated database error passes through", func(t *testing.T) {
		svc, m := newService(t)

		m.txRunner.EXPECT().
			WithSerializableTx(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Create(context.Background(), baseReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestReservationService_Estimate(t *testing.T) {
	req := dto.CreateReservationRequest{
		CourtID:   testCourtID,
		Rackets:   2,
		StartTime: slotStart,
		EndTime:   slotStart.Add(time.Hour),
	}

	t.Run("successful estimate", func(t *testing.T) {
		svc, m := newService(t)

		surcharge := 3.0
		indoor := courtModel.CategoryIndoor
		rules := []pricingModel.PricingRule{
			{
				Name:          "Indoor Premium",
				Kind:          pricingModel.KindCourtType,
				CourtCategory: &indoor,
				Surcharge:     &surcharge,
				Enabled:       true,
			},
		}

		m.courtRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(indoorCourt(), nil)
		m.equipRepo.EXPECT().GetByKind(gomock.Any(), string(equipmentModel.KindRacket)).Return(racketPool(10), nil)
		m.equipRepo.EXPECT().GetByKind(gomock.Any(), string(equipmentModel.KindShoe)).Return(shoePool(6), nil)
		m.pricing.EXPECT().ListEnabled(gomock.Any()).Return(rules, nil)

		res, err := svc.Estimate(context.Background(), req)

		assert.NoError(t, err)
		// (15 + 3) + 2 rackets at 5.
		assert.Equal(t, 28.0, res.PricingBreakdown.Total)
		assert.Len(t, res.PricingBreakdown.RuleAdjustments, 1)
	})

	t.Run("court not found", func(t *testing.T) {
		svc, m := newService(t)

		m.courtRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(courtModel.Court{}, nil)

		_, err := svc.Estimate(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("inactive coach quotes nothing", func(t *testing.T) {
		svc, m := newService(t)

		withCoach := req
		withCoach.CoachID = coachPtr(testCoachID)

		m.courtRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(indoorCourt(), nil)
		m.coachRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(coachModel.Coach{ID: testCoachID, Name: "Rahul", Fee: 25}, nil)

		_, err := svc.Estimate(context.Background(), withCoach)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.EqualError(t, err, "Coach not available for this slot")
	})

	t.Run("end time not after start time", func(t *testing.T) {
		svc, _ := newService(t)

		invalid := req
		invalid.EndTime = invalid.StartTime.Add(-time.Hour)

		_, err := svc.Estimate(context.Background(), invalid)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReservationService_Get(t *testing.T) {
	id := "0b3d9b71-65a4-4a8f-9b40-333333333333"

	t.Run("cache miss hits repository", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{ID: id, UserName: "Guest", Status: model.StatusConfirmed}, nil)

		res, err := svc.Get(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, id, res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

		_, err := svc.Get(context.Background(), id)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestReservationService_GetAll(t *testing.T) {
	svc, m := newService(t)

	params := gDto.QueryParams{Limit: 10, Page: 1}

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.Reservation{{ID: "res-1", UserName: "Guest", Status: model.StatusConfirmed}}, nil)

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Reservations, 1)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}
