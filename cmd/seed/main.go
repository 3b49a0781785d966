// Command seed loads the starter catalog: four courts, the two equipment
// pools, three coaches, and the default pricing rules. It is idempotent at
// the table level: tables that already hold rows are left alone.
package main

import (
	"context"

	"courtside/config"
	"courtside/infras/otel"
	"courtside/infras/postgres"
	coachModel "courtside/internal/domains/coach/model"
	coachRepository "courtside/internal/domains/coach/repository"
	courtModel "courtside/internal/domains/court/model"
	courtRepository "courtside/internal/domains/court/repository"
	equipmentModel "courtside/internal/domains/equipment/model"
	equipmentRepository "courtside/internal/domains/equipment/repository"
	pricingModel "courtside/internal/domains/pricing/model"
	pricingRepository "courtside/internal/domains/pricing/repository"
	gDto "courtside/shared/dto"
	"courtside/shared/logger"
	gModel "courtside/shared/model"
	"courtside/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const seedUser = "seed"

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	db := postgres.New(cfg)
	otl := otel.New(cfg)

	ctx := context.Background()

	seedCourts(ctx, courtRepository.New(db, otl))
	seedEquipment(ctx, equipmentRepository.New(db, otl))
	seedCoaches(ctx, coachRepository.New(db, otl))
	seedPricingRules(ctx, pricingRepository.New(db, otl))

	log.Info().Msg("Seeding completed")
}

func metadata() gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  seedUser,
		ModifiedBy: seedUser,
	}
}

func seedCourts(ctx context.Context, repo courtRepository.Court) {
	count, err := repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to count courts")
	}

	if count > 0 {
		log.Info().Msg("courts already seeded, skipping")

		return
	}

	courts := []courtModel.Court{
		{ID: uuid.NewString(), Name: "Court 1", Category: courtModel.CategoryIndoor, BasePrice: 15, Metadata: metadata()},
		{ID: uuid.NewString(), Name: "Court 2", Category: courtModel.CategoryIndoor, BasePrice: 15, Metadata: metadata()},
		{ID: uuid.NewString(), Name: "Court A", Category: courtModel.CategoryOutdoor, BasePrice: 10, Metadata: metadata()},
		{ID: uuid.NewString(), Name: "Court B", Category: courtModel.CategoryOutdoor, BasePrice: 10, Metadata: metadata()},
	}

	for _, court := range courts {
		if err := repo.Insert(ctx, court); err != nil {
			log.Fatal().Err(err).Str("name", court.Name).Msg("failed to seed court")
		}
	}

	log.Info().Int("count", len(courts)).Msg("seeded courts")
}

func seedEquipment(ctx context.Context, repo equipmentRepository.Equipment) {
	count, err := repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to count equipment pools")
	}

	if count > 0 {
		log.Info().Msg("equipment pools already seeded, skipping")

		return
	}

	pools := []equipmentModel.EquipmentPool{
		{ID: uuid.NewString(), Kind: equipmentModel.KindRacket, Name: "Racket", TotalStock: 10, UnitPrice: 5, Metadata: metadata()},
		{ID: uuid.NewString(), Kind: equipmentModel.KindShoe, Name: "Shoe", TotalStock: 6, UnitPrice: 10, Metadata: metadata()},
	}

	for _, pool := range pools {
		if err := repo.Insert(ctx, pool); err != nil {
			log.Fatal().Err(err).Str("kind", pool.Kind).Msg("failed to seed equipment pool")
		}
	}

	log.Info().Int("count", len(pools)).Msg("seeded equipment pools")
}

func seedCoaches(ctx context.Context, repo coachRepository.Coach) {
	count, err := repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to count coaches")
	}

	if count > 0 {
		log.Info().Msg("coaches already seeded, skipping")

		return
	}

	coaches := []coachModel.Coach{
		{ID: uuid.NewString(), Name: "Rahul", Fee: 25, Active: true, Metadata: metadata()},
		{ID: uuid.NewString(), Name: "Priya", Fee: 20, Active: true, Metadata: metadata()},
		{ID: uuid.NewString(), Name: "Aman", Fee: 18, Active: true, Metadata: metadata()},
	}

	for _, coach := range coaches {
		if err := repo.Insert(ctx, coach); err != nil {
			log.Fatal().Err(err).Str("name", coach.Name).Msg("failed to seed coach")
		}
	}

	log.Info().Int("count", len(coaches)).Msg("seeded coaches")
}

func seedPricingRules(ctx context.Context, repo pricingRepository.Pricing) {
	count, err := repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to count pricing rules")
	}

	if count > 0 {
		log.Info().Msg("pricing rules already seeded, skipping")

		return
	}

	peakStart, peakEnd := 18, 21
	peakMultiplier := 1.5
	weekendSurcharge := 5.0
	indoorSurcharge := 3.0
	indoor := courtModel.CategoryIndoor

	// Rules apply in creation order, so the insert order below is the
	// pricing order.
	rules := []pricingModel.PricingRule{
		{
			ID:         uuid.NewString(),
			Name:       "Peak Hours",
			Kind:       pricingModel.KindPeak,
			StartHour:  &peakStart,
			EndHour:    &peakEnd,
			Multiplier: &peakMultiplier,
			Enabled:    true,
			Metadata:   metadata(),
		},
		{
			ID:        uuid.NewString(),
			Name:      "Weekend Surcharge",
			Kind:      pricingModel.KindWeekend,
			Surcharge: &weekendSurcharge,
			Enabled:   true,
			Metadata:  metadata(),
		},
		{
			ID:            uuid.NewString(),
			Name:          "Indoor Premium",
			Kind:          pricingModel.KindCourtType,
			CourtCategory: &indoor,
			Surcharge:     &indoorSurcharge,
			Enabled:       true,
			Metadata:      metadata(),
		},
		{
			ID:        uuid.NewString(),
			Name:      "Holiday Surcharge",
			Kind:      pricingModel.KindFixed,
			Surcharge: holidaySurcharge(),
			Enabled:   false,
			Metadata:  metadata(),
		},
	}

	for _, rule := range rules {
		if err := repo.Insert(ctx, rule); err != nil {
			log.Fatal().Err(err).Str("name", rule.Name).Msg("failed to seed pricing rule")
		}
	}

	log.Info().Int("count", len(rules)).Msg("seeded pricing rules")
}

func holidaySurcharge() *float64 {
	surcharge := 10.0

	return &surcharge
}
