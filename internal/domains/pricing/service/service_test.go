package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"courtside/config"
	"courtside/infras/otel/mocks"
	pricingMocks "courtside/internal/domains/pricing/mocks"
	"courtside/internal/domains/pricing/model"
	"courtside/internal/domains/pricing/model/dto"
	"courtside/internal/domains/pricing/service"
	cacheMocks "courtside/shared/cache/mocks"
	gDto "courtside/shared/dto"
	"courtside/shared/failure"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func newService(t *testing.T) (service.Pricing, *pricingMocks.MockPricing, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	mockRepo := pricingMocks.NewMockPricing(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Invalidation and cache saves run on background goroutines.
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestPricingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreatePricingRuleRequest
		setupMock func(mockRepo *pricingMocks.MockPricing)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful peak rule creation",
			req: dto.CreatePricingRuleRequest{
				Name:       "Peak Hours",
				Kind:       model.KindPeak,
				StartHour:  intPtr(18),
				EndHour:    intPtr(21),
				Multiplier: floatPtr(1.5),
			},
			setupMock: func(mockRepo *pricingMocks.MockPricing) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rule model.PricingRule) error {
						assert.True(t, rule.Enabled)
						assert.NotEmpty(t, rule.ID)

						return nil
					})
			},
		},
		{
			name: "enabled peak rule missing hours rejected",
			req: dto.CreatePricingRuleRequest{
				Name:       "Peak Hours",
				Kind:       model.KindPeak,
				Multiplier: floatPtr(1.5),
			},
			setupMock: func(mockRepo *pricingMocks.MockPricing) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "disabled rule skips kind check",
			req: dto.CreatePricingRuleRequest{
				Name:       "Draft Peak",
				Kind:       model.KindPeak,
				Multiplier: floatPtr(1.5),
				Enabled:    boolPtr(false),
			},
			setupMock: func(mockRepo *pricingMocks.MockPricing) {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "enabled court type rule missing category rejected",
			req: dto.CreatePricingRuleRequest{
				Name:      "Indoor Premium",
				Kind:      model.KindCourtType,
				Surcharge: floatPtr(3),
			},
			setupMock: func(mockRepo *pricingMocks.MockPricing) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.CreatePricingRuleRequest{
				Name:      "Weekend Surcharge",
				Kind:      model.KindWeekend,
				Surcharge: floatPtr(5),
			},
			setupMock: func(mockRepo *pricingMocks.MockPricing) {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)
			tt.setupMock(mockRepo)

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPricingService_Get(t *testing.T) {
	id := "test-rule-id"

	t.Run("cache miss hits repository", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.PricingRule{ID: id, Name: "Peak Hours", Kind: model.KindPeak, Enabled: true}, nil)

		res, err := svc.Get(context.Background(), id)

		assert.NoError(t, err)
		assert.Equal(t, id, res.ID)
		assert.Equal(t, model.KindPeak, res.Kind)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.PricingRule{}, nil)

		_, err := svc.Get(context.Background(), id)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPricingService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	params := gDto.QueryParams{Limit: 10, Page: 1}

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.PricingRule{
			{ID: "rule-1", Name: "Peak Hours", Kind: model.KindPeak, Enabled: true},
			{ID: "rule-2", Name: "Weekend Surcharge", Kind: model.KindWeekend, Enabled: true},
		}, nil)

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.PricingRules, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestPricingService_Update(t *testing.T) {
	id := "test-rule-id"

	t.Run("successful update", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Update(context.Background(), dto.UpdatePricingRuleRequest{Enabled: boolPtr(false)}, id)

		assert.NoError(t, err)
	})

	t.Run("empty request", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.Update(context.Background(), dto.UpdatePricingRuleRequest{}, id)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdatePricingRuleRequest{Surcharge: floatPtr(7)}, id)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPricingService_Delete(t *testing.T) {
	id := "test-rule-id"

	t.Run("successful deletion", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), id)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), id)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
