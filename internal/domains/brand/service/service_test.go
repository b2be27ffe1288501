package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bookly/config"
	"bookly/infras/otel/mocks"
	brandMocks "bookly/internal/domains/brand/mocks"
	"bookly/internal/domains/brand/model"
	"bookly/internal/domains/brand/model/dto"
	"bookly/internal/domains/brand/service"
	cacheMocks "bookly/shared/cache/mocks"
	"bookly/shared/failure"
)

func TestBrandService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateBrandRequest
		setupMock func(repo *brandMocks.MockBrand)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  dto.CreateBrandRequest{Name: "Glow Studio", Slug: "glow-studio"},
			setupMock: func(repo *brandMocks.MockBrand) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, brand model.Brand) error {
						assert.Equal(t, "Glow Studio", brand.Name)
						assert.Equal(t, "glow-studio", brand.Slug)
						assert.True(t, brand.Active)
						assert.NotEmpty(t, brand.ID)

						return nil
					})
			},
		},
		{
			name: "slug already in use",
			req:  dto.CreateBrandRequest{Name: "Glow Studio", Slug: "glow-studio"},
			setupMock: func(repo *brandMocks.MockBrand) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository failure",
			req:  dto.CreateBrandRequest{Name: "Glow Studio", Slug: "glow-studio"},
			setupMock: func(repo *brandMocks.MockBrand) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := brandMocks.NewMockBrand(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockOtel := mocks.NewOtel()

			mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestBrandService_Get(t *testing.T) {
	t.Run("returns stored brand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := brandMocks.NewMockBrand(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("cache miss"))
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Brand{ID: "brand-id", Name: "Glow Studio", Slug: "glow-studio", Active: true}, nil)

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		res, err := svc.Get(context.Background(), "brand-id")

		assert.NoError(t, err)
		assert.Equal(t, "glow-studio", res.Slug)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("unknown brand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := brandMocks.NewMockBrand(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Brand{}, nil)

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		_, err := svc.Get(context.Background(), "brand-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBrandService_Update(t *testing.T) {
	t.Run("empty request is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := brandMocks.NewMockBrand(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		err := svc.Update(context.Background(), dto.UpdateBrandRequest{}, "brand-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown brand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := brandMocks.NewMockBrand(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

		err := svc.Update(context.Background(), dto.UpdateBrandRequest{Name: "Renamed"}, "brand-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
