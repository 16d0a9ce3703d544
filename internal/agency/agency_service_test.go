package agency_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"uns-visa/internal/agency"
	agencyerrors "uns-visa/internal/agency/errors"
	"uns-visa/internal/agency/mock"
)

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockRepository(ctrl)
	service := agency.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().Get(ctx).Return(&agency.Agency{
			Name:              "株式会社UNS",
			CorporationNumber: "1234567890123",
		}, nil)

		resp, err := service.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "株式会社UNS", resp.Name)
		assert.Equal(t, "1234567890123", resp.CorporationNumber)
	})

	t.Run("Not Configured", func(t *testing.T) {
		mockRepo.EXPECT().Get(ctx).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Get(ctx)
		assert.Equal(t, agencyerrors.ErrAgencyNotFound, err)
	})
}

func TestService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockRepository(ctrl)
	service := agency.NewService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *agency.Agency) error {
			assert.Equal(t, "株式会社UNS", a.Name)
			assert.Equal(t, "春日井市1-2-3", a.Address)
			return nil
		})

	resp, err := service.Save(ctx, agency.SaveAgencyRequest{
		Name:    "株式会社UNS",
		Address: "春日井市1-2-3",
	})
	assert.NoError(t, err)
	assert.Equal(t, "株式会社UNS", resp.Name)
}
