package ocr_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"uns-visa/internal/employee"
	employeeMock "uns-visa/internal/employee/mock"
	"uns-visa/internal/ocr"
	ocrMock "uns-visa/internal/ocr/mock"
)

func TestService_Scan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVision := ocrMock.NewMockVisionClient(ctrl)
	mockRepo := employeeMock.NewMockRepository(ctrl)
	service := ocr.NewService(mockVision, mockRepo)
	ctx := context.Background()

	t.Run("Success With Nationality Normalization", func(t *testing.T) {
		mockVision.EXPECT().
			Extract(ctx, "base64-image", ocr.DocumentZairyuCard).
			Return(map[string]string{
				"family_name": "NGUYEN",
				"given_name":  "VAN A",
				"nationality": "Vietnam",
			}, nil)

		resp, err := service.Scan(ctx, ocr.ScanRequest{
			ImageBase64:  "base64-image",
			DocumentType: ocr.DocumentZairyuCard,
		})

		assert.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "ベトナム", resp.Extracted["nationality"])
		assert.Equal(t, "NGUYEN", resp.Extracted["family_name"])
	})

	t.Run("Vision Failure Propagates", func(t *testing.T) {
		mockVision.EXPECT().
			Extract(ctx, "bad-image", ocr.DocumentPassport).
			Return(nil, assert.AnError)

		_, err := service.Scan(ctx, ocr.ScanRequest{
			ImageBase64:  "bad-image",
			DocumentType: ocr.DocumentPassport,
		})
		assert.Error(t, err)
	})
}

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVision := ocrMock.NewMockVisionClient(ctrl)
	mockRepo := employeeMock.NewMockRepository(ctrl)
	service := ocr.NewService(mockVision, mockRepo)
	ctx := context.Background()

	t.Run("Card Wins Over Passport Names", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByCardNumber(ctx, "AB12345678CD").
			Return(nil, gorm.ErrRecordNotFound)

		resp, err := service.Import(ctx, ocr.ImportRequest{
			ZairyuCard: &ocr.ZairyuCard{
				Name:              "NGUYEN VAN A",
				Nationality:       "Vietnam",
				StatusOfResidence: "技術・人文知識・国際業務",
				ExpirationDate:    "2026-04-01",
				CardNumber:        "ab12345678cd",
			},
			Passport: &ocr.Passport{
				Surname:        "DIFFERENT",
				GivenNames:     "NAME",
				PassportNumber: "C1234567",
				PlaceOfBirth:   "HANOI",
			},
		})

		assert.NoError(t, err)
		assert.False(t, resp.IsExisting)
		assert.Equal(t, "NGUYEN", resp.Extracted["family_name"])
		assert.Equal(t, "VAN A", resp.Extracted["given_name"])
		assert.Equal(t, "ベトナム", resp.Extracted["nationality"])
		assert.Equal(t, "AB12345678CD", resp.Extracted["residence_card_number"])
		assert.Equal(t, "C1234567", resp.Extracted["passport_number"])
		assert.Equal(t, "HANOI", resp.Extracted["home_town_city"])
	})

	t.Run("Passport Fills Missing Names", func(t *testing.T) {
		resp, err := service.Import(ctx, ocr.ImportRequest{
			Passport: &ocr.Passport{
				Surname:    "TRAN",
				GivenNames: "THI B",
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, "TRAN", resp.Extracted["family_name"])
		assert.Equal(t, "THI B", resp.Extracted["given_name"])
	})

	t.Run("Existing Worker Detected By Card", func(t *testing.T) {
		existingID := uuid.New()
		mockRepo.EXPECT().
			FindByCardNumber(ctx, "AB12345678CD").
			Return(&employee.Employee{ID: existingID}, nil)

		resp, err := service.Import(ctx, ocr.ImportRequest{
			ZairyuCard: &ocr.ZairyuCard{CardNumber: "AB12345678CD", Name: "NGUYEN VAN A"},
		})

		assert.NoError(t, err)
		assert.True(t, resp.IsExisting)
		assert.Equal(t, existingID.String(), resp.ExistingID)
	})
}

func TestMerge(t *testing.T) {
	existing := map[string]string{
		"family_name":    "NGUYEN",
		"given_name":     "",
		"nationality":    "ベトナム",
		"cellular_phone": "09012345678",
	}
	extracted := map[string]string{
		"family_name":     "OVERWRITE",
		"given_name":      "VAN A",
		"passport_number": "C1234567",
		"empty_field":     "",
	}

	t.Run("Only Fill Missing", func(t *testing.T) {
		merged := ocr.Merge(existing, extracted, true)

		assert.Equal(t, "NGUYEN", merged["family_name"], "stored value kept")
		assert.Equal(t, "VAN A", merged["given_name"], "blank filled")
		assert.Equal(t, "C1234567", merged["passport_number"], "new field added")
		assert.Equal(t, "09012345678", merged["cellular_phone"])
		_, has := merged["empty_field"]
		assert.False(t, has, "empty OCR values never copied")
	})

	t.Run("Overwrite Mode", func(t *testing.T) {
		merged := ocr.Merge(existing, extracted, false)

		assert.Equal(t, "OVERWRITE", merged["family_name"])
		assert.Equal(t, "VAN A", merged["given_name"])
	})

	t.Run("Inputs Untouched", func(t *testing.T) {
		_ = ocr.Merge(existing, extracted, true)
		assert.Equal(t, "", existing["given_name"])
	})
}
