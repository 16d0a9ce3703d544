package export_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"uns-visa/internal/agency"
	agencyMock "uns-visa/internal/agency/mock"
	"uns-visa/internal/clientcompany"
	"uns-visa/internal/dispatch"
	dispatchMock "uns-visa/internal/dispatch/mock"
	"uns-visa/internal/employee"
	employeeerrors "uns-visa/internal/employee/errors"
	employeeMock "uns-visa/internal/employee/mock"
	"uns-visa/internal/export"
	exporterrors "uns-visa/internal/export/errors"
)

func TestService_GenerateForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmployees := employeeMock.NewMockRepository(ctrl)
	mockAgency := agencyMock.NewMockRepository(ctrl)
	mockDispatch := dispatchMock.NewMockRepository(ctrl)
	service := export.NewService(mockEmployees, mockAgency, mockDispatch)
	ctx := context.Background()

	empID := uuid.New()
	expire := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	emp := &employee.Employee{
		ID:              empID,
		EmployeeCode:    "UNS-202401-0001",
		FamilyName:      "NGUYEN",
		GivenName:       "VAN MINH",
		Nationality:     "ベトナム",
		VisaType:        "技術・人文知識・国際業務",
		VisaExpireDate:  &expire,
		ResidenceCardNo: "AB12345678CD",
	}
	ag := &agency.Agency{
		Name:              "株式会社UNS",
		CorporationNumber: "1234567890123",
		Address:           "愛知県春日井市1-2-3",
	}

	t.Run("Success With Active Assignment", func(t *testing.T) {
		mockEmployees.EXPECT().FindByID(ctx, empID.String()).Return(emp, nil)
		mockAgency.EXPECT().Get(ctx).Return(ag, nil)
		mockDispatch.EXPECT().FindActiveByEmployeeID(ctx, empID).Return(&dispatch.Assignment{
			ClientCompany: clientcompany.ClientCompany{
				Name:    "テスト工業株式会社",
				Address: "愛知県豊田市2-3-4",
			},
		}, nil)

		form, err := service.GenerateForm(ctx, export.FormRenewal, empID.String())
		assert.NoError(t, err)
		assert.Contains(t, form.Filename, "visa_renewal_UNS-202401-0001_")
		assert.Contains(t, form.Filename, ".xlsx")

		site, _ := form.File.GetCellValue("所属機関等作成用", "C14")
		assert.Equal(t, "テスト工業株式会社", site)
	})

	t.Run("Success Without Assignment", func(t *testing.T) {
		mockEmployees.EXPECT().FindByID(ctx, empID.String()).Return(emp, nil)
		mockAgency.EXPECT().Get(ctx).Return(ag, nil)
		mockDispatch.EXPECT().FindActiveByEmployeeID(ctx, empID).Return(nil, gorm.ErrRecordNotFound)

		form, err := service.GenerateForm(ctx, export.FormCOE, empID.String())
		assert.NoError(t, err)

		site, _ := form.File.GetCellValue("所属機関等作成用", "C14")
		assert.Empty(t, site)
	})

	t.Run("Agency Not Configured", func(t *testing.T) {
		mockEmployees.EXPECT().FindByID(ctx, empID.String()).Return(emp, nil)
		mockAgency.EXPECT().Get(ctx).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GenerateForm(ctx, export.FormRenewal, empID.String())
		assert.Equal(t, exporterrors.ErrAgencyNotConfigured, err)
	})

	t.Run("Employee Not Found", func(t *testing.T) {
		mockEmployees.EXPECT().FindByID(ctx, empID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GenerateForm(ctx, export.FormChange, empID.String())
		assert.Equal(t, employeeerrors.ErrEmployeeNotFound, err)
	})

	t.Run("Invalid Employee ID", func(t *testing.T) {
		_, err := service.GenerateForm(ctx, export.FormRenewal, "not-a-uuid")
		assert.Equal(t, employeeerrors.ErrInvalidEmployeeID, err)
	})

	t.Run("Unknown Form Type", func(t *testing.T) {
		_, err := service.GenerateForm(ctx, "permanent", empID.String())
		assert.Equal(t, exporterrors.ErrUnknownFormType, err)
	})
}
