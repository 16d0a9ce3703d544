package dispatch_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"uns-visa/internal/clientcompany"
	companyMock "uns-visa/internal/clientcompany/mock"
	"uns-visa/internal/dispatch"
	dispatcherrors "uns-visa/internal/dispatch/errors"
	dispatchMock "uns-visa/internal/dispatch/mock"
	"uns-visa/internal/employee"
	employeeerrors "uns-visa/internal/employee/errors"
	employeeMock "uns-visa/internal/employee/mock"
)

func newDispatchService(t *testing.T) (dispatch.Service, *dispatchMock.MockRepository, *employeeMock.MockRepository, *companyMock.MockRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := dispatchMock.NewMockRepository(ctrl)
	mockEmployees := employeeMock.NewMockRepository(ctrl)
	mockCompanies := companyMock.NewMockRepository(ctrl)
	service := dispatch.NewService(mockRepo, mockEmployees, mockCompanies)
	return service, mockRepo, mockEmployees, mockCompanies
}

func TestService_Assign(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	companyID := uuid.New()

	t.Run("First Assignment", func(t *testing.T) {
		service, mockRepo, mockEmployees, mockCompanies := newDispatchService(t)

		mockEmployees.EXPECT().FindByID(ctx, empID.String()).Return(&employee.Employee{ID: empID}, nil)
		mockCompanies.EXPECT().FindByID(ctx, companyID.String()).Return(&clientcompany.ClientCompany{ID: companyID}, nil)
		mockRepo.EXPECT().FindActiveByEmployeeID(ctx, empID).Return(nil, gorm.ErrRecordNotFound)

		var createdID uuid.UUID
		mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a *dispatch.Assignment) error {
				createdID = a.ID
				assert.Equal(t, dispatch.AssignmentActive, a.Status)
				assert.Equal(t, "2024-04-01", a.StartDate.Format("2006-01-02"))
				return nil
			})
		mockRepo.EXPECT().FindByID(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, id uuid.UUID) (*dispatch.Assignment, error) {
				start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
				return &dispatch.Assignment{
					ID:              createdID,
					EmployeeID:      empID,
					ClientCompanyID: companyID,
					Status:          dispatch.AssignmentActive,
					StartDate:       &start,
					ClientCompany:   clientcompany.ClientCompany{Name: "テスト工業株式会社"},
				}, nil
			})

		resp, err := service.Assign(ctx, dispatch.AssignRequest{
			EmployeeID:      empID.String(),
			ClientCompanyID: companyID.String(),
			StartDate:       "2024-04-01",
		})
		assert.NoError(t, err)
		assert.Equal(t, "テスト工業株式会社", resp.ClientCompanyName)
		assert.Equal(t, dispatch.AssignmentActive, resp.Status)
	})

	t.Run("Closes Previous Assignment", func(t *testing.T) {
		service, mockRepo, mockEmployees, mockCompanies := newDispatchService(t)

		prevID := uuid.New()
		mockEmployees.EXPECT().FindByID(ctx, empID.String()).Return(&employee.Employee{ID: empID}, nil)
		mockCompanies.EXPECT().FindByID(ctx, companyID.String()).Return(&clientcompany.ClientCompany{ID: companyID}, nil)
		mockRepo.EXPECT().FindActiveByEmployeeID(ctx, empID).Return(&dispatch.Assignment{ID: prevID}, nil)
		mockRepo.EXPECT().End(ctx, prevID, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).Return(nil)
		mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		mockRepo.EXPECT().FindByID(ctx, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		resp, err := service.Assign(ctx, dispatch.AssignRequest{
			EmployeeID:      empID.String(),
			ClientCompanyID: companyID.String(),
			StartDate:       "2024-06-01",
		})
		assert.NoError(t, err)
		assert.Equal(t, dispatch.AssignmentActive, resp.Status)
	})

	t.Run("Unknown Employee", func(t *testing.T) {
		service, _, mockEmployees, _ := newDispatchService(t)

		mockEmployees.EXPECT().FindByID(ctx, empID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Assign(ctx, dispatch.AssignRequest{
			EmployeeID:      empID.String(),
			ClientCompanyID: companyID.String(),
		})
		assert.Equal(t, employeeerrors.ErrEmployeeNotFound, err)
	})

	t.Run("Invalid Employee ID", func(t *testing.T) {
		service, _, _, _ := newDispatchService(t)

		_, err := service.Assign(ctx, dispatch.AssignRequest{
			EmployeeID:      "not-a-uuid",
			ClientCompanyID: companyID.String(),
		})
		assert.Equal(t, employeeerrors.ErrInvalidEmployeeID, err)
	})
}

func TestService_EndAssignment(t *testing.T) {
	ctx := context.Background()
	assignmentID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		service, mockRepo, _, _ := newDispatchService(t)

		mockRepo.EXPECT().FindByID(ctx, assignmentID).Return(&dispatch.Assignment{
			ID:     assignmentID,
			Status: dispatch.AssignmentActive,
		}, nil)
		mockRepo.EXPECT().End(ctx, assignmentID, time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC)).Return(nil)

		resp, err := service.EndAssignment(ctx, assignmentID.String(), dispatch.EndAssignmentRequest{
			EndDate: "2024-09-30",
		})
		assert.NoError(t, err)
		assert.Equal(t, dispatch.AssignmentEnded, resp.Status)
		assert.Equal(t, "2024-09-30", resp.EndDate)
	})

	t.Run("Already Ended", func(t *testing.T) {
		service, mockRepo, _, _ := newDispatchService(t)

		mockRepo.EXPECT().FindByID(ctx, assignmentID).Return(&dispatch.Assignment{
			ID:     assignmentID,
			Status: dispatch.AssignmentEnded,
		}, nil)

		_, err := service.EndAssignment(ctx, assignmentID.String(), dispatch.EndAssignmentRequest{})
		assert.Equal(t, dispatcherrors.ErrAssignmentAlreadyEnded, err)
	})

	t.Run("Not Found", func(t *testing.T) {
		service, mockRepo, _, _ := newDispatchService(t)

		mockRepo.EXPECT().FindByID(ctx, assignmentID).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.EndAssignment(ctx, assignmentID.String(), dispatch.EndAssignmentRequest{})
		assert.Equal(t, dispatcherrors.ErrAssignmentNotFound, err)
	})
}
