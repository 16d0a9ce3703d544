package dispatch

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"uns-visa/internal/clientcompany"
	clientcompanyerrors "uns-visa/internal/clientcompany/errors"
	dispatcherrors "uns-visa/internal/dispatch/errors"
	"uns-visa/internal/employee"
	employeeerrors "uns-visa/internal/employee/errors"
)

//go:generate mockgen -source=dispatch_service.go -destination=mock/dispatch_service_mock.go -package=mock
type Service interface {
	Assign(ctx context.Context, req AssignRequest) (AssignmentResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AssignmentResponse, error)
	EndAssignment(ctx context.Context, id string, req EndAssignmentRequest) (AssignmentResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	companyRepo  clientcompany.Repository
	logger       *zap.Logger
	now          func() time.Time
}

func NewService(
	repo Repository,
	employeeRepo employee.Repository,
	companyRepo clientcompany.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dispatch.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dispatch.service")
	}
	return &service{
		repo:         repo,
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		logger:       l,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Assign places the worker at a client company. A worker is at one site at a
// time, so any still-active assignment is closed as of the new start date.
func (s *service) Assign(ctx context.Context, req AssignRequest) (AssignmentResponse, error) {
	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AssignmentResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	companyID, err := uuid.Parse(req.ClientCompanyID)
	if err != nil {
		return AssignmentResponse{}, clientcompanyerrors.ErrInvalidCompanyID
	}

	if _, err := s.employeeRepo.FindByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssignmentResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return AssignmentResponse{}, err
	}
	if _, err := s.companyRepo.FindByID(ctx, req.ClientCompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssignmentResponse{}, clientcompanyerrors.ErrCompanyNotFound
		}
		return AssignmentResponse{}, err
	}

	startDate := s.now().Truncate(24 * time.Hour)
	if req.StartDate != "" {
		startDate, err = time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return AssignmentResponse{}, dispatcherrors.ErrInvalidDate
		}
	}

	current, err := s.repo.FindActiveByEmployeeID(ctx, empID)
	switch {
	case err == nil:
		if err := s.repo.End(ctx, current.ID, startDate); err != nil {
			s.logger.Error("end previous assignment failed",
				zap.String("assignment_id", current.ID.String()),
				zap.Error(err),
			)
			return AssignmentResponse{}, err
		}
		s.logger.Info("previous assignment closed",
			zap.String("assignment_id", current.ID.String()),
			zap.String("employee_id", req.EmployeeID),
		)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first assignment for this worker
	default:
		return AssignmentResponse{}, err
	}

	assignment := &Assignment{
		ID:              uuid.New(),
		EmployeeID:      empID,
		ClientCompanyID: companyID,
		Status:          AssignmentActive,
		StartDate:       &startDate,
	}
	if req.PlantID != nil {
		plantID, err := uuid.Parse(*req.PlantID)
		if err != nil {
			return AssignmentResponse{}, dispatcherrors.ErrInvalidAssignmentID
		}
		assignment.PlantID = &plantID
	}

	if err := s.repo.Create(ctx, assignment); err != nil {
		s.logger.Error("create assignment failed", zap.Error(err))
		return AssignmentResponse{}, err
	}

	s.logger.Info("worker assigned",
		zap.String("employee_id", req.EmployeeID),
		zap.String("client_company_id", req.ClientCompanyID),
	)

	created, err := s.repo.FindByID(ctx, assignment.ID)
	if err != nil {
		// row exists; fall back to the in-memory copy without the preload
		return toAssignmentResponse(assignment), nil
	}
	return toAssignmentResponse(created), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]AssignmentResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	assignments, err := s.repo.FindByEmployeeID(ctx, empID)
	if err != nil {
		s.logger.Error("list assignments failed", zap.Error(err))
		return nil, err
	}

	resp := make([]AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		resp = append(resp, toAssignmentResponse(&assignments[i]))
	}
	return resp, nil
}

func (s *service) EndAssignment(ctx context.Context, id string, req EndAssignmentRequest) (AssignmentResponse, error) {
	assignmentID, err := uuid.Parse(id)
	if err != nil {
		return AssignmentResponse{}, dispatcherrors.ErrInvalidAssignmentID
	}

	assignment, err := s.repo.FindByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssignmentResponse{}, dispatcherrors.ErrAssignmentNotFound
		}
		return AssignmentResponse{}, err
	}
	if assignment.Status == AssignmentEnded {
		return AssignmentResponse{}, dispatcherrors.ErrAssignmentAlreadyEnded
	}

	endDate := s.now().Truncate(24 * time.Hour)
	if req.EndDate != "" {
		endDate, err = time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return AssignmentResponse{}, dispatcherrors.ErrInvalidDate
		}
	}

	if err := s.repo.End(ctx, assignmentID, endDate); err != nil {
		s.logger.Error("end assignment failed",
			zap.String("assignment_id", id),
			zap.Error(err),
		)
		return AssignmentResponse{}, err
	}

	assignment.Status = AssignmentEnded
	assignment.EndDate = &endDate
	s.logger.Info("assignment ended",
		zap.String("assignment_id", id),
		zap.String("employee_id", assignment.EmployeeID.String()),
	)
	return toAssignmentResponse(assignment), nil
}
