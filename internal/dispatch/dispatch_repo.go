package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=dispatch_repo.go -destination=mock/dispatch_repo_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, assignment *Assignment) error
	FindByID(ctx context.Context, id uuid.UUID) (*Assignment, error)
	FindActiveByEmployeeID(ctx context.Context, employeeID uuid.UUID) (*Assignment, error)
	FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]Assignment, error)
	End(ctx context.Context, id uuid.UUID, endDate time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, assignment *Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Assignment, error) {
	var a Assignment
	err := r.db.WithContext(ctx).
		Preload("ClientCompany").
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindActiveByEmployeeID(ctx context.Context, employeeID uuid.UUID) (*Assignment, error) {
	var a Assignment
	err := r.db.WithContext(ctx).
		Preload("ClientCompany").
		Preload("ClientCompany.Plants").
		Where("employee_id = ? AND status = ?", employeeID, AssignmentActive).
		Order("start_date DESC NULLS LAST").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]Assignment, error) {
	var assignments []Assignment
	err := r.db.WithContext(ctx).
		Preload("ClientCompany").
		Where("employee_id = ?", employeeID).
		Order("start_date DESC NULLS LAST").
		Find(&assignments).Error
	return assignments, err
}

func (r *repository) End(ctx context.Context, id uuid.UUID, endDate time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Assignment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":   AssignmentEnded,
			"end_date": endDate,
		}).Error
}
