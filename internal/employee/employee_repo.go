package employee

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmployeeCode(ctx context.Context, code string) (*Employee, error)
	FindByCardNumber(ctx context.Context, cardNo string) (*Employee, error)
	FindExpiring(ctx context.Context, before time.Time) ([]Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (active, inactive int64, err error)
	CountByNationality(ctx context.Context) ([]NationalityCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Order("employee_code ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByEmployeeCode(ctx context.Context, code string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).Where("employee_code = ?", code).First(&e).Error
	return &e, err
}

func (r *repository) FindByCardNumber(ctx context.Context, cardNo string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).Where("residence_card_no = ?", cardNo).First(&e).Error
	return &e, err
}

// FindExpiring returns active workers whose visa expires on or before the
// given day, soonest first. Workers without an expiry on record are excluded.
func (r *repository) FindExpiring(ctx context.Context, before time.Time) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Where("employment_status = ?", StatusActive).
		Where("visa_expire_date IS NOT NULL").
		Where("visa_expire_date <= ?", before).
		Order("visa_expire_date ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Delete retires the worker. Records are never physically removed: dispatch
// history and visa records must survive the worker leaving.
func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&Employee{}).
		Where("id = ?", id).
		Update("employment_status", StatusInactive)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountByStatus(ctx context.Context) (int64, int64, error) {
	var active, inactive int64
	if err := r.db.WithContext(ctx).Model(&Employee{}).
		Where("employment_status = ?", StatusActive).
		Count(&active).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&Employee{}).
		Where("employment_status = ?", StatusInactive).
		Count(&inactive).Error; err != nil {
		return 0, 0, err
	}
	return active, inactive, nil
}

func (r *repository) CountByNationality(ctx context.Context) ([]NationalityCount, error) {
	var counts []NationalityCount
	err := r.db.WithContext(ctx).Model(&Employee{}).
		Select("nationality, COUNT(*) AS count").
		Where("employment_status = ?", StatusActive).
		Where("nationality <> ''").
		Group("nationality").
		Order("count DESC").
		Scan(&counts).Error
	return counts, err
}
