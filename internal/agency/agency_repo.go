package agency

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=agency_repo.go -destination=mock/agency_repo_mock.go -package=mock

type Repository interface {
	Get(ctx context.Context) (*Agency, error)
	Save(ctx context.Context, agency *Agency) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context) (*Agency, error) {
	var a Agency
	err := r.db.WithContext(ctx).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Save updates the single profile row, creating it on first use.
func (r *repository) Save(ctx context.Context, agency *Agency) error {
	var existing Agency
	err := r.db.WithContext(ctx).First(&existing).Error
	switch {
	case err == nil:
		agency.ID = existing.ID
		return r.db.WithContext(ctx).Save(agency).Error
	case err == gorm.ErrRecordNotFound:
		if agency.ID == uuid.Nil {
			agency.ID = uuid.New()
		}
		return r.db.WithContext(ctx).Create(agency).Error
	default:
		return err
	}
}
