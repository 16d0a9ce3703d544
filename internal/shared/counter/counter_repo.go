package counter

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	GetNextValue(ctx context.Context, counterType string, period string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetNextValue increments and returns the sequence for one (counter_type, period)
// pair, e.g. ("employee_code", "202608"). The raw upsert keeps the increment
// atomic under concurrent document creation.
func (r *repository) GetNextValue(ctx context.Context, counterType string, period string) (int64, error) {
	var nextValue int64

	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO document_counters (counter_type, period, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (counter_type, period) DO UPDATE
		SET last_value = document_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, counterType, period).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
