package clientcompany

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=clientcompany_repo.go -destination=mock/clientcompany_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, c *ClientCompany) error
	FindAll(ctx context.Context, includeInactive bool) ([]ClientCompany, error)
	FindByID(ctx context.Context, id string) (*ClientCompany, error)
	FindByCorporationNumber(ctx context.Context, num string) (*ClientCompany, error)
	FindByNameAndPrefecture(ctx context.Context, name, prefecture string) (*ClientCompany, error)
	SearchByName(ctx context.Context, query string) ([]ClientCompany, error)
	Update(ctx context.Context, c *ClientCompany) error
	HardDelete(ctx context.Context, id string) error
	CountByPrefecture(ctx context.Context) ([]PrefectureCount, error)
	CountByBusinessType(ctx context.Context) ([]BusinessTypeCount, error)
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

func (r *repository) Create(ctx context.Context, c *ClientCompany) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context, includeInactive bool) ([]ClientCompany, error) {
	var companies []ClientCompany
	q := r.db.WithContext(ctx).Preload("Plants").Order("name ASC")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&companies).Error
	return companies, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*ClientCompany, error) {
	var c ClientCompany
	err := r.db.WithContext(ctx).Preload("Plants").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) FindByCorporationNumber(ctx context.Context, num string) (*ClientCompany, error) {
	var c ClientCompany
	err := r.db.WithContext(ctx).
		Where("corporation_number = ?", num).
		First(&c).Error
	return &c, err
}

// FindByNameAndPrefecture matches companies that carry no corporation
// number. An unknown prefecture is stored empty and matches empty.
func (r *repository) FindByNameAndPrefecture(ctx context.Context, name, prefecture string) (*ClientCompany, error) {
	var c ClientCompany
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Where("prefecture = ?", prefecture).
		First(&c).Error
	return &c, err
}

func (r *repository) SearchByName(ctx context.Context, query string) ([]ClientCompany, error) {
	var companies []ClientCompany
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Where("is_active = ?", true).
		Order("name ASC").
		Limit(50).
		Find(&companies).Error
	return companies, err
}

func (r *repository) Update(ctx context.Context, c *ClientCompany) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) HardDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Plant{}, "client_company_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&ClientCompany{}, "id = ?", id).Error
	})
}

func (r *repository) CountByPrefecture(ctx context.Context) ([]PrefectureCount, error) {
	var counts []PrefectureCount
	err := r.db.WithContext(ctx).Model(&ClientCompany{}).
		Select("prefecture, COUNT(*) AS count").
		Where("is_active = ?", true).
		Where("prefecture <> ''").
		Group("prefecture").
		Order("count DESC").
		Scan(&counts).Error
	return counts, err
}

func (r *repository) CountByBusinessType(ctx context.Context) ([]BusinessTypeCount, error) {
	var counts []BusinessTypeCount
	err := r.db.WithContext(ctx).Model(&ClientCompany{}).
		Select("business_type, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("business_type").
		Order("count DESC").
		Scan(&counts).Error
	return counts, err
}
