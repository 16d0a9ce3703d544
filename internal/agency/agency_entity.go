package agency

import (
	"time"

	"github.com/google/uuid"
)

// Agency is the dispatching business itself (the 派遣元). There is exactly
// one row; export forms read it for the applicant-side organization fields.
type Agency struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name               string    `gorm:"type:varchar(255);not null"`
	NameKana           string    `gorm:"type:varchar(255)"`
	CorporationNumber  string    `gorm:"type:varchar(13)"`
	DispatchLicenseNo  string    `gorm:"type:varchar(50)"`
	PostalCode         string    `gorm:"type:varchar(8)"`
	Address            string    `gorm:"type:varchar(255)"`
	Phone              string    `gorm:"type:varchar(20)"`
	RepresentativeName string    `gorm:"type:varchar(255)"`
	RepresentativeRole string    `gorm:"type:varchar(100)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Agency) TableName() string {
	return "agency_profile"
}
