package clientcompany

import (
	"time"

	"github.com/google/uuid"
)

// Contract status values.
const (
	ContractActive     = "active"
	ContractSuspended  = "suspended"
	ContractTerminated = "terminated"
)

// ClientCompany is a 派遣先 — a client company workers are dispatched to.
type ClientCompany struct {
	ID                        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                      string    `gorm:"type:varchar(200);not null;index"`
	BranchName                string    `gorm:"type:varchar(200)"`
	CorporationNumber         string    `gorm:"type:varchar(13);index"`
	EmploymentInsuranceNumber string    `gorm:"type:varchar(11)"`
	PostalCode                string    `gorm:"type:varchar(8)"`
	Address                   string
	Prefecture                string `gorm:"type:varchar(10);index"`
	Phone                     string `gorm:"type:varchar(20)"`
	Fax                       string `gorm:"type:varchar(20)"`
	ResponsiblePerson         string `gorm:"type:varchar(100)"`
	BusinessType              string `gorm:"type:varchar(50);index"`
	Capital                   *int64
	AnnualSales               *int64
	TotalEmployees            *int
	ForeignEmployees          *int
	TraineeCount              int    `gorm:"not null;default:0"`
	ContractStatus            string `gorm:"type:varchar(20);default:active"`
	ContractStartDate         *time.Time
	ContractEndDate           *time.Time
	Notes                     string
	IsActive                  bool `gorm:"not null;default:true"`
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
	Plants                    []Plant `gorm:"foreignKey:ClientCompanyID"`
}

func (ClientCompany) TableName() string {
	return "client_companies"
}

// Plant is a production site of a client company. Workers are assigned to a
// plant, not to the company head office.
type Plant struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientCompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(200);not null"`
	Address         string
	Phone           string `gorm:"type:varchar(20)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Plant) TableName() string {
	return "client_company_plants"
}
