package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employment status values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode     string    `gorm:"uniqueIndex"`
	FamilyName       string
	GivenName        string
	FamilyNameKana   string
	GivenNameKana    string
	Sex              string
	MaritalStatus    string
	Nationality      string
	BirthDate        *time.Time
	PostalCode       string
	Address          string
	Apartment        string
	Phone            string
	Email            string
	VisaType         string
	PeriodOfStay     string
	VisaExpireDate   *time.Time `gorm:"index"`
	ResidenceCardNo  string     `gorm:"index"`
	PassportNumber   string
	PassportExpireAt *time.Time
	HireDate         *time.Time
	RetireDate       *time.Time
	EmploymentStatus string `gorm:"index;default:active"`
	Education        string
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Employee) TableName() string { return "employees" }

// FullName joins the family and given names in Japanese order.
func (e *Employee) FullName() string {
	if e.GivenName == "" {
		return e.FamilyName
	}
	return e.FamilyName + " " + e.GivenName
}
