package dispatch

import (
	"time"

	"github.com/google/uuid"

	"uns-visa/internal/clientcompany"
)

const (
	AssignmentActive = "active"
	AssignmentEnded  = "ended"
)

// Assignment links a worker to the client company (and optionally a specific
// plant) they are currently dispatched to. Export forms read the active
// assignment to fill in the receiving organization.
type Assignment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClientCompanyID uuid.UUID  `gorm:"type:uuid;not null;index"`
	PlantID         *uuid.UUID `gorm:"type:uuid"`
	Status          string     `gorm:"type:varchar(20);not null;default:'active';index"`
	StartDate       *time.Time `gorm:"type:date"`
	EndDate         *time.Time `gorm:"type:date"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	ClientCompany clientcompany.ClientCompany `gorm:"foreignKey:ClientCompanyID"`
}

func (Assignment) TableName() string {
	return "dispatch_assignments"
}
