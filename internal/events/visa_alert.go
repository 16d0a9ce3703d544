package events

import "time"

const VisaAlertTopic = "visa.employee.alert.v1"

// VisaAlertEvent is emitted by the deadline sweep when a worker's visa enters
// the warning or critical window, or has expired.
type VisaAlertEvent struct {
	EventType      string    `json:"event_type"`
	EmployeeID     string    `json:"employee_id"`
	EmployeeCode   string    `json:"employee_code"`
	FullName       string    `json:"full_name"`
	VisaExpireDate string    `json:"visa_expire_date"`
	DaysRemaining  int       `json:"days_remaining"`
	AlertLevel     string    `json:"alert_level"`
	OccurredAt     time.Time `json:"occurred_at"`
}
