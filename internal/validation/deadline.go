package validation

import (
	"fmt"
	"time"
)

// Visa deadline status levels, ordered by urgency.
const (
	StatusExpired  = "expired"
	StatusCritical = "critical"
	StatusWarning  = "warning"
	StatusOK       = "ok"
)

// DeadlineInfo classifies how close a visa expiration date is.
type DeadlineInfo struct {
	DaysRemaining int    `json:"days_remaining"`
	IsExpired     bool   `json:"is_expired"`
	Status        string `json:"status"`
	CanRenew      bool   `json:"can_renew"`
	Message       string `json:"message"`
}

// Deadline classifies expiration relative to today. Both dates are compared
// at day granularity in the dates' own locations; time-of-day is ignored.
// A visa is expired only once the day has passed: on the expiry day itself
// the worker still holds valid status, so day zero classifies as critical.
// Renewal applications open 90 days before expiry.
func Deadline(expiration, today time.Time) DeadlineInfo {
	e := time.Date(expiration.Year(), expiration.Month(), expiration.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	days := int(e.Sub(t).Hours() / 24)

	info := DeadlineInfo{
		DaysRemaining: days,
		CanRenew:      days > 0 && days <= 90,
	}
	switch {
	case days < 0:
		info.IsExpired = true
		info.Status = StatusExpired
		info.Message = fmt.Sprintf("ビザは%d日前に失効しています", -days)
	case days <= 30:
		info.Status = StatusCritical
		info.Message = fmt.Sprintf("ビザ期限まで残り%d日です。至急更新手続きを行ってください", days)
	case days <= 90:
		info.Status = StatusWarning
		info.Message = fmt.Sprintf("ビザ期限まで残り%d日です。更新手続きが可能です", days)
	default:
		info.Status = StatusOK
		info.Message = fmt.Sprintf("ビザ期限まで残り%d日です", days)
	}
	return info
}
