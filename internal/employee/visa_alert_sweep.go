package employee

import (
	"context"
	"time"

	"go.uber.org/zap"

	"uns-visa/internal/events"
	"uns-visa/internal/validation"
)

// SweepVisaAlerts publishes one alert event for every active worker whose
// visa is inside the renewal window or already expired. The consumer dedups
// on (employee, expire date, level), so re-publishing the same alert on the
// next sweep is harmless.
func SweepVisaAlerts(
	ctx context.Context,
	repo Repository,
	publisher EventPublisher,
	logger *zap.Logger,
) error {
	today := time.Now().UTC()
	expiring, err := repo.FindExpiring(ctx, today.AddDate(0, 0, AlertWindowDays))
	if err != nil {
		return err
	}

	published := 0
	for _, e := range expiring {
		if e.VisaExpireDate == nil {
			continue
		}
		info := validation.Deadline(*e.VisaExpireDate, today)
		if info.Status == validation.StatusOK {
			continue
		}

		event := events.VisaAlertEvent{
			EventType:      "visa_alert",
			EmployeeID:     e.ID.String(),
			EmployeeCode:   e.EmployeeCode,
			FullName:       e.FullName(),
			VisaExpireDate: e.VisaExpireDate.Format(dateLayout),
			DaysRemaining:  info.DaysRemaining,
			AlertLevel:     info.Status,
			OccurredAt:     today,
		}
		if err := publisher.PublishVisaAlert(ctx, event); err != nil {
			logger.Error("publish visa alert failed",
				zap.String("employee_code", e.EmployeeCode),
				zap.Error(err),
			)
			return err
		}
		published++
	}

	logger.Info("visa alert sweep done",
		zap.Int("checked", len(expiring)),
		zap.Int("published", published),
	)
	return nil
}

// RunVisaAlertSweep runs SweepVisaAlerts on a fixed interval until the
// context is cancelled. One pass runs immediately on start so a restarted
// worker does not wait a full interval.
func RunVisaAlertSweep(
	ctx context.Context,
	repo Repository,
	publisher EventPublisher,
	logger *zap.Logger,
	interval time.Duration,
) {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	log := logger.Named("employee.visa_alert_sweep")

	if err := SweepVisaAlerts(ctx, repo, publisher, log); err != nil {
		log.Error("visa alert sweep failed", zap.Error(err))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("visa alert sweep stopped")
			return
		case <-ticker.C:
			if err := SweepVisaAlerts(ctx, repo, publisher, log); err != nil {
				log.Error("visa alert sweep failed", zap.Error(err))
			}
		}
	}
}
