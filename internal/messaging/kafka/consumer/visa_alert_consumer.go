package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"uns-visa/internal/events"
)

// AlertLogStore records delivered visa alerts so the office staff dashboard
// can show alert history even after the Kafka retention window.
type AlertLogStore interface {
	Record(ctx context.Context, event events.VisaAlertEvent) error
}

type alertLogStore struct {
	db *gorm.DB
}

func NewAlertLogStore(db *gorm.DB) AlertLogStore {
	return &alertLogStore{db: db}
}

// Record is idempotent: redelivery of the same (employee, level, expiry)
// alert is a no-op, so crash-then-replay cannot duplicate log rows.
func (s *alertLogStore) Record(ctx context.Context, event events.VisaAlertEvent) error {
	query := `
        INSERT INTO visa_alert_log (
            employee_id, employee_code, full_name, alert_level, visa_expire_date, days_remaining, occurred_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT (employee_id, alert_level, visa_expire_date) DO NOTHING
    `
	return s.db.WithContext(ctx).Exec(
		query,
		event.EmployeeID, event.EmployeeCode, event.FullName,
		event.AlertLevel, event.VisaExpireDate, event.DaysRemaining, event.OccurredAt,
	).Error
}

func ConsumeVisaAlerts(
	ctx context.Context,
	reader *kafkago.Reader,
	store AlertLogStore,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.visa_alert")
	log.Info("visa alert consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("visa alert consumer stopped")
				return
			}
			log.Error("fetch visa alert message failed", zap.Error(err))
			continue
		}

		var event events.VisaAlertEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode visa alert event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := store.Record(ctx, event); err != nil {
			log.Error("record visa alert failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("alert_level", event.AlertLevel),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit visa alert message failed", zap.Error(err))
			continue
		}

		log.Info("visa alert recorded",
			zap.String("employee_id", event.EmployeeID),
			zap.String("employee_code", event.EmployeeCode),
			zap.String("alert_level", event.AlertLevel),
		)
	}
}
