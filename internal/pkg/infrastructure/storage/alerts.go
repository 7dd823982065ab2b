package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

// AddAlert persists a verified alert. The identifier is assigned inside the
// insert from a database sequence, so concurrent ingestions can never hand
// out the same number.
func (s *Storage) AddAlert(ctx context.Context, prefix string, alert types.Alert) (string, error) {
	args := pgx.NamedArgs{
		"prefix":      prefix,
		"terminal_id": alert.TerminalID,
		"alert_type":  alert.AlertType,
		"status":      alert.Status,
		"sent_via":    alert.SentVia,
		"sent_at":     alert.SentAt.UTC(),
		"tenant":      alert.Tenant,
	}

	var alertID string

	err := s.pool.QueryRow(ctx, `
		INSERT INTO alerts (alert_id, terminal_id, alert_type, status, sent_via, sent_at, tenant)
		VALUES (@prefix || lpad(nextval('alert_number_seq')::text, 3, '0'), @terminal_id, @alert_type, @status, @sent_via, @sent_at, @tenant)
		RETURNING alert_id
	`, args).Scan(&alertID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	return alertID, nil
}

func (s *Storage) GetAlert(ctx context.Context, conditions ...ConditionFunc) (types.Alert, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var alertID, terminalID, status, sentVia, tenant string
	var alertType *string
	var sentAt time.Time

	query := fmt.Sprintf(`
		SELECT alert_id, terminal_id, alert_type, status, sent_via, sent_at, tenant
		FROM alerts
		WHERE %s
	`, where)

	err := s.pool.QueryRow(ctx, query, args).Scan(&alertID, &terminalID, &alertType, &status, &sentVia, &sentAt, &tenant)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Alert{}, ErrNoRows
		}
		return types.Alert{}, err
	}

	return types.Alert{
		ID:         alertID,
		TerminalID: terminalID,
		AlertType:  alertType,
		Status:     status,
		SentVia:    sentVia,
		SentAt:     sentAt.UTC(),
		Tenant:     tenant,
	}, nil
}

func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alert], error) {
	condition := &Condition{sortBy: "alert_id", sortOrder: "DESC"}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var alertID, terminalID, status, sentVia, tenant string
	var alertType *string
	var sentAt time.Time
	var count int64

	query := fmt.Sprintf(`
		SELECT alert_id, terminal_id, alert_type, status, sent_via, sent_at, tenant, count(*) OVER () AS count
		FROM alerts
		WHERE %s
		ORDER BY %s %s
		%s
	`, where, condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	alerts := make([]types.Alert, 0)

	_, err = pgx.ForEachRow(rows, []any{&alertID, &terminalID, &alertType, &status, &sentVia, &sentAt, &tenant, &count}, func() error {
		var at *string
		if alertType != nil {
			v := *alertType
			at = &v
		}

		alerts = append(alerts, types.Alert{
			ID:         alertID,
			TerminalID: terminalID,
			AlertType:  at,
			Status:     status,
			SentVia:    sentVia,
			SentAt:     sentAt.UTC(),
			Tenant:     tenant,
		})

		return nil
	})
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return types.Collection[types.Alert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

// SetAlertStatus updates the rescue status of an alert. Dispatching a rescue
// clears the alert type, which is how an alert stops counting as open.
func (s *Storage) SetAlertStatus(ctx context.Context, alertID, status string) error {
	args := pgx.NamedArgs{
		"alert_id": alertID,
		"status":   status,
	}

	query := `
		UPDATE alerts
		SET status = @status
		WHERE alert_id = @alert_id
	`
	if status == types.AlertStatusDispatched {
		query = `
			UPDATE alerts
			SET status = @status, alert_type = NULL
			WHERE alert_id = @alert_id
		`
	}

	tag, err := s.pool.Exec(ctx, query, args)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
