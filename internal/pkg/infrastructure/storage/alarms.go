package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

// RaiseAlarm creates an active alarm for (terminal, kind) or, when one is
// already active, bumps its severity in place. The partial unique index on
// active alarms makes this a single atomic statement, so concurrent frames
// for the same terminal can never produce duplicate active rows.
//
// Returns the alarm id and whether a new alarm row was inserted. When the
// active alarm already carries the requested severity nothing is written
// and ErrNoRows is returned.
func (s *Storage) RaiseAlarm(ctx context.Context, alarm types.Alarm) (string, bool, error) {
	args := pgx.NamedArgs{
		"alarm_id":      alarm.ID,
		"terminal_id":   alarm.TerminalID,
		"terminal_name": alarm.TerminalName,
		"kind":          alarm.Kind,
		"severity":      alarm.Severity,
		"raised_at":     alarm.RaisedAt.UTC(),
		"tenant":        alarm.Tenant,
	}

	var alarmID string
	var inserted bool

	err := s.pool.QueryRow(ctx, `
		INSERT INTO alarms (alarm_id, terminal_id, terminal_name, kind, severity, status, raised_at, updated_at, tenant)
		VALUES (@alarm_id, @terminal_id, @terminal_name, @kind, @severity, 'active', @raised_at, @raised_at, @tenant)
		ON CONFLICT (terminal_id, kind) WHERE status = 'active'
		DO UPDATE SET severity = EXCLUDED.severity, updated_at = EXCLUDED.updated_at
		WHERE alarms.severity IS DISTINCT FROM EXCLUDED.severity
		RETURNING alarm_id, (xmax = 0) AS inserted
	`, args).Scan(&alarmID, &inserted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, ErrNoRows
		}
		return "", false, fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	return alarmID, inserted, nil
}

// ClearAlarm closes the active alarm for (terminal, kind) and stamps the
// time it was cleared. Clearing when no alarm is active returns ErrNoRows.
func (s *Storage) ClearAlarm(ctx context.Context, terminalID, kind string, clearedAt time.Time) (string, error) {
	args := pgx.NamedArgs{
		"terminal_id": terminalID,
		"kind":        kind,
		"cleared_at":  clearedAt.UTC(),
	}

	var alarmID string

	err := s.pool.QueryRow(ctx, `
		UPDATE alarms
		SET status = 'cleared', cleared_at = @cleared_at, updated_at = @cleared_at
		WHERE terminal_id = @terminal_id AND kind = @kind AND status = 'active'
		RETURNING alarm_id
	`, args).Scan(&alarmID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNoRows
		}
		return "", err
	}

	return alarmID, nil
}

func (s *Storage) QueryAlarms(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alarm], error) {
	condition := &Condition{sortBy: "raised_at", sortOrder: "DESC"}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var alarmID, terminalID, kind, severity, status, tenant string
	var terminalName *string
	var raisedAt, updatedAt time.Time
	var clearedAt *time.Time
	var count int64

	query := fmt.Sprintf(`
		SELECT alarm_id, terminal_id, terminal_name, kind, severity, status, raised_at, updated_at, cleared_at, tenant, count(*) OVER () AS count
		FROM alarms
		WHERE %s
		ORDER BY %s %s
		%s
	`, where, condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Alarm]{}, err
	}

	alarms := make([]types.Alarm, 0)

	_, err = pgx.ForEachRow(rows, []any{&alarmID, &terminalID, &terminalName, &kind, &severity, &status, &raisedAt, &updatedAt, &clearedAt, &tenant, &count}, func() error {
		alarm := types.Alarm{
			ID:         alarmID,
			TerminalID: terminalID,
			Kind:       kind,
			Severity:   severity,
			Status:     status,
			RaisedAt:   raisedAt.UTC(),
			UpdatedAt:  updatedAt.UTC(),
			Tenant:     tenant,
		}
		if terminalName != nil {
			alarm.TerminalName = *terminalName
		}
		if clearedAt != nil {
			t := clearedAt.UTC()
			alarm.ClearedAt = &t
		}

		alarms = append(alarms, alarm)

		return nil
	})
	if err != nil {
		return types.Collection[types.Alarm]{}, err
	}

	return types.Collection[types.Alarm]{
		Data:       alarms,
		Count:      uint64(len(alarms)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}
