package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (s *Storage) AddTerminal(ctx context.Context, terminal types.Terminal) error {
	args := pgx.NamedArgs{
		"terminal_id": terminal.ID,
		"dev_eui":     terminal.DevEUI,
		"name":        terminal.Name,
		"status":      terminal.Status,
		"archived":    terminal.Archived,
		"lat":         terminal.Location.Latitude,
		"lon":         terminal.Location.Longitude,
		"tenant":      terminal.Tenant,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO terminals (terminal_id, dev_eui, name, status, archived, location, tenant)
		VALUES (@terminal_id, @dev_eui, @name, @status, @archived, point(@lon,@lat), @tenant)
		ON CONFLICT (terminal_id) DO UPDATE
		SET dev_eui = EXCLUDED.dev_eui, name = EXCLUDED.name, archived = EXCLUDED.archived,
			location = EXCLUDED.location, tenant = EXCLUDED.tenant, modified_on = CURRENT_TIMESTAMP
	`, args)

	return err
}

func (s *Storage) GetTerminal(ctx context.Context, conditions ...ConditionFunc) (types.Terminal, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var terminalID, devEUI, status, tenant string
	var name *string
	var lastSeenAt *time.Time
	var archived bool
	var location pgtype.Point

	query := fmt.Sprintf(`
		SELECT terminal_id, dev_eui, name, status, last_seen_at, archived, location, tenant
		FROM terminals
		WHERE %s
	`, where)

	err := s.pool.QueryRow(ctx, query, args).Scan(&terminalID, &devEUI, &name, &status, &lastSeenAt, &archived, &location, &tenant)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Terminal{}, ErrNoRows
		}
		return types.Terminal{}, err
	}

	terminal := types.Terminal{
		ID:       terminalID,
		DevEUI:   devEUI,
		Status:   status,
		Archived: archived,
		Tenant:   tenant,
		Location: types.Location{
			Latitude:  location.P.Y,
			Longitude: location.P.X,
		},
	}
	if name != nil {
		terminal.Name = *name
	}
	if lastSeenAt != nil {
		terminal.LastSeenAt = lastSeenAt.UTC()
	}

	return terminal, nil
}

func (s *Storage) QueryTerminals(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Terminal], error) {
	condition := &Condition{sortBy: "terminal_id", sortOrder: "ASC"}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var terminalID, devEUI, status, tenant string
	var name *string
	var lastSeenAt *time.Time
	var archived bool
	var location pgtype.Point
	var count int64

	query := fmt.Sprintf(`
		SELECT terminal_id, dev_eui, name, status, last_seen_at, archived, location, tenant, count(*) OVER () AS count
		FROM terminals
		WHERE %s
		ORDER BY %s %s
		%s
	`, where, condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Terminal]{}, err
	}

	terminals := make([]types.Terminal, 0)

	_, err = pgx.ForEachRow(rows, []any{&terminalID, &devEUI, &name, &status, &lastSeenAt, &archived, &location, &tenant, &count}, func() error {
		terminal := types.Terminal{
			ID:       terminalID,
			DevEUI:   devEUI,
			Status:   status,
			Archived: archived,
			Tenant:   tenant,
			Location: types.Location{
				Latitude:  location.P.Y,
				Longitude: location.P.X,
			},
		}
		if name != nil {
			terminal.Name = *name
		}
		if lastSeenAt != nil {
			terminal.LastSeenAt = lastSeenAt.UTC()
		}

		terminals = append(terminals, terminal)

		return nil
	})
	if err != nil {
		return types.Collection[types.Terminal]{}, err
	}

	return types.Collection[types.Terminal]{
		Data:       terminals,
		Count:      uint64(len(terminals)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

// SetLastSeen stamps the latest contact for a terminal and flips it back
// online. Called for every inbound frame regardless of payload type.
func (s *Storage) SetLastSeen(ctx context.Context, terminalID string, seenAt time.Time) error {
	args := pgx.NamedArgs{
		"terminal_id": terminalID,
		"seen_at":     seenAt.UTC(),
		"status":      types.TerminalStatusOnline,
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE terminals
		SET last_seen_at = @seen_at, status = @status, modified_on = CURRENT_TIMESTAMP
		WHERE terminal_id = @terminal_id
	`, args)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) SetTerminalStatus(ctx context.Context, terminalID, status string) error {
	args := pgx.NamedArgs{
		"terminal_id": terminalID,
		"status":      status,
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE terminals
		SET status = @status, modified_on = CURRENT_TIMESTAMP
		WHERE terminal_id = @terminal_id AND status <> @status
	`, args)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return nil
	}

	return nil
}

// RecentRescueCount returns the number of rescues dispatched for a terminal
// within [from, to).
func (s *Storage) RecentRescueCount(ctx context.Context, terminalID string, from, to time.Time) (int, error) {
	args := pgx.NamedArgs{
		"terminal_id": terminalID,
		"from":        from.UTC(),
		"to":          to.UTC(),
	}

	var count int
	err := s.pool.QueryRow(ctx, `
		SELECT count(*) FROM rescues
		WHERE terminal_id = @terminal_id AND dispatched_at >= @from AND dispatched_at < @to
	`, args).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (s *Storage) AddRescue(ctx context.Context, rescueID, terminalID, alertID, tenant string, dispatchedAt time.Time) error {
	args := pgx.NamedArgs{
		"rescue_id":     rescueID,
		"terminal_id":   terminalID,
		"alert_id":      alertID,
		"tenant":        tenant,
		"dispatched_at": dispatchedAt.UTC(),
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO rescues (rescue_id, terminal_id, alert_id, dispatched_at, tenant)
		VALUES (@rescue_id, @terminal_id, @alert_id, @dispatched_at, @tenant)
	`, args)

	return err
}
