package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"
	"github.com/jackc/pgx/v5"
)

// UpsertWeatherCache stores a freshly fetched forecast for a terminal. There
// is exactly one row per terminal: an insert starts the upstream call counter
// at one, a refresh of an existing row increments it.
func (s *Storage) UpsertWeatherCache(ctx context.Context, entry types.WeatherCacheEntry) error {
	hourly, _ := json.Marshal(entry.Hourly)
	weekly, _ := json.Marshal(entry.Weekly)

	args := pgx.NamedArgs{
		"terminal_id": entry.TerminalID,
		"hourly":      string(hourly),
		"weekly":      string(weekly),
		"fetched_at":  entry.FetchedAt.UTC(),
		"expires_at":  entry.ExpiresAt.UTC(),
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO weather_cache (terminal_id, hourly, weekly, fetched_at, expires_at, api_call_count)
		VALUES (@terminal_id, @hourly, @weekly, @fetched_at, @expires_at, 1)
		ON CONFLICT (terminal_id) DO UPDATE
		SET hourly = EXCLUDED.hourly, weekly = EXCLUDED.weekly,
			fetched_at = EXCLUDED.fetched_at, expires_at = EXCLUDED.expires_at,
			api_call_count = weather_cache.api_call_count + 1
	`, args)

	return err
}

func (s *Storage) GetWeatherCache(ctx context.Context, terminalID string) (types.WeatherCacheEntry, error) {
	args := pgx.NamedArgs{
		"terminal_id": terminalID,
	}

	var hourly, weekly json.RawMessage
	var fetchedAt, expiresAt time.Time
	var weatherCheckEnabled, manualBlockEnabled bool
	var apiCallCount int

	err := s.pool.QueryRow(ctx, `
		SELECT hourly, weekly, fetched_at, expires_at, weather_check_enabled, manual_block_enabled, api_call_count
		FROM weather_cache
		WHERE terminal_id = @terminal_id
	`, args).Scan(&hourly, &weekly, &fetchedAt, &expiresAt, &weatherCheckEnabled, &manualBlockEnabled, &apiCallCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.WeatherCacheEntry{}, ErrNoRows
		}
		return types.WeatherCacheEntry{}, err
	}

	entry := types.WeatherCacheEntry{
		TerminalID:          terminalID,
		FetchedAt:           fetchedAt.UTC(),
		ExpiresAt:           expiresAt.UTC(),
		WeatherCheckEnabled: weatherCheckEnabled,
		ManualBlockEnabled:  manualBlockEnabled,
		APICallCount:        apiCallCount,
	}

	var errs []error
	errs = append(errs, json.Unmarshal(hourly, &entry.Hourly))
	errs = append(errs, json.Unmarshal(weekly, &entry.Weekly))

	return entry, errors.Join(errs...)
}

// SetWeatherCheckEnabled upserts the operator flag that gates weather based
// false alarm suppression. A placeholder row with empty forecasts is created
// if the terminal has no cache entry yet.
func (s *Storage) SetWeatherCheckEnabled(ctx context.Context, terminalID string, enabled bool) error {
	args := pgx.NamedArgs{
		"terminal_id": terminalID,
		"enabled":     enabled,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO weather_cache (terminal_id, fetched_at, expires_at, weather_check_enabled, api_call_count)
		VALUES (@terminal_id, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP, @enabled, 0)
		ON CONFLICT (terminal_id) DO UPDATE
		SET weather_check_enabled = EXCLUDED.weather_check_enabled
	`, args)

	return err
}

// SetManualBlockEnabled upserts the operator override that discards every
// frame from a terminal regardless of weather or alert type.
func (s *Storage) SetManualBlockEnabled(ctx context.Context, terminalID string, blocked bool) error {
	args := pgx.NamedArgs{
		"terminal_id": terminalID,
		"blocked":     blocked,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO weather_cache (terminal_id, fetched_at, expires_at, manual_block_enabled, api_call_count)
		VALUES (@terminal_id, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP, @blocked, 0)
		ON CONFLICT (terminal_id) DO UPDATE
		SET manual_block_enabled = EXCLUDED.manual_block_enabled
	`, args)

	return err
}
