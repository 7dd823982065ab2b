package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/infrastructure/cache"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/infrastructure/storage"
	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"golang.org/x/sync/singleflight"
)

var ErrMissingCoordinates = errors.New("terminal has no coordinates")

// cacheWindow is the validity window of a fetched forecast. Both cache tiers
// expire in lock-step at fetchedAt + cacheWindow.
const cacheWindow = 6 * time.Hour

//go:generate moq -rm -out weatherstorage_mock.go . WeatherStorage
type WeatherStorage interface {
	GetWeatherCache(ctx context.Context, terminalID string) (types.WeatherCacheEntry, error)
	UpsertWeatherCache(ctx context.Context, entry types.WeatherCacheEntry) error
	SetWeatherCheckEnabled(ctx context.Context, terminalID string, enabled bool) error
	SetManualBlockEnabled(ctx context.Context, terminalID string, blocked bool) error
}

//go:generate moq -rm -out ephemeralcache_mock.go . EphemeralCache
type EphemeralCache interface {
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	PatchJSON(ctx context.Context, key string, value any) error
}

//go:generate moq -rm -out weatherservice_mock.go . WeatherService
type WeatherService interface {
	GetWeather(ctx context.Context, terminal types.Terminal) (types.WeatherData, error)
	ToggleWeatherCheck(ctx context.Context, terminalID string, enabled bool) error
	ToggleManualBlock(ctx context.Context, terminalID string, blocked bool) error
}

type svc struct {
	provider ForecastProvider
	storage  WeatherStorage
	fast     EphemeralCache

	defaultLocation types.Location

	group   singleflight.Group
	timeNow func() time.Time
}

func New(provider ForecastProvider, storage WeatherStorage, fast EphemeralCache, defaultLocation types.Location) WeatherService {
	return &svc{
		provider:        provider,
		storage:         storage,
		fast:            fast,
		defaultLocation: defaultLocation,
		timeNow:         time.Now,
	}
}

func cacheKey(terminalID string) string {
	return "weather:terminal:" + terminalID
}

// GetWeather serves forecast data for a terminal with as few upstream calls
// as possible: fast cache, then the durable row while it is still valid,
// then a single coalesced upstream fetch.
func (s *svc) GetWeather(ctx context.Context, terminal types.Terminal) (types.WeatherData, error) {
	var data types.WeatherData

	err := s.fast.GetJSON(ctx, cacheKey(terminal.ID), &data)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, cache.ErrNoEntry) {
		logging.GetFromContext(ctx).Warn("ephemeral weather cache unavailable", "terminal_id", terminal.ID, "err", err.Error())
	}

	v, err, _ := s.group.Do(terminal.ID, func() (any, error) {
		return s.lookup(ctx, terminal)
	})
	if err != nil {
		return types.WeatherData{}, err
	}

	return v.(types.WeatherData), nil
}

func (s *svc) lookup(ctx context.Context, terminal types.Terminal) (types.WeatherData, error) {
	now := s.timeNow().UTC()
	log := logging.GetFromContext(ctx)

	entry, err := s.storage.GetWeatherCache(ctx, terminal.ID)
	if err != nil && !errors.Is(err, storage.ErrNoRows) {
		return types.WeatherData{}, err
	}

	if err == nil && now.Before(entry.ExpiresAt) {
		remaining := entry.ExpiresAt.Sub(now)

		data := types.WeatherData{
			Current:             closestForecastSlot(entry.Hourly, now),
			Hourly:              entry.Hourly,
			Weekly:              entry.Weekly,
			FetchedAt:           entry.FetchedAt,
			ValidFor:            remaining,
			WeatherCheckEnabled: entry.WeatherCheckEnabled,
			ManualBlockEnabled:  entry.ManualBlockEnabled,
		}

		// prime the fast tier with the remaining window only, so both
		// tiers expire together
		if err := s.fast.SetJSON(ctx, cacheKey(terminal.ID), data, remaining); err != nil {
			log.Warn("failed to prime ephemeral weather cache", "terminal_id", terminal.ID, "err", err.Error())
		}

		return data, nil
	}

	location := terminal.Location
	if location.IsZero() {
		location = s.defaultLocation
	}
	if location.IsZero() {
		return types.WeatherData{}, fmt.Errorf("%w: %s", ErrMissingCoordinates, terminal.ID)
	}

	fetched, err := s.provider.Fetch(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return types.WeatherData{}, err
	}

	fetched.FetchedAt = now
	fetched.ValidFor = cacheWindow

	// flags survive a refresh; they only exist as defaults on first insert
	fetched.WeatherCheckEnabled = true
	if entry.TerminalID != "" {
		fetched.WeatherCheckEnabled = entry.WeatherCheckEnabled
		fetched.ManualBlockEnabled = entry.ManualBlockEnabled
	}

	err = s.storage.UpsertWeatherCache(ctx, types.WeatherCacheEntry{
		TerminalID: terminal.ID,
		Hourly:     fetched.Hourly,
		Weekly:     fetched.Weekly,
		FetchedAt:  now,
		ExpiresAt:  now.Add(cacheWindow),
	})
	if err != nil {
		return types.WeatherData{}, fmt.Errorf("failed to store weather cache entry: %w", err)
	}

	if err := s.fast.SetJSON(ctx, cacheKey(terminal.ID), fetched, cacheWindow); err != nil {
		log.Warn("failed to prime ephemeral weather cache", "terminal_id", terminal.ID, "err", err.Error())
	}

	return fetched, nil
}

func (s *svc) ToggleWeatherCheck(ctx context.Context, terminalID string, enabled bool) error {
	err := s.storage.SetWeatherCheckEnabled(ctx, terminalID, enabled)
	if err != nil {
		return err
	}

	s.patchFastTier(ctx, terminalID, func(data *types.WeatherData) {
		data.WeatherCheckEnabled = enabled
	})

	return nil
}

func (s *svc) ToggleManualBlock(ctx context.Context, terminalID string, blocked bool) error {
	err := s.storage.SetManualBlockEnabled(ctx, terminalID, blocked)
	if err != nil {
		return err
	}

	s.patchFastTier(ctx, terminalID, func(data *types.WeatherData) {
		data.ManualBlockEnabled = blocked
	})

	return nil
}

// patchFastTier rewrites an existing ephemeral entry in place, keeping its
// remaining TTL. A missing entry is fine; the flag will be picked up from
// the durable row on the next lookup.
func (s *svc) patchFastTier(ctx context.Context, terminalID string, patch func(*types.WeatherData)) {
	var data types.WeatherData

	err := s.fast.GetJSON(ctx, cacheKey(terminalID), &data)
	if err != nil {
		if !errors.Is(err, cache.ErrNoEntry) {
			logging.GetFromContext(ctx).Warn("ephemeral weather cache unavailable", "terminal_id", terminalID, "err", err.Error())
		}
		return
	}

	patch(&data)

	err = s.fast.PatchJSON(ctx, cacheKey(terminalID), data)
	if err != nil && !errors.Is(err, cache.ErrNoEntry) {
		logging.GetFromContext(ctx).Warn("failed to patch ephemeral weather cache", "terminal_id", terminalID, "err", err.Error())
	}
}

// closestForecastSlot derives "current" conditions from the stored hourly
// forecast: the slot whose timestamp is nearest to now, first found on ties.
func closestForecastSlot(hourly []types.WeatherObservation, now time.Time) types.WeatherObservation {
	if len(hourly) == 0 {
		return types.WeatherObservation{}
	}

	closest := hourly[0]
	smallest := absDuration(hourly[0].Timestamp.Sub(now))

	for _, slot := range hourly[1:] {
		if d := absDuration(slot.Timestamp.Sub(now)); d < smallest {
			smallest = d
			closest = slot
		}
	}

	return closest
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
