package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.CreateTables(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func newTestTerminal() types.Terminal {
	suffix := uuid.NewString()[:8]
	return types.Terminal{
		ID:       "test-" + suffix,
		DevEUI:   "eui-" + suffix,
		Name:     "terminal " + suffix,
		Status:   types.TerminalStatusOffline,
		Location: types.Location{Latitude: 23.685, Longitude: 90.3563},
		Tenant:   "default",
	}
}

func TestAddAndGetTerminal(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	terminal := newTestTerminal()
	is.NoErr(s.AddTerminal(ctx, terminal))

	fetched, err := s.GetTerminal(ctx, WithTerminalID(terminal.ID))
	is.NoErr(err)
	is.Equal(fetched.DevEUI, terminal.DevEUI)
	is.Equal(fetched.Location.Latitude, terminal.Location.Latitude)

	byEUI, err := s.GetTerminal(ctx, WithDevEUI(terminal.DevEUI))
	is.NoErr(err)
	is.Equal(byEUI.ID, terminal.ID)
}

func TestGetUnknownTerminal(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	_, err := s.GetTerminal(ctx, WithTerminalID("test-"+uuid.NewString()))
	is.True(errors.Is(err, ErrNoRows))
}

func TestSetLastSeenMarksTerminalOnline(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	terminal := newTestTerminal()
	is.NoErr(s.AddTerminal(ctx, terminal))

	seenAt := time.Now().UTC().Truncate(time.Millisecond)
	is.NoErr(s.SetLastSeen(ctx, terminal.ID, seenAt))

	fetched, err := s.GetTerminal(ctx, WithTerminalID(terminal.ID))
	is.NoErr(err)
	is.Equal(fetched.Status, types.TerminalStatusOnline)
	is.True(fetched.LastSeenAt.Equal(seenAt))
}

func TestSetLastSeenOnUnknownTerminal(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	err := s.SetLastSeen(ctx, "test-"+uuid.NewString(), time.Now().UTC())
	is.True(errors.Is(err, ErrNoRows))
}

func TestAlertIDsAreSequential(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	terminal := newTestTerminal()
	is.NoErr(s.AddTerminal(ctx, terminal))

	alertType := types.AlertTypeCritical
	alert := types.Alert{
		TerminalID: terminal.ID,
		AlertType:  &alertType,
		Status:     types.AlertStatusUnassigned,
		SentVia:    types.SentViaSensor,
		SentAt:     time.Now().UTC(),
		Tenant:     "default",
	}

	first, err := s.AddAlert(ctx, "ALRT", alert)
	is.NoErr(err)
	second, err := s.AddAlert(ctx, "ALRT", alert)
	is.NoErr(err)

	is.True(strings.HasPrefix(first, "ALRT"))
	is.True(strings.HasPrefix(second, "ALRT"))
	is.True(first != second)

	var a, b int
	_, err = fmt.Sscanf(first, "ALRT%d", &a)
	is.NoErr(err)
	_, err = fmt.Sscanf(second, "ALRT%d", &b)
	is.NoErr(err)
	is.Equal(b, a+1)
}

func TestDispatchedAlertClearsType(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	terminal := newTestTerminal()
	is.NoErr(s.AddTerminal(ctx, terminal))

	alertType := types.AlertTypeCritical
	alertID, err := s.AddAlert(ctx, "ALRT", types.Alert{
		TerminalID: terminal.ID,
		AlertType:  &alertType,
		Status:     types.AlertStatusUnassigned,
		SentVia:    types.SentViaSensor,
		SentAt:     time.Now().UTC(),
		Tenant:     "default",
	})
	is.NoErr(err)

	is.NoErr(s.SetAlertStatus(ctx, alertID, types.AlertStatusDispatched))

	fetched, err := s.GetAlert(ctx, WithAlertID(alertID))
	is.NoErr(err)
	is.Equal(fetched.Status, types.AlertStatusDispatched)
	is.True(fetched.AlertType == nil)
}

func TestRaiseAlarmDeduplicates(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	terminal := newTestTerminal()
	is.NoErr(s.AddTerminal(ctx, terminal))

	alarm := types.Alarm{
		ID:           uuid.NewString(),
		TerminalID:   terminal.ID,
		TerminalName: terminal.Name,
		Kind:         types.AlarmKindBattery,
		Severity:     types.AlarmSeverityMinor,
		Status:       types.AlarmStatusActive,
		RaisedAt:     time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
		Tenant:       "default",
	}

	firstID, inserted, err := s.RaiseAlarm(ctx, alarm)
	is.NoErr(err)
	is.True(inserted)

	// same severity again is a no-op
	alarm.ID = uuid.NewString()
	_, _, err = s.RaiseAlarm(ctx, alarm)
	is.True(errors.Is(err, ErrNoRows))

	// escalation updates the active row instead of adding a second one
	alarm.ID = uuid.NewString()
	alarm.Severity = types.AlarmSeverityMajor
	escalatedID, inserted, err := s.RaiseAlarm(ctx, alarm)
	is.NoErr(err)
	is.True(!inserted)
	is.Equal(escalatedID, firstID)

	collection, err := s.QueryAlarms(ctx, WithTerminalID(terminal.ID), WithStatus(types.AlarmStatusActive))
	is.NoErr(err)
	is.Equal(len(collection.Data), 1)
	is.Equal(collection.Data[0].Severity, types.AlarmSeverityMajor)
}

func TestClearAlarm(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	terminal := newTestTerminal()
	is.NoErr(s.AddTerminal(ctx, terminal))

	alarm := types.Alarm{
		ID:         uuid.NewString(),
		TerminalID: terminal.ID,
		Kind:       types.AlarmKindDowntime,
		Severity:   types.AlarmSeverityMinor,
		Status:     types.AlarmStatusActive,
		RaisedAt:   time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
		Tenant:     "default",
	}

	alarmID, _, err := s.RaiseAlarm(ctx, alarm)
	is.NoErr(err)

	clearedID, err := s.ClearAlarm(ctx, terminal.ID, types.AlarmKindDowntime, time.Now().UTC())
	is.NoErr(err)
	is.Equal(clearedID, alarmID)

	// nothing left to clear
	_, err = s.ClearAlarm(ctx, terminal.ID, types.AlarmKindDowntime, time.Now().UTC())
	is.True(errors.Is(err, ErrNoRows))
}

func TestWeatherCacheRoundTrip(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	terminal := newTestTerminal()
	now := time.Now().UTC().Truncate(time.Millisecond)

	entry := types.WeatherCacheEntry{
		TerminalID: terminal.ID,
		Hourly:     []types.WeatherObservation{{Timestamp: now, Temperature: 28.4, Description: "light rain"}},
		FetchedAt:  now,
		ExpiresAt:  now.Add(6 * time.Hour),
	}

	is.NoErr(s.UpsertWeatherCache(ctx, entry))

	fetched, err := s.GetWeatherCache(ctx, terminal.ID)
	is.NoErr(err)
	is.Equal(fetched.APICallCount, 1)
	is.Equal(len(fetched.Hourly), 1)
	is.Equal(fetched.Hourly[0].Description, "light rain")
	is.Equal(fetched.WeatherCheckEnabled, true)

	// a refresh counts upstream calls but leaves operator flags alone
	is.NoErr(s.SetManualBlockEnabled(ctx, terminal.ID, true))
	is.NoErr(s.UpsertWeatherCache(ctx, entry))

	fetched, err = s.GetWeatherCache(ctx, terminal.ID)
	is.NoErr(err)
	is.Equal(fetched.APICallCount, 2)
	is.Equal(fetched.ManualBlockEnabled, true)
}

func TestConditionsBuildWhereClause(t *testing.T) {
	is := is.New(t)

	c := &Condition{}
	for _, cond := range []ConditionFunc{WithTerminalID("TRM007"), WithStatus("active"), WithTenants([]string{"default"})} {
		c = cond(c)
	}

	is.Equal(c.Where(), "terminal_id = @terminal_id AND status = @status AND tenant = ANY(@tenants)")

	args := c.NamedArgs()
	is.Equal(args["terminal_id"], "TRM007")
	is.Equal(args["status"], "active")
}

func TestEmptyConditionsMatchEverything(t *testing.T) {
	is := is.New(t)

	c := &Condition{}
	is.Equal(c.Where(), "1=1")
	is.Equal(c.OffsetLimit(), "")
}

func TestOffsetLimit(t *testing.T) {
	is := is.New(t)

	c := &Condition{}
	for _, cond := range []ConditionFunc{WithOffset(20), WithLimit(10)} {
		c = cond(c)
	}

	is.Equal(strings.TrimSpace(c.OffsetLimit()), "OFFSET 20 LIMIT 10")
}
