package watchdog

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/alarms"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/infrastructure/storage"
	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"
	"github.com/matryer/is"
)

var sweepTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestSweepChecksEverySeenTerminal(t *testing.T) {
	is := is.New(t)
	w, terminals, alarmSvc := newTestWatchdog([]types.Terminal{
		{ID: "TRM001", LastSeenAt: sweepTime.Add(-1 * time.Hour)},
		{ID: "TRM002", LastSeenAt: sweepTime.Add(-4 * 24 * time.Hour)},
		{ID: "TRM003"}, // never seen, skipped
	})

	w.sweep(context.Background())

	is.Equal(len(alarmSvc.HandleDowntimeCalls()), 2)
	is.Equal(len(terminals.SetTerminalStatusCalls()), 2)

	statuses := map[string]string{}
	for _, call := range terminals.SetTerminalStatusCalls() {
		statuses[call.TerminalID] = call.Status
	}
	is.Equal(statuses["TRM001"], types.TerminalStatusOnline)
	is.Equal(statuses["TRM002"], types.TerminalStatusOffline)
}

func TestSweepStatusBoundary(t *testing.T) {
	is := is.New(t)
	w, terminals, _ := newTestWatchdog([]types.Terminal{
		{ID: "TRM001", LastSeenAt: sweepTime.Add(-3 * 24 * time.Hour)},
		{ID: "TRM002", LastSeenAt: sweepTime.Add(-3*24*time.Hour + time.Minute)},
	})

	w.sweep(context.Background())

	statuses := []string{}
	for _, call := range terminals.SetTerminalStatusCalls() {
		statuses = append(statuses, call.TerminalID+"="+call.Status)
	}
	sort.Strings(statuses)

	is.Equal(statuses, []string{
		"TRM001=" + types.TerminalStatusOffline,
		"TRM002=" + types.TerminalStatusOnline,
	})
}

func TestOverlappingSweepIsSkipped(t *testing.T) {
	is := is.New(t)
	w, _, alarmSvc := newTestWatchdog([]types.Terminal{
		{ID: "TRM001", LastSeenAt: sweepTime.Add(-1 * time.Hour)},
	})

	w.running.Lock()
	w.sweep(context.Background())
	w.running.Unlock()

	is.Equal(len(alarmSvc.HandleDowntimeCalls()), 0)
}

func TestSweepSurvivesListerFailure(t *testing.T) {
	is := is.New(t)
	w, terminals, alarmSvc := newTestWatchdog(nil)
	terminals.QueryTerminalsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Terminal], error) {
		return types.Collection[types.Terminal]{}, storage.ErrQueryRow
	}

	w.sweep(context.Background())

	is.Equal(len(alarmSvc.HandleDowntimeCalls()), 0)
}

func newTestWatchdog(data []types.Terminal) (*watchdog, *TerminalListerMock, *alarms.AlarmServiceMock) {
	terminals := &TerminalListerMock{
		QueryTerminalsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Terminal], error) {
			return types.Collection[types.Terminal]{Data: data, Count: uint64(len(data)), TotalCount: uint64(len(data))}, nil
		},
		SetTerminalStatusFunc: func(ctx context.Context, terminalID, status string) error {
			return nil
		},
	}
	alarmSvc := &alarms.AlarmServiceMock{
		HandleDowntimeFunc: func(ctx context.Context, terminal types.Terminal, now time.Time) error {
			return nil
		},
	}

	w := New(terminals, alarmSvc, time.Minute).(*watchdog)
	w.timeNow = func() time.Time { return sweepTime }

	return w, terminals, alarmSvc
}
