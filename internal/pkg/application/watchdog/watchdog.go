package watchdog

import (
	"context"
	"sync"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/alarms"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/infrastructure/storage"
	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// offlineAfterDays matches the minor downtime threshold: a terminal that
// has gone quiet long enough for a downtime alarm is also shown offline.
const offlineAfterDays = 3.0

const sweepConcurrency = 8

//go:generate moq -rm -out terminallister_mock.go . TerminalLister
type TerminalLister interface {
	QueryTerminals(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Terminal], error)
	SetTerminalStatus(ctx context.Context, terminalID, status string) error
}

type Watchdog interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

type watchdog struct {
	terminals TerminalLister
	alarms    alarms.AlarmService
	interval  time.Duration

	running sync.Mutex
	done    chan struct{}
	timeNow func() time.Time
}

func New(terminals TerminalLister, alarmSvc alarms.AlarmService, interval time.Duration) Watchdog {
	return &watchdog{
		terminals: terminals,
		alarms:    alarmSvc,
		interval:  interval,
		done:      make(chan struct{}),
		timeNow:   time.Now,
	}
}

func (w *watchdog) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *watchdog) Stop(ctx context.Context) {
	close(w.done)
}

func (w *watchdog) run(ctx context.Context) {
	// one sweep at startup, then on the fixed schedule
	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-w.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// sweep applies the downtime rule to every non-archived terminal. Runs are
// single-flight: a tick that fires while the previous sweep is still going
// is skipped rather than queued.
func (w *watchdog) sweep(ctx context.Context) {
	if !w.running.TryLock() {
		logging.GetFromContext(ctx).Warn("downtime sweep still running, skipping this tick")
		return
	}
	defer w.running.Unlock()

	log := logging.GetFromContext(ctx)
	now := w.timeNow().UTC()

	collection, err := w.terminals.QueryTerminals(ctx, storage.WithArchived(false))
	if err != nil {
		log.Error("could not list terminals", "err", err.Error())
		return
	}

	seen := lo.Filter(collection.Data, func(t types.Terminal, _ int) bool {
		return !t.LastSeenAt.IsZero()
	})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sweepConcurrency)

	for _, terminal := range seen {
		g.Go(func() error {
			err := w.alarms.HandleDowntime(gctx, terminal, now)
			if err != nil {
				log.Error("downtime check failed", "terminal_id", terminal.ID, "err", err.Error())
			}

			diffDays := now.Sub(terminal.LastSeenAt).Hours() / 24

			status := types.TerminalStatusOnline
			if diffDays >= offlineAfterDays {
				status = types.TerminalStatusOffline
			}

			err = w.terminals.SetTerminalStatus(gctx, terminal.ID, status)
			if err != nil {
				log.Error("could not update terminal status", "terminal_id", terminal.ID, "err", err.Error())
			}

			return nil
		})
	}

	g.Wait()

	log.Debug("downtime sweep finished", "terminals", len(seen))
}
