package alarms

import (
	"context"
	"errors"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/infrastructure/storage"
	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

// battery thresholds in percent
const (
	batteryMajorLevel = 10
	batteryMinorLevel = 20
)

// downtime thresholds in fractional days since last contact
const (
	downtimeMajorDays = 5.0
	downtimeMinorDays = 3.0
)

//go:generate moq -rm -out alarmstorage_mock.go . AlarmStorage
type AlarmStorage interface {
	RaiseAlarm(ctx context.Context, alarm types.Alarm) (string, bool, error)
	ClearAlarm(ctx context.Context, terminalID, kind string, clearedAt time.Time) (string, error)
	QueryAlarms(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alarm], error)
}

//go:generate moq -rm -out alarmservice_mock.go . AlarmService
type AlarmService interface {
	HandleBatteryLevel(ctx context.Context, terminal types.Terminal, batteryPercent int) error
	HandleDowntime(ctx context.Context, terminal types.Terminal, now time.Time) error
	ClearDowntime(ctx context.Context, terminal types.Terminal) error
	Query(ctx context.Context, offset, limit int, tenants []string) (types.Collection[types.Alarm], error)
}

type svc struct {
	storage   AlarmStorage
	messenger messaging.MsgContext

	timeNow func() time.Time
}

func New(s AlarmStorage, m messaging.MsgContext) AlarmService {
	return &svc{
		storage:   s,
		messenger: m,
		timeNow:   time.Now,
	}
}

// HandleBatteryLevel applies the battery rule for one inbound reading:
// 10% or less raises a major alarm, 20% or less a minor one, anything
// above clears whatever battery alarm is active.
func (svc *svc) HandleBatteryLevel(ctx context.Context, terminal types.Terminal, batteryPercent int) error {
	switch {
	case batteryPercent <= batteryMajorLevel:
		return svc.raise(ctx, terminal, types.AlarmKindBattery, types.AlarmSeverityMajor)
	case batteryPercent <= batteryMinorLevel:
		return svc.raise(ctx, terminal, types.AlarmKindBattery, types.AlarmSeverityMinor)
	default:
		return svc.clear(ctx, terminal, types.AlarmKindBattery)
	}
}

// HandleDowntime applies the downtime rule during the periodic sweep.
// Terminals that have never been seen are skipped.
func (svc *svc) HandleDowntime(ctx context.Context, terminal types.Terminal, now time.Time) error {
	if terminal.LastSeenAt.IsZero() {
		return nil
	}

	diffDays := now.Sub(terminal.LastSeenAt).Hours() / 24

	switch {
	case diffDays >= downtimeMajorDays:
		return svc.raise(ctx, terminal, types.AlarmKindDowntime, types.AlarmSeverityMajor)
	case diffDays >= downtimeMinorDays:
		return svc.raise(ctx, terminal, types.AlarmKindDowntime, types.AlarmSeverityMinor)
	default:
		return svc.clear(ctx, terminal, types.AlarmKindDowntime)
	}
}

// ClearDowntime closes any active downtime alarm. Any successful contact
// proves liveness regardless of what the frame carried.
func (svc *svc) ClearDowntime(ctx context.Context, terminal types.Terminal) error {
	return svc.clear(ctx, terminal, types.AlarmKindDowntime)
}

func (svc *svc) Query(ctx context.Context, offset, limit int, tenants []string) (types.Collection[types.Alarm], error) {
	return svc.storage.QueryAlarms(ctx,
		storage.WithStatus(types.AlarmStatusActive),
		storage.WithOffset(offset), storage.WithLimit(limit),
		storage.WithTenants(tenants))
}

func (svc *svc) raise(ctx context.Context, terminal types.Terminal, kind, severity string) error {
	now := svc.timeNow().UTC()

	name := terminal.Name
	if name == "" {
		name = terminal.ID
	}

	alarm := types.Alarm{
		ID:           uuid.NewString(),
		TerminalID:   terminal.ID,
		TerminalName: name,
		Kind:         kind,
		Severity:     severity,
		Status:       types.AlarmStatusActive,
		RaisedAt:     now,
		UpdatedAt:    now,
		Tenant:       terminal.Tenant,
	}

	alarmID, _, err := svc.storage.RaiseAlarm(ctx, alarm)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			// active alarm already carries this severity
			return nil
		}
		return err
	}

	alarm.ID = alarmID

	svc.publish(ctx, &types.AlarmRaised{
		Alarm:     alarm,
		Tenant:    alarm.Tenant,
		Timestamp: now,
	})
	svc.publish(ctx, &types.CacheInvalidated{
		View:      types.ViewDashboardStats,
		Tenant:    alarm.Tenant,
		Timestamp: now,
	})

	return nil
}

func (svc *svc) clear(ctx context.Context, terminal types.Terminal, kind string) error {
	now := svc.timeNow().UTC()

	alarmID, err := svc.storage.ClearAlarm(ctx, terminal.ID, kind, now)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			// nothing active to clear
			return nil
		}
		return err
	}

	svc.publish(ctx, &types.AlarmCleared{
		AlarmID:    alarmID,
		TerminalID: terminal.ID,
		Kind:       kind,
		Tenant:     terminal.Tenant,
		Timestamp:  now,
	})
	svc.publish(ctx, &types.CacheInvalidated{
		View:      types.ViewDashboardStats,
		Tenant:    terminal.Tenant,
		Timestamp: now,
	})

	return nil
}

func (svc *svc) publish(ctx context.Context, msg messaging.TopicMessage) {
	err := svc.messenger.PublishOnTopic(ctx, msg)
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to publish message", "topic", msg.TopicName(), "err", err.Error())
	}
}
