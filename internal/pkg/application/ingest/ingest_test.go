package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/downlink"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/risk"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/infrastructure/storage"
	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestAlertUplinkCreatesAlert(t *testing.T) {
	is := is.New(t)
	svc, deps := newTestService(risk.VerdictRisky, nil)

	result, err := svc.HandleUplink(context.Background(), Uplink{
		DevEUI: "a81758fffe051d00",
		Port:   PortAlert,
		Data:   "0701683C40C0",
	})

	is.NoErr(err)
	is.Equal(result.Status, StatusAccepted)
	is.Equal(result.TerminalID, "TRM007")
	is.Equal(result.AlertID, "ALRT001")
	is.Equal(result.AlertType, types.AlertTypeCritical)

	is.Equal(len(deps.registry.SetLastSeenCalls()), 1)
	is.Equal(len(deps.alarms.ClearDowntimeCalls()), 1)
	is.Equal(len(deps.alerts.CreateCalls()), 1)
	is.Equal(deps.alerts.CreateCalls()[0].SentVia, types.SentViaSensor)
	is.Equal(len(deps.sender.SendCalls()), 0)
}

func TestUserInitiatedAlertIsSentViaButton(t *testing.T) {
	is := is.New(t)
	svc, deps := newTestService(risk.VerdictRisky, nil)

	_, err := svc.HandleUplink(context.Background(), Uplink{
		DevEUI: "a81758fffe051d00",
		Port:   PortAlert,
		Data:   "0700683C40C0",
	})

	is.NoErr(err)
	is.Equal(deps.alerts.CreateCalls()[0].SentVia, types.SentViaButton)
}

func TestFalseAlarmIsSuppressedAndAcknowledged(t *testing.T) {
	is := is.New(t)
	svc, deps := newTestService(risk.VerdictFalseAlarm, nil)

	result, err := svc.HandleUplink(context.Background(), Uplink{
		DevEUI: "a81758fffe051d00",
		Port:   PortAlert,
		Data:   "0701683C40C0",
	})

	is.NoErr(err)
	is.Equal(result.Status, StatusIgnoredFalseAlarm)
	is.Equal(len(deps.alerts.CreateCalls()), 0)

	is.Equal(len(deps.sender.SendCalls()), 1)
	is.Equal(deps.sender.SendCalls()[0].Payload, downlink.CodeFalseAlarm)
	is.Equal(deps.sender.SendCalls()[0].DevEUI, "a81758fffe051d00")
}

func TestManualBlockSuppressesAlert(t *testing.T) {
	is := is.New(t)
	svc, deps := newTestService(risk.VerdictManualBlock, nil)

	result, err := svc.HandleUplink(context.Background(), Uplink{
		DevEUI: "a81758fffe051d00",
		Port:   PortAlert,
		Data:   "0701683C40C0",
	})

	is.NoErr(err)
	is.Equal(result.Status, StatusIgnoredManualBlock)
	is.Equal(len(deps.alerts.CreateCalls()), 0)
	is.Equal(len(deps.sender.SendCalls()), 1)
}

func TestBatteryUplinkSkipsVerification(t *testing.T) {
	is := is.New(t)
	svc, deps := newTestService(risk.VerdictRisky, nil)

	result, err := svc.HandleUplink(context.Background(), Uplink{
		DevEUI: "a81758fffe051d00",
		Port:   PortBattery,
		Data:   "070F00000000",
	})

	is.NoErr(err)
	is.Equal(result.Status, StatusBatteryReport)

	is.Equal(len(deps.alarms.HandleBatteryLevelCalls()), 1)
	is.Equal(deps.alarms.HandleBatteryLevelCalls()[0].BatteryPercent, 15)
	is.Equal(len(deps.verifier.VerifyCalls()), 0)
	is.Equal(len(deps.alerts.CreateCalls()), 0)
}

func TestUnknownTerminalIsRejected(t *testing.T) {
	is := is.New(t)
	svc, deps := newTestService(risk.VerdictRisky, nil)
	deps.registry.GetTerminalFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Terminal, error) {
		return types.Terminal{}, storage.ErrNoRows
	}

	_, err := svc.HandleUplink(context.Background(), Uplink{
		DevEUI: "a81758fffe051d00",
		Port:   PortAlert,
		Data:   "0701683C40C0",
	})

	is.True(errors.Is(err, ErrTerminalNotFound))
	is.Equal(len(deps.registry.SetLastSeenCalls()), 0)
}

func TestDowntimeClearFailureDoesNotBlockAlert(t *testing.T) {
	is := is.New(t)
	svc, deps := newTestService(risk.VerdictRisky, nil)
	deps.alarms.ClearDowntimeFunc = func(ctx context.Context, terminal types.Terminal) error {
		return errors.New("broken")
	}

	result, err := svc.HandleUplink(context.Background(), Uplink{
		DevEUI: "a81758fffe051d00",
		Port:   PortAlert,
		Data:   "0701683C40C0",
	})

	is.NoErr(err)
	is.Equal(result.Status, StatusAccepted)
}

type testDeps struct {
	registry *TerminalRegistryMock
	alarms   *AlarmHandlerMock
	verifier *risk.VerifierMock
	alerts   *AlertCreatorMock
	sender   *downlink.CommandSenderMock
}

func newTestService(verdict risk.Verdict, verifyErr error) (IngestService, testDeps) {
	deps := testDeps{
		registry: &TerminalRegistryMock{
			GetTerminalFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Terminal, error) {
				return types.Terminal{ID: "TRM007", DevEUI: "a81758fffe051d00", Name: "Riverbank 7"}, nil
			},
			SetLastSeenFunc: func(ctx context.Context, terminalID string, seenAt time.Time) error {
				return nil
			},
		},
		alarms: &AlarmHandlerMock{
			HandleBatteryLevelFunc: func(ctx context.Context, terminal types.Terminal, batteryPercent int) error {
				return nil
			},
			ClearDowntimeFunc: func(ctx context.Context, terminal types.Terminal) error {
				return nil
			},
		},
		verifier: &risk.VerifierMock{
			VerifyFunc: func(ctx context.Context, terminal types.Terminal, now time.Time) (risk.Verdict, error) {
				return verdict, verifyErr
			},
		},
		alerts: &AlertCreatorMock{
			CreateFunc: func(ctx context.Context, terminal types.Terminal, alertType, sentVia string, sentAt time.Time) (types.Alert, error) {
				return types.Alert{ID: "ALRT001", TerminalID: terminal.ID}, nil
			},
		},
		sender: &downlink.CommandSenderMock{
			SendFunc: func(ctx context.Context, devEUI, payload string) error {
				return nil
			},
		},
	}

	svc := New(deps.registry, deps.alarms, deps.verifier, deps.alerts, deps.sender, "TRM")

	return svc, deps
}
