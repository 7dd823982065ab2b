package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/downlink"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/risk"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/infrastructure/storage"
	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-terminal-mgmt/ingest")

var ErrTerminalNotFound = fmt.Errorf("terminal not found")

const (
	StatusAccepted           = "accepted"
	StatusIgnoredManualBlock = "ignored_manual_block"
	StatusIgnoredFalseAlarm  = "ignored_false_alarm"
	StatusBatteryReport      = "battery_report"
)

// Uplink is the payload of interest from the network server's webhook
// envelope.
type Uplink struct {
	DevEUI     string
	Port       int
	Data       string
	ReceivedAt time.Time
}

// Result tells the webhook caller what became of a frame.
type Result struct {
	Status     string
	TerminalID string
	AlertID    string
	AlertType  string
}

//go:generate moq -rm -out terminalregistry_mock.go . TerminalRegistry
type TerminalRegistry interface {
	GetTerminal(ctx context.Context, conditions ...storage.ConditionFunc) (types.Terminal, error)
	SetLastSeen(ctx context.Context, terminalID string, seenAt time.Time) error
}

//go:generate moq -rm -out alarmhandler_mock.go . AlarmHandler
type AlarmHandler interface {
	HandleBatteryLevel(ctx context.Context, terminal types.Terminal, batteryPercent int) error
	ClearDowntime(ctx context.Context, terminal types.Terminal) error
}

//go:generate moq -rm -out alertcreator_mock.go . AlertCreator
type AlertCreator interface {
	Create(ctx context.Context, terminal types.Terminal, alertType, sentVia string, sentAt time.Time) (types.Alert, error)
}

//go:generate moq -rm -out ingestservice_mock.go . IngestService
type IngestService interface {
	HandleUplink(ctx context.Context, uplink Uplink) (Result, error)
}

type svc struct {
	registry TerminalRegistry
	alarms   AlarmHandler
	verifier risk.Verifier
	alerts   AlertCreator
	sender   downlink.CommandSender

	terminalPrefix string
	timeNow        func() time.Time
}

func New(registry TerminalRegistry, alarms AlarmHandler, verifier risk.Verifier, alerts AlertCreator, sender downlink.CommandSender, terminalPrefix string) IngestService {
	return &svc{
		registry:       registry,
		alarms:         alarms,
		verifier:       verifier,
		alerts:         alerts,
		sender:         sender,
		terminalPrefix: terminalPrefix,
		timeNow:        time.Now,
	}
}

// HandleUplink runs one frame through decode, liveness bookkeeping and,
// for alert frames, false alarm suppression before anything is persisted.
func (s *svc) HandleUplink(ctx context.Context, uplink Uplink) (Result, error) {
	var err error

	ctx, span := tracer.Start(ctx, "handle-uplink")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	frame, err := DecodePayload(uplink.Data, uplink.DevEUI, uplink.Port, s.terminalPrefix)
	if err != nil {
		return Result{}, err
	}

	terminalID := frame.TerminalID()

	terminal, err := s.registry.GetTerminal(ctx, storage.WithTerminalID(terminalID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return Result{}, fmt.Errorf("%w: %s", ErrTerminalNotFound, terminalID)
		}
		return Result{}, err
	}

	now := s.timeNow().UTC()

	// every successful contact proves liveness, whatever the payload
	err = s.registry.SetLastSeen(ctx, terminal.ID, now)
	if err != nil {
		return Result{}, err
	}

	err = s.alarms.ClearDowntime(ctx, terminal)
	if err != nil {
		log.Error("could not clear downtime alarm", "terminal_id", terminal.ID, "err", err.Error())
	}

	if frame.Battery != nil {
		err = s.alarms.HandleBatteryLevel(ctx, terminal, frame.Battery.BatteryPercent)
		if err != nil {
			return Result{}, err
		}

		return Result{Status: StatusBatteryReport, TerminalID: terminal.ID}, nil
	}

	verdict, err := s.verifier.Verify(ctx, terminal, now)
	if err != nil {
		return Result{}, err
	}

	switch verdict {
	case risk.VerdictManualBlock:
		s.acknowledgeFalseAlarm(ctx, terminal)
		return Result{Status: StatusIgnoredManualBlock, TerminalID: terminal.ID}, nil
	case risk.VerdictFalseAlarm:
		s.acknowledgeFalseAlarm(ctx, terminal)
		return Result{Status: StatusIgnoredFalseAlarm, TerminalID: terminal.ID}, nil
	}

	sentVia := types.SentViaSensor
	if frame.Alert.AlertType == types.AlertTypeUserInitiated {
		sentVia = types.SentViaButton
	}

	alert, err := s.alerts.Create(ctx, terminal, frame.Alert.AlertType, sentVia, frame.Alert.SentAt)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Status:     StatusAccepted,
		TerminalID: terminal.ID,
		AlertID:    alert.ID,
		AlertType:  frame.Alert.AlertType,
	}, nil
}

// acknowledgeFalseAlarm tells the device its report was suppressed. Best
// effort only; a suppressed frame is done regardless.
func (s *svc) acknowledgeFalseAlarm(ctx context.Context, terminal types.Terminal) {
	err := s.sender.Send(ctx, terminal.DevEUI, downlink.CodeFalseAlarm)
	if err != nil {
		logging.GetFromContext(ctx).Error("false alarm downlink failed", "dev_eui", terminal.DevEUI, "err", err.Error())
	}
}

// TerminalID returns the terminal identifier carried by whichever variant
// is populated.
func (f TelemetryFrame) TerminalID() string {
	if f.Alert != nil {
		return f.Alert.TerminalID
	}
	if f.Battery != nil {
		return f.Battery.TerminalID
	}
	return ""
}
