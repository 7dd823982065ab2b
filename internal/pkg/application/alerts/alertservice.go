package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/downlink"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/infrastructure/storage"
	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

var ErrAlertNotFound = fmt.Errorf("alert not found")

// SSE channels the dispatcher UI subscribes to
const (
	ChannelAllAlerts = "/api/v0/events"
	ChannelTerminal  = "/api/v0/events/%s"
)

//go:generate moq -rm -out alertstorage_mock.go . AlertStorage
type AlertStorage interface {
	AddAlert(ctx context.Context, prefix string, alert types.Alert) (string, error)
	GetAlert(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error)
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)
	SetAlertStatus(ctx context.Context, alertID, status string) error
	GetTerminal(ctx context.Context, conditions ...storage.ConditionFunc) (types.Terminal, error)
	AddRescue(ctx context.Context, rescueID, terminalID, alertID, tenant string, dispatchedAt time.Time) error
}

//go:generate moq -rm -out broadcaster_mock.go . Broadcaster
type Broadcaster interface {
	Publish(channel, event string, data any) error
}

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	Create(ctx context.Context, terminal types.Terminal, alertType, sentVia string, sentAt time.Time) (types.Alert, error)
	GetByID(ctx context.Context, alertID string, tenants []string) (types.Alert, error)
	Query(ctx context.Context, offset, limit int, tenants []string) (types.Collection[types.Alert], error)
	UpdateStatus(ctx context.Context, alertID, status string, tenants []string) error
}

type svc struct {
	storage     AlertStorage
	messenger   messaging.MsgContext
	broadcaster Broadcaster
	sender      downlink.CommandSender

	idPrefix string
	timeNow  func() time.Time
}

func New(s AlertStorage, m messaging.MsgContext, b Broadcaster, sender downlink.CommandSender, idPrefix string) AlertService {
	return &svc{
		storage:     s,
		messenger:   m,
		broadcaster: b,
		sender:      sender,
		idPrefix:    idPrefix,
		timeNow:     time.Now,
	}
}

// Create persists a verified alert and notifies all dispatcher sessions.
// Broadcast and bus failures are logged and swallowed; the alert row is the
// source of truth and is never rolled back for a lost notification.
func (svc *svc) Create(ctx context.Context, terminal types.Terminal, alertType, sentVia string, sentAt time.Time) (types.Alert, error) {
	if sentAt.IsZero() {
		sentAt = svc.timeNow().UTC()
	}

	alert := types.Alert{
		TerminalID: terminal.ID,
		AlertType:  &alertType,
		Status:     types.AlertStatusUnassigned,
		SentVia:    sentVia,
		SentAt:     sentAt,
		Tenant:     terminal.Tenant,
	}

	alertID, err := svc.storage.AddAlert(ctx, svc.idPrefix, alert)
	if err != nil {
		return types.Alert{}, err
	}

	alert.ID = alertID

	now := svc.timeNow().UTC()

	svc.publish(ctx, &types.AlertCreated{
		Alert:     alert,
		Tenant:    alert.Tenant,
		Timestamp: now,
	})
	svc.publish(ctx, &types.CacheInvalidated{
		View:      types.ViewDashboardStats,
		Tenant:    alert.Tenant,
		Timestamp: now,
	})
	svc.publish(ctx, &types.CacheInvalidated{
		View:      types.ViewMapOverlay,
		Tenant:    alert.Tenant,
		Timestamp: now,
	})

	report := struct {
		AlertID      string         `json:"alertID"`
		TerminalID   string         `json:"terminalID"`
		TerminalName string         `json:"terminalName,omitempty"`
		AlertType    string         `json:"alertType"`
		SentAt       time.Time      `json:"sentAt"`
		Location     types.Location `json:"location"`
	}{
		AlertID:      alert.ID,
		TerminalID:   terminal.ID,
		TerminalName: terminal.Name,
		AlertType:    alertType,
		SentAt:       sentAt,
		Location:     terminal.Location,
	}

	svc.broadcast(ctx, ChannelAllAlerts, "new-report", report)
	svc.broadcast(ctx, fmt.Sprintf(ChannelTerminal, terminal.ID), "new-report", report)

	return alert, nil
}

func (svc *svc) GetByID(ctx context.Context, alertID string, tenants []string) (types.Alert, error) {
	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID), storage.WithTenants(tenants))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Alert{}, ErrAlertNotFound
		}
		return types.Alert{}, err
	}

	return alert, nil
}

func (svc *svc) Query(ctx context.Context, offset, limit int, tenants []string) (types.Collection[types.Alert], error) {
	return svc.storage.QueryAlerts(ctx,
		storage.WithOffset(offset), storage.WithLimit(limit),
		storage.WithTenants(tenants))
}

// UpdateStatus moves an alert through the rescue workflow and acknowledges
// the change to the originating device. A dispatched rescue is recorded for
// the risk verifier's trailing incident history and clears the alert type,
// which closes the alert.
func (svc *svc) UpdateStatus(ctx context.Context, alertID, status string, tenants []string) error {
	log := logging.GetFromContext(ctx)

	alert, err := svc.GetByID(ctx, alertID, tenants)
	if err != nil {
		return err
	}

	err = svc.storage.SetAlertStatus(ctx, alertID, status)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrAlertNotFound
		}
		return err
	}

	now := svc.timeNow().UTC()

	if status == types.AlertStatusDispatched {
		err = svc.storage.AddRescue(ctx, uuid.NewString(), alert.TerminalID, alertID, alert.Tenant, now)
		if err != nil {
			log.Error("could not record rescue", "alert_id", alertID, "err", err.Error())
		}
	}

	// acknowledgement is best effort; the status change stands either way
	terminal, err := svc.storage.GetTerminal(ctx, storage.WithTerminalID(alert.TerminalID))
	if err != nil {
		log.Error("could not resolve terminal for downlink", "terminal_id", alert.TerminalID, "err", err.Error())
	} else {
		err = svc.sender.Send(ctx, terminal.DevEUI, downlink.MapStatus(status))
		if err != nil {
			log.Error("downlink failed", "dev_eui", terminal.DevEUI, "err", err.Error())
		}
	}

	svc.publish(ctx, &types.AlertStatusUpdated{
		AlertID:   alertID,
		Status:    status,
		Tenant:    alert.Tenant,
		Timestamp: now,
	})
	svc.publish(ctx, &types.CacheInvalidated{
		View:      types.ViewDashboardStats,
		Tenant:    alert.Tenant,
		Timestamp: now,
	})

	svc.broadcast(ctx, ChannelAllAlerts, "status-update", struct {
		AlertID string `json:"alertID"`
		Status  string `json:"status"`
	}{AlertID: alertID, Status: status})

	return nil
}

func (svc *svc) publish(ctx context.Context, msg messaging.TopicMessage) {
	err := svc.messenger.PublishOnTopic(ctx, msg)
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to publish message", "topic", msg.TopicName(), "err", err.Error())
	}
}

func (svc *svc) broadcast(ctx context.Context, channel, event string, data any) {
	err := svc.broadcaster.Publish(channel, event, data)
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to broadcast event", "channel", channel, "event", event, "err", err.Error())
	}
}
