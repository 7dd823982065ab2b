package alerts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/downlink"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/infrastructure/storage"
	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

var reportTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestCreatePersistsAndNotifies(t *testing.T) {
	is := is.New(t)
	svc, deps := newTestAlertService()

	terminal := types.Terminal{ID: "TRM007", Name: "Riverbank 7", Tenant: "default"}

	alert, err := svc.Create(context.Background(), terminal, types.AlertTypeCritical, types.SentViaSensor, reportTime)

	is.NoErr(err)
	is.Equal(alert.ID, "ALRT042")
	is.Equal(*alert.AlertType, types.AlertTypeCritical)
	is.Equal(alert.Status, types.AlertStatusUnassigned)

	is.Equal(len(deps.storage.AddAlertCalls()), 1)
	is.Equal(deps.storage.AddAlertCalls()[0].Prefix, "ALRT")

	// alert created, dashboard and map invalidations
	is.Equal(len(deps.messenger.PublishOnTopicCalls()), 3)
	is.Equal(deps.messenger.PublishOnTopicCalls()[0].Message.TopicName(), "alerts.alertCreated")

	// one broadcast to the firehose channel, one to the terminal channel
	is.Equal(len(deps.broadcaster.PublishCalls()), 2)
	is.Equal(deps.broadcaster.PublishCalls()[0].Channel, ChannelAllAlerts)
	is.Equal(deps.broadcaster.PublishCalls()[1].Channel, "/api/v0/events/TRM007")
	is.Equal(deps.broadcaster.PublishCalls()[0].Event, "new-report")
}

func TestCreateSurvivesBroadcastFailure(t *testing.T) {
	is := is.New(t)
	svc, deps := newTestAlertService()
	deps.broadcaster.PublishFunc = func(channel, event string, data any) error {
		return errors.New("no subscribers")
	}

	_, err := svc.Create(context.Background(), types.Terminal{ID: "TRM007"}, types.AlertTypeCritical, types.SentViaSensor, reportTime)

	is.NoErr(err)
}

func TestGetByIDMapsMissingRow(t *testing.T) {
	is := is.New(t)
	svc, deps := newTestAlertService()
	deps.storage.GetAlertFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
		return types.Alert{}, storage.ErrNoRows
	}

	_, err := svc.GetByID(context.Background(), "ALRT999", nil)

	is.True(errors.Is(err, ErrAlertNotFound))
}

func TestUpdateStatusToDispatchedRecordsRescue(t *testing.T) {
	is := is.New(t)
	svc, deps := newTestAlertService()

	err := svc.UpdateStatus(context.Background(), "ALRT042", types.AlertStatusDispatched, nil)

	is.NoErr(err)
	is.Equal(len(deps.storage.SetAlertStatusCalls()), 1)
	is.Equal(deps.storage.SetAlertStatusCalls()[0].Status, types.AlertStatusDispatched)

	is.Equal(len(deps.storage.AddRescueCalls()), 1)
	is.Equal(deps.storage.AddRescueCalls()[0].TerminalID, "TRM007")
	is.Equal(deps.storage.AddRescueCalls()[0].AlertID, "ALRT042")

	is.Equal(len(deps.sender.SendCalls()), 1)
	is.Equal(deps.sender.SendCalls()[0].Payload, downlink.CodeDispatched)

	is.Equal(len(deps.broadcaster.PublishCalls()), 1)
	is.Equal(deps.broadcaster.PublishCalls()[0].Event, "status-update")
}

func TestUpdateStatusToWaitlistSkipsRescue(t *testing.T) {
	is := is.New(t)
	svc, deps := newTestAlertService()

	err := svc.UpdateStatus(context.Background(), "ALRT042", types.AlertStatusWaitlist, nil)

	is.NoErr(err)
	is.Equal(len(deps.storage.AddRescueCalls()), 0)
	is.Equal(deps.sender.SendCalls()[0].Payload, downlink.CodeWaitlist)
}

func TestUpdateStatusSurvivesDownlinkFailure(t *testing.T) {
	is := is.New(t)
	svc, deps := newTestAlertService()
	deps.sender.SendFunc = func(ctx context.Context, devEUI, payload string) error {
		return downlink.ErrDownlinkFailed
	}

	err := svc.UpdateStatus(context.Background(), "ALRT042", types.AlertStatusCompleted, nil)

	is.NoErr(err)
	is.Equal(len(deps.storage.SetAlertStatusCalls()), 1)
}

func TestUpdateStatusOnMissingAlert(t *testing.T) {
	is := is.New(t)
	svc, deps := newTestAlertService()
	deps.storage.GetAlertFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
		return types.Alert{}, storage.ErrNoRows
	}

	err := svc.UpdateStatus(context.Background(), "ALRT999", types.AlertStatusDispatched, nil)

	is.True(errors.Is(err, ErrAlertNotFound))
	is.Equal(len(deps.storage.SetAlertStatusCalls()), 0)
}

type testAlertDeps struct {
	storage     *AlertStorageMock
	messenger   *messaging.MsgContextMock
	broadcaster *BroadcasterMock
	sender      *downlink.CommandSenderMock
}

func newTestAlertService() (AlertService, testAlertDeps) {
	alertType := types.AlertTypeCritical

	deps := testAlertDeps{
		storage: &AlertStorageMock{
			AddAlertFunc: func(ctx context.Context, prefix string, alert types.Alert) (string, error) {
				return "ALRT042", nil
			},
			GetAlertFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
				return types.Alert{ID: "ALRT042", TerminalID: "TRM007", AlertType: &alertType, Status: types.AlertStatusUnassigned}, nil
			},
			QueryAlertsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
				return types.Collection[types.Alert]{}, nil
			},
			SetAlertStatusFunc: func(ctx context.Context, alertID, status string) error {
				return nil
			},
			GetTerminalFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Terminal, error) {
				return types.Terminal{ID: "TRM007", DevEUI: "a81758fffe051d00"}, nil
			},
			AddRescueFunc: func(ctx context.Context, rescueID, terminalID, alertID, tenant string, dispatchedAt time.Time) error {
				return nil
			},
		},
		messenger: &messaging.MsgContextMock{
			PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
				return nil
			},
		},
		broadcaster: &BroadcasterMock{
			PublishFunc: func(channel, event string, data any) error {
				return nil
			},
		},
		sender: &downlink.CommandSenderMock{
			SendFunc: func(ctx context.Context, devEUI, payload string) error {
				return nil
			},
		},
	}

	return New(deps.storage, deps.messenger, deps.broadcaster, deps.sender, "ALRT"), deps
}
