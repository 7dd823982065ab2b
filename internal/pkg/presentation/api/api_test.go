package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"log/slog"

	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/alerts"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/ingest"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/risk"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/weather"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/infrastructure/storage"
	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestUplinkHandlerAcceptsAlert(t *testing.T) {
	is := is.New(t)

	svc := &ingest.IngestServiceMock{
		HandleUplinkFunc: func(ctx context.Context, uplink ingest.Uplink) (ingest.Result, error) {
			return ingest.Result{
				Status:     ingest.StatusAccepted,
				TerminalID: "TRM007",
				AlertID:    "ALRT042",
				AlertType:  types.AlertTypeCritical,
			}, nil
		},
	}

	body := `{"DevEUI_uplink_DevEUI":"a81758fffe051d00","DevEUI_uplink_FPort":1,"DevEUI_uplink_payload_hex":"0701683C40C0"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v0/uplink", strings.NewReader(body))
	res := httptest.NewRecorder()

	uplinkHandler(testLogger, svc).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusOK)

	var response map[string]any
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.Equal(response["success"], true)
	is.Equal(response["alertId"], "ALRT042")
	is.Equal(response["mappedTerminalId"], "TRM007")

	is.Equal(len(svc.HandleUplinkCalls()), 1)
	is.Equal(svc.HandleUplinkCalls()[0].Uplink.Port, 1)
	is.Equal(svc.HandleUplinkCalls()[0].Uplink.Data, "0701683C40C0")
}

func TestUplinkHandlerReportsSuppression(t *testing.T) {
	is := is.New(t)

	svc := &ingest.IngestServiceMock{
		HandleUplinkFunc: func(ctx context.Context, uplink ingest.Uplink) (ingest.Result, error) {
			return ingest.Result{Status: ingest.StatusIgnoredManualBlock, TerminalID: "TRM007"}, nil
		},
	}

	body := `{"DevEUI_uplink_DevEUI":"a81758fffe051d00","DevEUI_uplink_FPort":1,"DevEUI_uplink_payload_hex":"0701683C40C0"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v0/uplink", strings.NewReader(body))
	res := httptest.NewRecorder()

	uplinkHandler(testLogger, svc).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusOK)

	var response map[string]any
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.Equal(response["status"], ingest.StatusIgnoredManualBlock)
}

func TestUplinkHandlerRejectsMalformedPayload(t *testing.T) {
	is := is.New(t)

	svc := &ingest.IngestServiceMock{
		HandleUplinkFunc: func(ctx context.Context, uplink ingest.Uplink) (ingest.Result, error) {
			return ingest.Result{}, ingest.ErrMalformedPayload
		},
	}

	body := `{"DevEUI_uplink_DevEUI":"a81758fffe051d00","DevEUI_uplink_FPort":1,"DevEUI_uplink_payload_hex":"zz"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v0/uplink", strings.NewReader(body))
	res := httptest.NewRecorder()

	uplinkHandler(testLogger, svc).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusBadRequest)

	var response map[string]any
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.Equal(response["success"], false)
}

func TestUplinkHandlerUnknownTerminal(t *testing.T) {
	is := is.New(t)

	svc := &ingest.IngestServiceMock{
		HandleUplinkFunc: func(ctx context.Context, uplink ingest.Uplink) (ingest.Result, error) {
			return ingest.Result{}, ingest.ErrTerminalNotFound
		},
	}

	body := `{"DevEUI_uplink_DevEUI":"a81758fffe051d00","DevEUI_uplink_FPort":1,"DevEUI_uplink_payload_hex":"6301683C40C0"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v0/uplink", strings.NewReader(body))
	res := httptest.NewRecorder()

	uplinkHandler(testLogger, svc).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusNotFound)
}

func TestRiskHandler(t *testing.T) {
	is := is.New(t)

	terminals := &TerminalGetterMock{
		GetTerminalFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Terminal, error) {
			return types.Terminal{ID: "TRM007"}, nil
		},
	}
	verifier := &risk.VerifierMock{
		AssessFunc: func(ctx context.Context, terminal types.Terminal, now time.Time) (types.RiskAssessment, error) {
			return types.RiskAssessment{TerminalID: terminal.ID, Risky: true, Multiplier: 1.0}, nil
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v0/terminals/TRM007/risk", nil), "terminalID", "TRM007")
	res := httptest.NewRecorder()

	riskHandler(testLogger, verifier, terminals).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusOK)

	var assessment types.RiskAssessment
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &assessment))
	is.Equal(assessment.TerminalID, "TRM007")
	is.Equal(assessment.Risky, true)
}

func TestRiskHandlerUnknownTerminal(t *testing.T) {
	is := is.New(t)

	terminals := &TerminalGetterMock{
		GetTerminalFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Terminal, error) {
			return types.Terminal{}, storage.ErrNoRows
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v0/terminals/TRM999/risk", nil), "terminalID", "TRM999")
	res := httptest.NewRecorder()

	riskHandler(testLogger, &risk.VerifierMock{}, terminals).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusNotFound)
}

func TestToggleHandler(t *testing.T) {
	is := is.New(t)

	weatherSvc := &weather.WeatherServiceMock{
		ToggleManualBlockFunc: func(ctx context.Context, terminalID string, blocked bool) error {
			return nil
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/v0/terminals/TRM007/manualblock", strings.NewReader(`{"enabled":true}`)), "terminalID", "TRM007")
	res := httptest.NewRecorder()

	toggleHandler(testLogger, "manualblock", weatherSvc.ToggleManualBlock).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusNoContent)
	is.Equal(len(weatherSvc.ToggleManualBlockCalls()), 1)
	is.Equal(weatherSvc.ToggleManualBlockCalls()[0].TerminalID, "TRM007")
	is.Equal(weatherSvc.ToggleManualBlockCalls()[0].Blocked, true)
}

func TestPatchAlertHandlerRejectsUnknownStatus(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{}

	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/v0/alerts/ALRT042", strings.NewReader(`{"status":"lost"}`)), "alertID", "ALRT042")
	res := httptest.NewRecorder()

	patchAlertHandler(testLogger, svc).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusBadRequest)
}

func TestPatchAlertHandler(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		UpdateStatusFunc: func(ctx context.Context, alertID, status string, tenants []string) error {
			return nil
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/v0/alerts/ALRT042", strings.NewReader(`{"status":"dispatched"}`)), "alertID", "ALRT042")
	res := httptest.NewRecorder()

	patchAlertHandler(testLogger, svc).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusNoContent)
	is.Equal(len(svc.UpdateStatusCalls()), 1)
	is.Equal(svc.UpdateStatusCalls()[0].AlertID, "ALRT042")
	is.Equal(svc.UpdateStatusCalls()[0].Status, types.AlertStatusDispatched)
}

func TestGetAlertHandlerNotFound(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		GetByIDFunc: func(ctx context.Context, alertID string, tenants []string) (types.Alert, error) {
			return types.Alert{}, alerts.ErrAlertNotFound
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v0/alerts/ALRT999", nil), "alertID", "ALRT999")
	res := httptest.NewRecorder()

	getAlertHandler(testLogger, svc).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusNotFound)
}

func TestQueryAlertsHandlerPaging(t *testing.T) {
	is := is.New(t)

	svc := &alerts.AlertServiceMock{
		QueryFunc: func(ctx context.Context, offset, limit int, tenants []string) (types.Collection[types.Alert], error) {
			return types.Collection[types.Alert]{TotalCount: 3}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/alerts?offset=10&limit=5", nil)
	res := httptest.NewRecorder()

	queryAlertsHandler(testLogger, svc).ServeHTTP(res, req)

	is.Equal(res.Code, http.StatusOK)
	is.Equal(svc.QueryCalls()[0].Offset, 10)
	is.Equal(svc.QueryCalls()[0].Limit, 5)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
