package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/alarms"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/alerts"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/ingest"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/risk"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/weather"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/application/webevents"
	"github.com/floodwatch/iot-terminal-mgmt/internal/pkg/infrastructure/storage"
	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("iot-terminal-mgmt/api")

var timeNow = func() time.Time { return time.Now().UTC() }

type Services struct {
	Ingest    ingest.IngestService
	Alerts    alerts.AlertService
	Alarms    alarms.AlarmService
	Weather   weather.WeatherService
	Verifier  risk.Verifier
	Terminals TerminalGetter
	WebEvents webevents.WebEvents
}

//go:generate moq -rm -out terminalgetter_mock.go . TerminalGetter
type TerminalGetter interface {
	GetTerminal(ctx context.Context, conditions ...storage.ConditionFunc) (types.Terminal, error)
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, svcs Services) (*chi.Mux, error) {
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	router.Route("/api/v0", func(r chi.Router) {
		r.Post("/uplink", uplinkHandler(log, svcs.Ingest))

		r.Route("/terminals/{terminalID}", func(r chi.Router) {
			r.Get("/risk", riskHandler(log, svcs.Verifier, svcs.Terminals))
			r.Put("/weathercheck", toggleHandler(log, "weathercheck", svcs.Weather.ToggleWeatherCheck))
			r.Put("/manualblock", toggleHandler(log, "manualblock", svcs.Weather.ToggleManualBlock))
		})

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", queryAlertsHandler(log, svcs.Alerts))
			r.Get("/{alertID}", getAlertHandler(log, svcs.Alerts))
			r.Patch("/{alertID}", patchAlertHandler(log, svcs.Alerts))
		})

		r.Get("/alarms", queryAlarmsHandler(log, svcs.Alarms))

		if svcs.WebEvents != nil {
			r.Mount("/events", svcs.WebEvents.Server())
		}
	})

	return router, nil
}

// uplinkEnvelope is the part of the network server's webhook body that the
// pipeline cares about.
type uplinkEnvelope struct {
	DevEUI string `json:"DevEUI_uplink_DevEUI"`
	FPort  int    `json:"DevEUI_uplink_FPort"`
	Data   string `json:"DevEUI_uplink_payload_hex"`
}

func uplinkHandler(log *slog.Logger, svc ingest.IngestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "uplink")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var envelope uplinkEnvelope
		err = json.NewDecoder(r.Body).Decode(&envelope)
		if err != nil {
			requestLogger.Error("unable to decode webhook envelope", "err", err.Error())
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "invalid envelope"})
			return
		}

		result, err := svc.HandleUplink(ctx, ingest.Uplink{
			DevEUI: envelope.DevEUI,
			Port:   envelope.FPort,
			Data:   envelope.Data,
		})
		if err != nil {
			if errors.Is(err, ingest.ErrMalformedPayload) || errors.Is(err, ingest.ErrUnknownPort) {
				requestLogger.Error("unable to decode payload", "err", err.Error())
				writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": err.Error()})
				return
			}
			if errors.Is(err, ingest.ErrTerminalNotFound) {
				requestLogger.Error("unknown terminal", "err", err.Error())
				writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "error": err.Error()})
				return
			}

			requestLogger.Error("uplink processing failed", "err", err.Error())
			writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "internal error"})
			return
		}

		switch result.Status {
		case ingest.StatusIgnoredManualBlock:
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"status":  result.Status,
				"message": "terminal is blocked by an operator",
			})
		case ingest.StatusIgnoredFalseAlarm:
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"status":  result.Status,
				"message": "report suppressed as false alarm",
			})
		default:
			writeJSON(w, http.StatusOK, map[string]any{
				"success":          true,
				"decoded":          true,
				"alertId":          result.AlertID,
				"mappedTerminalId": result.TerminalID,
				"alertType":        result.AlertType,
			})
		}
	}
}

func riskHandler(log *slog.Logger, verifier risk.Verifier, terminals TerminalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "assess-risk")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		terminalID := chi.URLParam(r, "terminalID")

		terminal, err := terminals.GetTerminal(ctx, storage.WithTerminalID(terminalID))
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("could not fetch terminal", "terminal_id", terminalID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		assessment, err := verifier.Assess(ctx, terminal, timeNow())
		if err != nil {
			if errors.Is(err, weather.ErrWeatherUnavailable) {
				requestLogger.Error("weather unavailable", "terminal_id", terminalID, "err", err.Error())
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			requestLogger.Error("risk assessment failed", "terminal_id", terminalID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, assessment)
	}
}

func toggleHandler(log *slog.Logger, name string, toggle func(ctx context.Context, terminalID string, enabled bool) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "toggle-"+name)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		terminalID := chi.URLParam(r, "terminalID")

		var body struct {
			Enabled bool `json:"enabled"`
		}
		err = json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			requestLogger.Error("unable to decode body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = toggle(ctx, terminalID, body.Enabled)
		if err != nil {
			requestLogger.Error("toggle failed", "toggle", name, "terminal_id", terminalID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func queryAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := paging(r)

		collection, err := svc.Query(ctx, offset, limit, nil)
		if err != nil {
			requestLogger.Error("unable to query alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"data":       collection.Data,
			"totalCount": collection.TotalCount,
		})
	}
}

func getAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")

		alert, err := svc.GetByID(ctx, alertID, nil)
		if err != nil {
			if errors.Is(err, alerts.ErrAlertNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to fetch alert", "alert_id", alertID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, alert)
	}
}

func patchAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "patch-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")

		var body struct {
			Status string `json:"status"`
		}
		err = json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			requestLogger.Error("unable to decode body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch body.Status {
		case types.AlertStatusWaitlist, types.AlertStatusDispatched, types.AlertStatusCompleted:
		default:
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.UpdateStatus(ctx, alertID, body.Status, nil)
		if err != nil {
			if errors.Is(err, alerts.ErrAlertNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to update alert", "alert_id", alertID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func queryAlarmsHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-alarms")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := paging(r)

		collection, err := svc.Query(ctx, offset, limit, nil)
		if err != nil {
			requestLogger.Error("unable to query alarms", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"data":       collection.Data,
			"totalCount": collection.TotalCount,
		})
	}
}

func paging(r *http.Request) (int, int) {
	offset := 0
	limit := 50

	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	return offset, limit
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}
