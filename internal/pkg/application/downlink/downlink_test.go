package downlink

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestMapStatus(t *testing.T) {
	is := is.New(t)

	is.Equal(MapStatus(types.AlertStatusDispatched), CodeDispatched)
	is.Equal(MapStatus(types.AlertStatusWaitlist), CodeWaitlist)
	is.Equal(MapStatus(types.AlertStatusCompleted), CodeFalseAlarm)
	is.Equal(MapStatus("something-else"), CodeFalseAlarm)
}

func TestSendQueuesCommandOnNetworkServer(t *testing.T) {
	is := is.New(t)

	var received *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Clone(context.Background())
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := New(Config{URL: server.URL, ASID: "app-1", Token: "secret"})

	err := sender.Send(context.Background(), "a81758fffe051d00", CodeDispatched)

	is.NoErr(err)
	is.Equal(received.Method, http.MethodPost)

	query := received.URL.Query()
	is.Equal(query.Get("DevEUI"), "a81758fffe051d00")
	is.Equal(query.Get("FPort"), "69")
	is.Equal(query.Get("Payload"), CodeDispatched)
	is.Equal(query.Get("AS_ID"), "app-1")
	is.Equal(query.Get("Token"), "secret")
	is.True(query.Get("Time") != "")
}

func TestSendReportsUpstreamFailure(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	sender := New(Config{URL: server.URL})

	err := sender.Send(context.Background(), "a81758fffe051d00", CodeFalseAlarm)

	is.True(errors.Is(err, ErrDownlinkFailed))
}

func TestSendFailsWhenServerIsUnreachable(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	sender := New(Config{URL: server.URL})

	err := sender.Send(context.Background(), "a81758fffe051d00", CodeFalseAlarm)

	is.True(errors.Is(err, ErrDownlinkFailed))
}
