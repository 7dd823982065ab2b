package downlink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"
)

var ErrDownlinkFailed = errors.New("downlink failed")

// CommandPort is the application port the terminal firmware listens on for
// acknowledgement commands.
const CommandPort = 69

const (
	CodeDispatched = "01"
	CodeWaitlist   = "02"
	CodeFalseAlarm = "03"
)

// MapStatus translates a rescue status into the 2-character command code the
// terminal understands. Anything unrecognized maps to the close-out code.
func MapStatus(status string) string {
	switch status {
	case types.AlertStatusDispatched:
		return CodeDispatched
	case types.AlertStatusWaitlist:
		return CodeWaitlist
	default:
		return CodeFalseAlarm
	}
}

//go:generate moq -rm -out commandsender_mock.go . CommandSender
type CommandSender interface {
	Send(ctx context.Context, devEUI, payload string) error
}

type Config struct {
	URL   string
	ASID  string
	Token string
}

type networkServerClient struct {
	url    string
	asID   string
	token  string
	client *http.Client

	timeNow func() time.Time
}

func New(cfg Config) CommandSender {
	return &networkServerClient{
		url:   cfg.URL,
		asID:  cfg.ASID,
		token: cfg.Token,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		timeNow: time.Now,
	}
}

// Send queues a downlink command for delivery to the device. Callers treat
// failures as non-fatal: a lost acknowledgement must never roll back the
// state change that triggered it.
func (c *networkServerClient) Send(ctx context.Context, devEUI, payload string) error {
	params := url.Values{}
	params.Set("DevEUI", devEUI)
	params.Set("FPort", fmt.Sprintf("%d", CommandPort))
	params.Set("Payload", payload)
	params.Set("AS_ID", c.asID)
	params.Set("Time", c.timeNow().UTC().Format(time.RFC3339))
	params.Set("Token", c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDownlinkFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: network server returned status %d: %s", ErrDownlinkFailed, resp.StatusCode, string(body))
	}

	return nil
}
