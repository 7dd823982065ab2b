package ingest

import (
	"errors"
	"testing"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestDecodeCriticalAlertFrame(t *testing.T) {
	is := is.New(t)

	// terminal 7, type 1 (critical), 2025-06-01T12:00:00Z
	frame, err := DecodePayload("0701683C40C0", "a81758fffe051d00", PortAlert, "TRM")

	is.NoErr(err)
	is.True(frame.Alert != nil)
	is.Equal(frame.Alert.TerminalID, "TRM007")
	is.Equal(frame.Alert.AlertType, types.AlertTypeCritical)
	is.Equal(frame.Alert.SentAt, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	is.Equal(frame.TerminalID(), "TRM007")
}

func TestDecodeUserInitiatedAlertFrame(t *testing.T) {
	is := is.New(t)

	frame, err := DecodePayload("7F00683C40C0", "a81758fffe051d00", PortAlert, "TRM")

	is.NoErr(err)
	is.Equal(frame.Alert.TerminalID, "TRM127")
	is.Equal(frame.Alert.AlertType, types.AlertTypeUserInitiated)
}

func TestDecodeBatteryFrame(t *testing.T) {
	is := is.New(t)

	frame, err := DecodePayload("030F00000000", "a81758fffe051d00", PortBattery, "TRM")

	is.NoErr(err)
	is.True(frame.Battery != nil)
	is.True(frame.Alert == nil)
	is.Equal(frame.Battery.TerminalID, "TRM003")
	is.Equal(frame.Battery.BatteryPercent, 15)
	is.Equal(frame.TerminalID(), "TRM003")
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	is := is.New(t)

	_, err := DecodePayload("0701", "a81758fffe051d00", PortAlert, "TRM")
	is.True(errors.Is(err, ErrMalformedPayload))

	_, err = DecodePayload("0701683C40C0FF", "a81758fffe051d00", PortAlert, "TRM")
	is.True(errors.Is(err, ErrMalformedPayload))
}

func TestDecodeRejectsNonHex(t *testing.T) {
	is := is.New(t)

	_, err := DecodePayload("07zz683C40C0", "a81758fffe051d00", PortAlert, "TRM")
	is.True(errors.Is(err, ErrMalformedPayload))
}

func TestDecodeRejectsUnknownPort(t *testing.T) {
	is := is.New(t)

	_, err := DecodePayload("0701683C40C0", "a81758fffe051d00", 42, "TRM")
	is.True(errors.Is(err, ErrUnknownPort))
}
