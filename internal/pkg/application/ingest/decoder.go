package ingest

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/floodwatch/iot-terminal-mgmt/pkg/types"
)

var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrUnknownPort      = errors.New("unknown uplink port")
)

// Uplink application ports. The wire payload itself carries no frame type;
// the network server's port number is the discriminator.
const (
	PortAlert   = 1
	PortBattery = 2
)

const payloadHexLength = 12

type AlertReading struct {
	TerminalID string
	AlertType  string
	SentAt     time.Time
}

type BatteryReading struct {
	TerminalID     string
	BatteryPercent int
}

// TelemetryFrame is the decoded form of one uplink. Exactly one of Alert
// and Battery is set, matching the port the frame arrived on.
type TelemetryFrame struct {
	DevEUI string
	RawHex string
	Port   int

	Alert   *AlertReading
	Battery *BatteryReading
}

// DecodePayload turns a fixed-width hex frame into a telemetry reading.
// Alert frames are 6 bytes: terminal number, alert type code, and a
// big-endian 32-bit unix timestamp. Battery frames reuse the first two
// bytes as terminal number and battery percent.
func DecodePayload(rawHex, devEUI string, port int, terminalPrefix string) (TelemetryFrame, error) {
	if len(rawHex) != payloadHexLength {
		return TelemetryFrame{}, fmt.Errorf("%w: expected %d hex characters, got %d", ErrMalformedPayload, payloadHexLength, len(rawHex))
	}

	b, err := hex.DecodeString(rawHex)
	if err != nil {
		return TelemetryFrame{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	frame := TelemetryFrame{
		DevEUI: devEUI,
		RawHex: rawHex,
		Port:   port,
	}

	terminalID := fmt.Sprintf("%s%03d", terminalPrefix, b[0])

	switch port {
	case PortAlert:
		alertType := types.AlertTypeUserInitiated
		if b[1] == 1 {
			alertType = types.AlertTypeCritical
		}

		frame.Alert = &AlertReading{
			TerminalID: terminalID,
			AlertType:  alertType,
			SentAt:     time.Unix(int64(binary.BigEndian.Uint32(b[2:6])), 0).UTC(),
		}
	case PortBattery:
		frame.Battery = &BatteryReading{
			TerminalID:     terminalID,
			BatteryPercent: int(b[1]),
		}
	default:
		return TelemetryFrame{}, fmt.Errorf("%w: %d", ErrUnknownPort, port)
	}

	return frame, nil
}
