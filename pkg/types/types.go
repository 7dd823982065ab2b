package types

import (
	"time"
)

const (
	TerminalStatusOnline  = "online"
	TerminalStatusOffline = "offline"
)

type Terminal struct {
	ID         string    `json:"terminalID"`
	DevEUI     string    `json:"devEUI"`
	Name       string    `json:"name,omitempty"`
	Status     string    `json:"status"`
	LastSeenAt time.Time `json:"lastSeenAt"`
	Archived   bool      `json:"archived"`
	Location   Location  `json:"location"`
	Tenant     string    `json:"tenant"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (l Location) IsZero() bool {
	return l.Latitude == 0 && l.Longitude == 0
}

const (
	AlertTypeCritical      = "Critical"
	AlertTypeUserInitiated = "User-Initiated"

	AlertStatusUnassigned = "unassigned"
	AlertStatusWaitlist   = "waitlist"
	AlertStatusDispatched = "dispatched"
	AlertStatusCompleted  = "completed"

	SentViaSensor       = "sensor"
	SentViaButton       = "button"
	SentViaNetworkRelay = "network-relay"
)

type Alert struct {
	ID         string    `json:"alertID"`
	TerminalID string    `json:"terminalID"`
	AlertType  *string   `json:"alertType"`
	Status     string    `json:"status"`
	SentVia    string    `json:"sentVia"`
	SentAt     time.Time `json:"sentAt"`
	Tenant     string    `json:"tenant"`
}

// Resolved reports whether the alert has been picked up by a rescue
// workflow. The alert type is cleared once a rescue is dispatched.
func (a Alert) Resolved() bool {
	return a.AlertType == nil
}

const (
	AlarmKindBattery  = "Critical Battery Level"
	AlarmKindDowntime = "Extended Downtime"

	AlarmSeverityMinor = "minor"
	AlarmSeverityMajor = "major"

	AlarmStatusActive  = "active"
	AlarmStatusCleared = "cleared"
)

type Alarm struct {
	ID           string     `json:"alarmID"`
	TerminalID   string     `json:"terminalID"`
	TerminalName string     `json:"terminalName,omitempty"`
	Kind         string     `json:"kind"`
	Severity     string     `json:"severity"`
	Status       string     `json:"status"`
	RaisedAt     time.Time  `json:"raisedAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	ClearedAt    *time.Time `json:"clearedAt,omitempty"`
	Tenant       string     `json:"tenant"`
}

type WeatherObservation struct {
	Timestamp     time.Time `json:"timestamp"`
	Temperature   float64   `json:"temperature"`
	Description   string    `json:"description"`
	WindSpeed     float64   `json:"windSpeed"`
	Precipitation float64   `json:"precipitationProbability"`
	Humidity      float64   `json:"humidity,omitempty"`
}

type WeatherData struct {
	Current WeatherObservation   `json:"current"`
	Hourly  []WeatherObservation `json:"hourly"`
	Weekly  []WeatherObservation `json:"weekly"`

	FetchedAt time.Time     `json:"fetchedAt"`
	ValidFor  time.Duration `json:"validFor"`

	WeatherCheckEnabled bool `json:"weatherCheckEnabled"`
	ManualBlockEnabled  bool `json:"manualBlockEnabled"`
}

type WeatherCacheEntry struct {
	TerminalID          string               `json:"terminalID"`
	Hourly              []WeatherObservation `json:"hourly"`
	Weekly              []WeatherObservation `json:"weekly"`
	FetchedAt           time.Time            `json:"fetchedAt"`
	ExpiresAt           time.Time            `json:"expiresAt"`
	WeatherCheckEnabled bool                 `json:"weatherCheckEnabled"`
	ManualBlockEnabled  bool                 `json:"manualBlockEnabled"`
	APICallCount        int                  `json:"apiCallCount"`
}

type RiskCondition struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
	Met       bool    `json:"met"`
}

type RiskAssessment struct {
	TerminalID string          `json:"terminalID"`
	Risky      bool            `json:"risky"`
	Multiplier float64         `json:"multiplier"`
	Conditions []RiskCondition `json:"conditions"`
	AssessedAt time.Time       `json:"assessedAt"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
