package types

import (
	"encoding/json"
	"time"
)

type AlertCreated struct {
	Alert     Alert     `json:"alert"`
	Tenant    string    `json:"tenant"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlertCreated) ContentType() string {
	return "application/json"
}
func (a *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (a *AlertCreated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlertStatusUpdated struct {
	AlertID   string    `json:"alertID"`
	Status    string    `json:"status"`
	Tenant    string    `json:"tenant"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlertStatusUpdated) ContentType() string {
	return "application/json"
}
func (a *AlertStatusUpdated) TopicName() string {
	return "alerts.statusUpdated"
}
func (a *AlertStatusUpdated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlarmRaised struct {
	Alarm     Alarm     `json:"alarm"`
	Tenant    string    `json:"tenant"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlarmRaised) ContentType() string {
	return "application/json"
}
func (a *AlarmRaised) TopicName() string {
	return "alarms.alarmRaised"
}
func (a *AlarmRaised) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlarmCleared struct {
	AlarmID    string    `json:"alarmID"`
	TerminalID string    `json:"terminalID"`
	Kind       string    `json:"kind"`
	Tenant     string    `json:"tenant"`
	Timestamp  time.Time `json:"timestamp"`
}

func (a *AlarmCleared) ContentType() string {
	return "application/json"
}
func (a *AlarmCleared) TopicName() string {
	return "alarms.alarmCleared"
}
func (a *AlarmCleared) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

// CacheInvalidated tells aggregate consumers (dashboard, map overlay) that
// a materialized view they serve from is stale.
type CacheInvalidated struct {
	View      string    `json:"view"`
	Tenant    string    `json:"tenant,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	ViewDashboardStats = "dashboard-stats"
	ViewMapOverlay     = "map-overlay"
)

func (c *CacheInvalidated) ContentType() string {
	return "application/json"
}
func (c *CacheInvalidated) TopicName() string {
	return "cache.invalidated"
}
func (c *CacheInvalidated) Body() []byte {
	b, _ := json.Marshal(c)
	return b
}
