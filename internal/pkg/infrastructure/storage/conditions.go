package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	TerminalID string
	DevEUI     string
	AlertID    string
	AlarmID    string
	Kind       string
	Status     string
	Archived   *bool

	Tenants []string

	SeenBefore time.Time

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.TerminalID != "" {
		args["terminal_id"] = c.TerminalID
	}
	if c.DevEUI != "" {
		args["dev_eui"] = c.DevEUI
	}
	if c.AlertID != "" {
		args["alert_id"] = c.AlertID
	}
	if c.AlarmID != "" {
		args["alarm_id"] = c.AlarmID
	}
	if c.Kind != "" {
		args["kind"] = c.Kind
	}
	if c.Status != "" {
		args["status"] = c.Status
	}
	if c.Archived != nil {
		args["archived"] = *c.Archived
	}
	if c.Tenants != nil {
		args["tenants"] = c.Tenants
	}
	if !c.SeenBefore.IsZero() {
		args["seen_before"] = c.SeenBefore.UTC()
	}
	if c.offset != nil {
		args["offset"] = *c.offset
	}
	if c.limit != nil {
		args["limit"] = *c.limit
	}

	return args
}

func (c Condition) Where() string {
	where := []string{}

	if c.TerminalID != "" {
		where = append(where, "terminal_id = @terminal_id")
	}
	if c.DevEUI != "" {
		where = append(where, "dev_eui = @dev_eui")
	}
	if c.AlertID != "" {
		where = append(where, "alert_id = @alert_id")
	}
	if c.AlarmID != "" {
		where = append(where, "alarm_id = @alarm_id")
	}
	if c.Kind != "" {
		where = append(where, "kind = @kind")
	}
	if c.Status != "" {
		where = append(where, "status = @status")
	}
	if c.Archived != nil {
		where = append(where, "archived = @archived")
	}
	if c.Tenants != nil {
		where = append(where, "tenant = ANY(@tenants)")
	}
	if !c.SeenBefore.IsZero() {
		where = append(where, "last_seen_at < @seen_before")
	}

	if len(where) == 0 {
		return "1=1"
	}

	return strings.Join(where, " AND ")
}

func (c Condition) SortBy() string {
	if c.sortBy == "" {
		return "created_on"
	}
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "DESC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 0
	}
	return *c.limit
}

func (c Condition) OffsetLimit() string {
	offsetLimit := ""

	if c.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", c.Offset())
	}
	if c.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", c.Limit())
	}

	return offsetLimit
}

func WithTerminalID(terminalID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.TerminalID = terminalID
		return c
	}
}

func WithDevEUI(devEUI string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DevEUI = devEUI
		return c
	}
}

func WithAlertID(alertID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertID = alertID
		return c
	}
}

func WithAlarmID(alarmID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlarmID = alarmID
		return c
	}
}

func WithKind(kind string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Kind = kind
		return c
	}
}

func WithStatus(status string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Status = status
		return c
	}
}

func WithArchived(archived bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Archived = &archived
		return c
	}
}

func WithTenants(tenants []string) ConditionFunc {
	return func(c *Condition) *Condition {
		if len(tenants) > 0 {
			c.Tenants = tenants
		}
		return c
	}
}

func WithSeenBefore(t time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SeenBefore = t
		return c
	}
}

func WithSortBy(sortBy, sortOrder string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.sortBy = sortBy
		c.sortOrder = sortOrder
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}
