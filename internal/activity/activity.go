package activity

import (
	"time"

	activityDatamodel "github.com/tvintergoller/keep-informed/internal/core/datamodel/activity"
)

type LogEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Details   *string   `json:"details,omitempty"`
}

// ReportEntry is one row of the per-user activity report.
type ReportEntry struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Details   *string   `json:"details,omitempty"`
}

// Report maps a user id onto that user's in-range activity, in stored order.
// Users with no activity in range do not appear.
type Report map[int64][]ReportEntry

func FromDataModel(l *activityDatamodel.ActivityLog) *LogEntry {
	return &LogEntry{
		ID:        l.ID,
		UserID:    l.UserID,
		Action:    l.Action,
		Timestamp: l.Timestamp,
		Details:   l.Details,
	}
}
