package audit

import "time"

// Log is one recorded action.
type Log struct {
	LogID              int64      `json:"logId"`
	PerformedByEmail   string     `json:"performedByEmail"`
	PerformedByUserID  *int64     `json:"performedByUserId,omitempty"`
	PerformedByRole    string     `json:"performedByRole"`
	ActionPerformed    string     `json:"actionPerformed"`
	TargetResourceType string     `json:"targetResourceType"`
	TargetResourceID   *int64     `json:"targetResourceId,omitempty"`
	ActionTimestamp    *time.Time `json:"actionTimestamp,omitempty"`
}
