package notification

import (
	"time"
)

// Priority as assigned by the backend.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Status values of an in-app notification. READ is terminal.
const (
	StatusUnread = "UNREAD"
	StatusRead   = "READ"
)

// Notification is an in-app message addressed to the signed-in user.
type Notification struct {
	NotificationID    int64      `json:"notificationId"`
	ToEmail           string     `json:"toEmail,omitempty"`
	Subject           string     `json:"subject"`
	BodySummary       string     `json:"bodySummary"`
	Type              string     `json:"type,omitempty"`
	Status            string     `json:"status"`
	SentAt            *time.Time `json:"sentAt,omitempty"`
	RelatedID         *int64     `json:"relatedId,omitempty"`
	RelatedEntityType string     `json:"relatedEntityType,omitempty"`
	Priority          Priority   `json:"priority,omitempty"`
}

func (n Notification) IsRead() bool {
	return n.Status == StatusRead
}
