package notification

// ============= Response DTOs =============

// UnreadCount is the backend reply of the unread-count endpoint.
type UnreadCount struct {
	Count int64 `json:"count"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
	UnreadCount   int            `json:"unread_count"`
}

func NewNotificationListResponse(items []Notification) NotificationListResponse {
	unread := 0
	for _, n := range items {
		if !n.IsRead() {
			unread++
		}
	}
	if items == nil {
		items = []Notification{}
	}
	return NotificationListResponse{
		Notifications: items,
		Total:         len(items),
		UnreadCount:   unread,
	}
}

// ============= SSE Event =============

const EventUnreadCount = "unread_count"

// SSEEvent is one frame on the notification stream.
type SSEEvent struct {
	Event string              `json:"event"`
	Data  UnreadCountResponse `json:"data"`
}
