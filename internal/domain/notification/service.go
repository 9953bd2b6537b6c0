package notification

import (
	"context"
)

// Service defines the notification centre of the signed-in user
type Service interface {
	List(ctx context.Context) (NotificationListResponse, error)
	ListUnread(ctx context.Context) (NotificationListResponse, error)
	UnreadCount(ctx context.Context) (UnreadCountResponse, error)
	MarkAsRead(ctx context.Context, id int64) error
	MarkAllAsRead(ctx context.Context) error
	Delete(ctx context.Context, id int64) error

	// Subscribe streams unread counts for the session key until the
	// returned cleanup is called.
	Subscribe(ctx context.Context, sessionKey string) (<-chan SSEEvent, func())

	// Refresh polls the backend for every subscribed session and
	// publishes changed counts. It is run by the scheduler.
	Refresh(ctx context.Context) error
}
