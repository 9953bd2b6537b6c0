package notification

import "context"

type NotificationRepository interface {
	ListNotifications(ctx context.Context) ([]Notification, error)
	ListUnreadNotifications(ctx context.Context) ([]Notification, error)
	UnreadNotificationCount(ctx context.Context) (int64, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id int64) error
}
