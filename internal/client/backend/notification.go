package backend

import (
	"context"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/notification"
)

func (c *Client) ListNotifications(ctx context.Context) ([]notification.Notification, error) {
	var out []notification.Notification
	err := c.get(ctx, "/notifications", nil, &out)
	return out, err
}

func (c *Client) ListUnreadNotifications(ctx context.Context) ([]notification.Notification, error) {
	var out []notification.Notification
	err := c.get(ctx, "/notifications/unread", nil, &out)
	return out, err
}

func (c *Client) UnreadNotificationCount(ctx context.Context) (int64, error) {
	var out notification.UnreadCount
	err := c.get(ctx, "/notifications/unread-count", nil, &out)
	return out.Count, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.put(ctx, pathf("/notifications/%d/mark-read", id), nil, nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.put(ctx, "/notifications/mark-all-read", nil, nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id int64) error {
	return c.delete(ctx, pathf("/notifications/%d", id), nil)
}
