package notification

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/client/backend"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/notification"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/sse"
)

// SessionResolver loads the stored session of a key.
type SessionResolver interface {
	Resolve(ctx context.Context, key string) (auth.Session, error)
}

type service struct {
	repo     notification.NotificationRepository
	hub      *sse.Hub
	sessions SessionResolver

	mu   sync.Mutex
	last map[string]int64
}

// NewNotificationService creates the notification centre. Unread counts are
// pushed to open streams by Refresh, which the scheduler runs on an interval.
func NewNotificationService(repo notification.NotificationRepository, hub *sse.Hub, sessions SessionResolver) notification.Service {
	return &service{
		repo:     repo,
		hub:      hub,
		sessions: sessions,
		last:     make(map[string]int64),
	}
}

func requireSession(ctx context.Context) error {
	if _, ok := auth.SessionFromContext(ctx); !ok {
		return auth.ErrNotAuthenticated
	}
	return nil
}

// List returns every notification of the signed-in user
func (s *service) List(ctx context.Context) (notification.NotificationListResponse, error) {
	if err := requireSession(ctx); err != nil {
		return notification.NotificationListResponse{}, err
	}
	items, err := s.repo.ListNotifications(ctx)
	if err != nil {
		return notification.NotificationListResponse{}, err
	}
	return notification.NewNotificationListResponse(items), nil
}

func (s *service) ListUnread(ctx context.Context) (notification.NotificationListResponse, error) {
	if err := requireSession(ctx); err != nil {
		return notification.NotificationListResponse{}, err
	}
	items, err := s.repo.ListUnreadNotifications(ctx)
	if err != nil {
		return notification.NotificationListResponse{}, err
	}
	return notification.NewNotificationListResponse(items), nil
}

func (s *service) UnreadCount(ctx context.Context) (notification.UnreadCountResponse, error) {
	if err := requireSession(ctx); err != nil {
		return notification.UnreadCountResponse{}, err
	}
	n, err := s.repo.UnreadNotificationCount(ctx)
	if err != nil {
		return notification.UnreadCountResponse{}, err
	}
	return notification.UnreadCountResponse{UnreadCount: n}, nil
}

// MarkAsRead marks one notification as read and pushes the new count
func (s *service) MarkAsRead(ctx context.Context, id int64) error {
	if err := requireSession(ctx); err != nil {
		return err
	}
	if err := s.repo.MarkNotificationRead(ctx, id); err != nil {
		return backend.NotFoundAs(err, notification.ErrNotificationNotFound)
	}
	s.push(ctx)
	return nil
}

// MarkAllAsRead marks all notifications as read for the signed-in user
func (s *service) MarkAllAsRead(ctx context.Context) error {
	if err := requireSession(ctx); err != nil {
		return err
	}
	if err := s.repo.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}
	s.push(ctx)
	return nil
}

// Delete removes a notification
func (s *service) Delete(ctx context.Context, id int64) error {
	if err := requireSession(ctx); err != nil {
		return err
	}
	if err := s.repo.DeleteNotification(ctx, id); err != nil {
		return backend.NotFoundAs(err, notification.ErrNotificationNotFound)
	}
	s.push(ctx)
	return nil
}

// push publishes the current count of the session in ctx after a change.
func (s *service) push(ctx context.Context) {
	session, _ := auth.SessionFromContext(ctx)
	if s.hub.SubscriberCount(session.Key) == 0 {
		return
	}
	if err := s.publishCount(ctx, session.Key, true); err != nil {
		slog.Warn("Failed to refresh unread count", "error", err)
	}
}

// publishCount fetches the unread count with the credential in ctx and
// publishes it when it changed or force is set.
func (s *service) publishCount(ctx context.Context, key string, force bool) error {
	n, err := s.repo.UnreadNotificationCount(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	prev, seen := s.last[key]
	s.last[key] = n
	s.mu.Unlock()

	if seen && prev == n && !force {
		return nil
	}
	s.hub.Publish(key, sse.Event{
		Event: notification.EventUnreadCount,
		Data:  notification.UnreadCountResponse{UnreadCount: n},
	})
	return nil
}

// Subscribe creates an SSE subscription for a session. The current count is
// sent first.
func (s *service) Subscribe(ctx context.Context, sessionKey string) (<-chan notification.SSEEvent, func()) {
	ch, cleanup := s.hub.Subscribe(sessionKey)

	out := make(chan notification.SSEEvent, 10)

	initial, err := s.repo.UnreadNotificationCount(ctx)
	if err != nil {
		slog.Warn("Failed to load initial unread count", "error", err)
	} else {
		s.mu.Lock()
		s.last[sessionKey] = initial
		s.mu.Unlock()
		out <- notification.SSEEvent{
			Event: notification.EventUnreadCount,
			Data:  notification.UnreadCountResponse{UnreadCount: initial},
		}
	}

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				resp, ok := event.Data.(notification.UnreadCountResponse)
				if !ok {
					continue
				}
				select {
				case out <- notification.SSEEvent{Event: event.Event, Data: resp}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() {
		cleanup()
		if s.hub.SubscriberCount(sessionKey) == 0 {
			s.mu.Lock()
			delete(s.last, sessionKey)
			s.mu.Unlock()
		}
	}
}

// Refresh polls the unread count of every session with an open stream.
// Sessions whose credential is gone or expired have their streams closed.
func (s *service) Refresh(ctx context.Context) error {
	keys := s.hub.Keys()
	var errs []error
	for _, key := range keys {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		session, err := s.sessions.Resolve(ctx, key)
		if err != nil {
			if auth.IsSessionGone(err) {
				s.hub.Close(key)
				continue
			}
			errs = append(errs, err)
			continue
		}
		if err := s.publishCount(auth.WithSession(ctx, session), key, false); err != nil {
			errs = append(errs, err)
		}
	}
	slog.Debug("Unread counts refreshed", "sessions", len(keys), "streams", s.hub.TotalSubscribers())
	return errors.Join(errs...)
}
