package notification

import "errors"

// Notification domain errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrStreamUnsupported    = errors.New("streaming is not supported by this connection")
)
