package notice

import "time"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Action is a navigation offered to the user alongside a notice, the way a
// confirmation dialog offers "Go to Dashboard".
type Action struct {
	Title       string `json:"title,omitempty"`
	ConfirmText string `json:"confirm_text"`
	CancelText  string `json:"cancel_text"`
	Target      string `json:"target"`
}

// Notice is a toast shown to the user. Warnings and infos stay longer.
type Notice struct {
	Kind       Kind    `json:"kind"`
	Message    string  `json:"message"`
	DurationMS int64   `json:"duration_ms"`
	Action     *Action `json:"action,omitempty"`
}

func DurationFor(kind Kind) time.Duration {
	if kind == KindWarning || kind == KindInfo {
		return 7 * time.Second
	}
	return 5 * time.Second
}

func New(kind Kind, message string) Notice {
	return Notice{
		Kind:       kind,
		Message:    message,
		DurationMS: DurationFor(kind).Milliseconds(),
	}
}

func Success(message string) Notice { return New(KindSuccess, message) }
func Error(message string) Notice   { return New(KindError, message) }
func Warning(message string) Notice { return New(KindWarning, message) }
func Info(message string) Notice    { return New(KindInfo, message) }

// WithAction attaches a navigation offer.
func (n Notice) WithAction(a Action) Notice {
	n.Action = &a
	return n
}
