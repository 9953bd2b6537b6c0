package payroll

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
)

// SessionResolver loads the stored session of a key.
type SessionResolver interface {
	Resolve(ctx context.Context, key string) (auth.Session, error)
}

// Registry keeps the open wizard of each session.
type Registry struct {
	mu      sync.Mutex
	wizards map[string]*Wizard
}

func NewRegistry() *Registry {
	return &Registry{wizards: make(map[string]*Wizard)}
}

// Open installs w for key, closing any wizard it replaces.
func (r *Registry) Open(key string, w *Wizard) {
	r.mu.Lock()
	prev := r.wizards[key]
	r.wizards[key] = w
	r.mu.Unlock()

	if prev != nil && prev != w {
		prev.Close()
	}
}

func (r *Registry) Get(key string) (*Wizard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wizards[key]
	if !ok {
		return nil, payroll.ErrWizardNotFound
	}
	return w, nil
}

// Close discards the wizard of key. It is a no-op for unknown keys.
func (r *Registry) Close(key string) {
	r.mu.Lock()
	w := r.wizards[key]
	delete(r.wizards, key)
	r.mu.Unlock()

	if w != nil {
		w.Close()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.wizards)
}

// Discard removes w from key only if it is still the open wizard there.
func (r *Registry) Discard(key string, w *Wizard) {
	r.mu.Lock()
	if r.wizards[key] == w {
		delete(r.wizards, key)
	}
	r.mu.Unlock()
	w.Close()
}

func (r *Registry) keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.wizards))
	for k := range r.wizards {
		keys = append(keys, k)
	}
	return keys
}

// Sweep closes the wizards of sessions whose credential is gone or expired.
// Wizards are kept when the session store cannot be reached.
func (r *Registry) Sweep(ctx context.Context, sessions SessionResolver) error {
	closed := 0
	for _, key := range r.keys() {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := sessions.Resolve(ctx, key)
		switch {
		case err == nil:
		case auth.IsSessionGone(err):
			r.Close(key)
			closed++
		default:
			return err
		}
	}
	if closed > 0 {
		slog.Info("Abandoned payroll wizards closed", "count", closed, "open", r.Len())
	}
	return nil
}
