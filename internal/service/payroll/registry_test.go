package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/payroll"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/pkg/credential"
)

// storeSessions resolves keys straight from a credential store.
type storeSessions struct {
	store credential.Store
}

func (s storeSessions) Resolve(ctx context.Context, key string) (auth.Session, error) {
	token, err := s.store.Get(ctx, key)
	if errors.Is(err, credential.ErrNotFound) {
		return auth.Session{}, auth.ErrNotAuthenticated
	}
	if err != nil {
		return auth.Session{}, err
	}
	return auth.Session{Key: key, Credential: token, Claims: &auth.Claims{}}, nil
}

type failingSessions struct{}

func (failingSessions) Resolve(context.Context, string) (auth.Session, error) {
	return auth.Session{}, errors.New("redis: connection refused")
}

func openWizard(r *Registry, key string) *Wizard {
	employees, admins := staff()
	w := NewWizard(7, "2025-11", employees, admins)
	r.Open(key, w)
	return w
}

func TestRegistry_SweepClosesExpiredSessions(t *testing.T) {
	ctx := context.Background()
	store := credential.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "live", "token-live", time.Hour))
	require.NoError(t, store.Set(ctx, "expiring", "token-old", time.Millisecond))

	r := NewRegistry()
	live := openWizard(r, "live")
	expired := openWizard(r, "expiring")
	abandoned := openWizard(r, "never-stored")
	require.Equal(t, 3, r.Len())

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, r.Sweep(ctx, storeSessions{store: store}))

	assert.Equal(t, 1, r.Len())
	assert.False(t, live.Closed())
	assert.True(t, expired.Closed())
	assert.True(t, abandoned.Closed())

	_, err := r.Get("expiring")
	assert.ErrorIs(t, err, payroll.ErrWizardNotFound)
	got, err := r.Get("live")
	require.NoError(t, err)
	assert.Same(t, live, got)
}

func TestRegistry_SweepKeepsWizardsWhenStoreFails(t *testing.T) {
	r := NewRegistry()
	w := openWizard(r, "k")

	err := r.Sweep(context.Background(), failingSessions{})
	assert.Error(t, err)
	assert.Equal(t, 1, r.Len())
	assert.False(t, w.Closed())
}
