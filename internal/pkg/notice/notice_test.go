package notice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurations(t *testing.T) {
	assert.Equal(t, int64(5000), Success("ok").DurationMS)
	assert.Equal(t, int64(5000), Error("no").DurationMS)
	assert.Equal(t, int64(7000), Warning("careful").DurationMS)
	assert.Equal(t, int64(7000), Info("fyi").DurationMS)
}

func TestWithAction_DoesNotMutateOriginal(t *testing.T) {
	base := Warning("duplicate")
	withAction := base.WithAction(Action{ConfirmText: "Go to Dashboard", CancelText: "Close", Target: "/organization/dashboard"})

	assert.Nil(t, base.Action)
	if assert.NotNil(t, withAction.Action) {
		assert.Equal(t, "/organization/dashboard", withAction.Action.Target)
	}
	assert.Equal(t, KindWarning, withAction.Kind)
}
