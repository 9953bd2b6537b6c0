package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_PublishReachesOnlyKey(t *testing.T) {
	h := NewHub()
	a, cleanupA := h.Subscribe("a")
	defer cleanupA()
	b, cleanupB := h.Subscribe("b")
	defer cleanupB()

	h.Publish("a", Event{Event: "unread_count", Data: 3})

	got := <-a
	assert.Equal(t, "a", got.Key)
	assert.Equal(t, 3, got.Data)
	assert.Empty(t, b)
}

func TestHub_PublishSkipsFullStream(t *testing.T) {
	h := NewHub()
	ch, cleanup := h.Subscribe("a")
	defer cleanup()

	for i := 0; i < 20; i++ {
		h.Publish("a", Event{Event: "tick", Data: i})
	}

	assert.Len(t, ch, 10)
}

func TestHub_CloseThenCleanup(t *testing.T) {
	h := NewHub()
	ch, cleanup := h.Subscribe("a")
	_, other := h.Subscribe("a")

	assert.Equal(t, []string{"a"}, h.Keys())
	assert.Equal(t, 2, h.SubscriberCount("a"))

	h.Close("a")
	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, h.TotalSubscribers())

	assert.NotPanics(t, cleanup)
	assert.NotPanics(t, other)
	assert.NotPanics(t, cleanup)
}

func TestHub_CleanupRemovesKey(t *testing.T) {
	h := NewHub()
	_, cleanup := h.Subscribe("a")

	cleanup()

	assert.Empty(t, h.Keys())
}
