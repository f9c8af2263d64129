package notify_test

import (
	"testing"

	"gallery-app/internal/infra/notify"

	"github.com/stretchr/testify/assert"
)

type countingListener struct {
	calls int
}

func (l *countingListener) CatalogChanged() { l.calls++ }

func TestHubFanOut(t *testing.T) {
	hub := notify.NewHub()

	a := &countingListener{}
	b := &countingListener{}
	hub.Subscribe(a)
	hub.Subscribe(b)

	hub.Notify()
	hub.Notify()

	assert.Equal(t, 2, a.calls)
	assert.Equal(t, 2, b.calls)
}

func TestHubNoListeners(t *testing.T) {
	hub := notify.NewHub()
	assert.NotPanics(t, func() { hub.Notify() })
}
