package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	mu     sync.Mutex
	frames [][]byte
	got    chan struct{}
}

func newFakeSession() *fakeSession {
	return &fakeSession{got: make(chan struct{}, 16)}
}

func (s *fakeSession) WriteMessage(_ int, data []byte) error {
	s.mu.Lock()
	s.frames = append(s.frames, append([]byte(nil), data...))
	s.mu.Unlock()
	s.got <- struct{}{}
	return nil
}

func (s *fakeSession) received() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.frames...)
}

func (s *fakeSession) wait(t *testing.T) {
	t.Helper()
	select {
	case <-s.got:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for frame")
	}
}

func TestDeliverTargetsOnlyOwnerRoom(t *testing.T) {
	hub := NewHub()

	owner := uuid.New()
	other := uuid.New()
	ownerSess := newFakeSession()
	otherSess := newFakeSession()
	hub.Register(owner, ownerSess)
	hub.Register(other, otherSess)

	hub.deliver(Event{
		Name:    EventNewNotification,
		UserID:  &owner,
		Payload: map[string]string{"title": "Hi"},
	})

	require.Len(t, ownerSess.received(), 1)
	assert.Empty(t, otherSess.received())

	var frame struct {
		Event string            `json:"event"`
		Data  map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(ownerSess.received()[0], &frame))
	assert.Equal(t, EventNewNotification, frame.Event)
	assert.Equal(t, "Hi", frame.Data["title"])
}

func TestDeliverBroadcastReachesEverySession(t *testing.T) {
	hub := NewHub()

	s1 := newFakeSession()
	s2 := newFakeSession()
	hub.Register(uuid.New(), s1)
	hub.Register(uuid.New(), s2)

	hub.deliver(Event{Name: EventNewNotification, Payload: "shelter news"})

	assert.Len(t, s1.received(), 1)
	assert.Len(t, s2.received(), 1)
}

func TestUnregisterStopsDelivery(t *testing.T) {
	hub := NewHub()

	owner := uuid.New()
	sess := newFakeSession()
	hub.Register(owner, sess)
	hub.Unregister(sess)

	hub.deliver(Event{Name: EventNotificationRead, UserID: &owner})
	hub.deliver(Event{Name: EventNewNotification})

	assert.Empty(t, sess.received())
	assert.Empty(t, hub.rooms)
	assert.Empty(t, hub.sessions)
}

func TestUnregisterUnknownSessionIsNoop(t *testing.T) {
	hub := NewHub()
	hub.Unregister(newFakeSession())
}

func TestSharedRoomDeliversToAllOwnerSessions(t *testing.T) {
	hub := NewHub()

	owner := uuid.New()
	tab1 := newFakeSession()
	tab2 := newFakeSession()
	hub.Register(owner, tab1)
	hub.Register(owner, tab2)

	hub.deliver(Event{Name: EventNewNotification, UserID: &owner})

	assert.Len(t, tab1.received(), 1)
	assert.Len(t, tab2.received(), 1)

	hub.Unregister(tab1)
	hub.deliver(Event{Name: EventNewNotification, UserID: &owner})

	assert.Len(t, tab1.received(), 1)
	assert.Len(t, tab2.received(), 2)
}

func TestRunDrainsPublishedEvents(t *testing.T) {
	hub := NewHub()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	owner := uuid.New()
	sess := newFakeSession()
	hub.Register(owner, sess)

	hub.Publish(Event{Name: EventNewNotification, UserID: &owner, Payload: "first"})
	hub.Publish(Event{Name: EventNotificationRead, UserID: &owner, Payload: "second"})

	sess.wait(t)
	sess.wait(t)
	assert.Len(t, sess.received(), 2)
}

func TestPublishDropsWhenQueueFull(t *testing.T) {
	hub := NewHub()

	// No Run goroutine draining, so the buffer eventually fills. Publish
	// must keep returning immediately instead of blocking the caller.
	done := make(chan struct{})
	go func() {
		for i := 0; i < cap(hub.queue)+10; i++ {
			hub.Publish(Event{Name: EventNewNotification})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
	assert.Len(t, hub.queue, cap(hub.queue))
}
