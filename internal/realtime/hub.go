package realtime

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Event names pushed to connected clients.
const (
	EventNewNotification  = "new-notification"
	EventNotificationRead = "notification-read"
)

// Event is a delivery instruction. UserID routes it: nil means broadcast
// to every connected session, otherwise only the sessions subscribed to
// that user's room receive it.
type Event struct {
	Name    string      `json:"event"`
	UserID  *uuid.UUID  `json:"-"`
	Payload interface{} `json:"data"`
}

// Publisher is the write-path facing side of the bridge. Publish never
// blocks; delivery is best effort.
type Publisher interface {
	Publish(ev Event)
}

// Session is a live client connection. *websocket.Conn satisfies it.
type Session interface {
	WriteMessage(messageType int, data []byte) error
}

// Hub maps user identities to their live sessions and drains a buffered
// event queue so persistence latency never waits on socket writes.
type Hub struct {
	mu       sync.RWMutex
	rooms    map[uuid.UUID]map[Session]struct{}
	sessions map[Session]uuid.UUID

	queue chan Event
}

func NewHub() *Hub {
	return &Hub{
		rooms:    make(map[uuid.UUID]map[Session]struct{}),
		sessions: make(map[Session]uuid.UUID),
		queue:    make(chan Event, 256),
	}
}

// Run drains the queue until ctx is cancelled. Call it once, from its own
// goroutine.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-h.queue:
			h.deliver(ev)
		}
	}
}

// Register subscribes a session to the room named by userID.
func (h *Hub) Register(userID uuid.UUID, s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[userID] == nil {
		h.rooms[userID] = make(map[Session]struct{})
	}
	h.rooms[userID][s] = struct{}{}
	h.sessions[s] = userID
	log.Printf("realtime: session joined room %s (%d in room)", userID, len(h.rooms[userID]))
}

// Unregister releases the session's subscription. Safe to call for a
// session that never joined.
func (h *Hub) Unregister(s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	userID, ok := h.sessions[s]
	if !ok {
		return
	}
	delete(h.sessions, s)
	if room, ok := h.rooms[userID]; ok {
		delete(room, s)
		if len(room) == 0 {
			delete(h.rooms, userID)
		}
	}
	log.Printf("realtime: session left room %s", userID)
}

// Publish queues an event without blocking. When the queue is full the
// event is dropped; offline clients catch up via polling anyway.
func (h *Hub) Publish(ev Event) {
	select {
	case h.queue <- ev:
	default:
		log.Printf("realtime: queue full, dropping %s event", ev.Name)
	}
}

func (h *Hub) deliver(ev Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		log.Printf("realtime: marshal %s event: %v", ev.Name, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if ev.UserID != nil {
		for s := range h.rooms[*ev.UserID] {
			if err := s.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Printf("realtime: write to room %s: %v", ev.UserID, err)
			}
		}
		return
	}

	for s := range h.sessions {
		if err := s.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Printf("realtime: broadcast write: %v", err)
		}
	}
}
