package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"pawhaven/internal/realtime"
)

// joinFrame is the first message a client sends after connecting,
// announcing which user's room it wants to subscribe to.
type joinFrame struct {
	Event  string `json:"event"`
	UserID string `json:"user_id"`
}

// WebSocketUpgrade rejects plain HTTP requests on the websocket route.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	}
}

// HandleWebSocket keeps the connection alive, subscribing it to a room
// once a valid join frame arrives. Subscriptions die with the connection.
func HandleWebSocket(hub *realtime.Hub) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		defer func() {
			hub.Unregister(c)
			c.Close()
		}()

		joined := false
		for {
			_, msg, err := c.ReadMessage()
			if err != nil {
				return
			}
			if joined {
				continue
			}

			var frame joinFrame
			if err := json.Unmarshal(msg, &frame); err != nil || frame.Event != "join" {
				continue
			}
			userID, err := uuid.Parse(frame.UserID)
			if err != nil {
				continue
			}
			hub.Register(userID, c)
			joined = true
		}
	}
}
