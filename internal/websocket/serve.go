package websocket

import (
	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
)

// UpgradeRequired is route middleware that rejects plain HTTP requests to the
// WebSocket endpoint. gofiber/websocket panics on non-upgrade requests, so this
// gate turns them into a 426 Upgrade Required instead.
func UpgradeRequired(c *fiber.Ctx) error {
	if fiberws.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// ServeMatch returns the connection handler for GET /ws/matches/:id.
// Each connection becomes a Client subscribed to that match's broadcasts:
// every chukker snapshot appended over the REST API is pushed to it as a
// JSON text frame. The stream is one-way — anything the client sends is
// ignored, but reading is how we learn the connection closed.
func ServeMatch(hub *Hub) fiber.Handler {
	return fiberws.New(func(conn *fiberws.Conn) {
		client := &Client{
			MatchID: conn.Params("id"),
			Send:    make(chan []byte, 64),
		}
		hub.Register(client)

		// Writer: drain the Send channel onto the socket. The Hub closes
		// Send when it drops the client, which ends the range; closing the
		// socket then unblocks the read loop below.
		go func() {
			for data := range client.Send {
				if err := conn.WriteMessage(fiberws.TextMessage, data); err != nil {
					break
				}
			}
			conn.Close()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		hub.Unregister(client)
	})
}
