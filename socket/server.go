package socket

import (
	"context"
	"log"

	"github.com/godswillumukoro/say-yes/services"

	socketio "github.com/googollee/go-socket.io"
)

type authPayload struct {
	UserID string `json:"userId"`
}

type sendPayload struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

// NewSocketServer wires the realtime transport to the chat relay: the auth
// event binds a connection to a verified user, chat:send relays messages
// using the connection-bound sender identity, and disconnect cleans up the
// registry entry.
func NewSocketServer(chatService *services.ChatService) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		c.SetContext("")
		log.Println("Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "auth", func(c socketio.Conn, payload authPayload) {
		// Re-auth with a different user rebinds the connection.
		if previous, ok := c.Context().(string); ok && previous != "" {
			chatService.Disconnect(previous, c)
			c.SetContext("")
		}

		if err := chatService.AuthenticateConnection(context.Background(), c, payload.UserID); err != nil {
			log.Printf("Socket %s auth rejected: %v", c.ID(), err)
			c.Close()
			return
		}
		c.SetContext(payload.UserID)
	})

	server.OnEvent("/", "chat:send", func(c socketio.Conn, payload sendPayload) {
		userID, ok := c.Context().(string)
		if !ok || userID == "" {
			return
		}

		if _, err := chatService.SendMessage(context.Background(), userID, payload.To, payload.Text); err != nil {
			log.Printf("chat:send from %s failed: %v", userID, err)
		}
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		if userID, ok := c.Context().(string); ok && userID != "" {
			chatService.Disconnect(userID, c)
		}
		log.Println("Socket disconnected:", c.ID(), reason)
	})

	return server
}
