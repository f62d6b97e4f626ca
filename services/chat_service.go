package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/godswillumukoro/say-yes/models"

	"github.com/google/uuid"
)

// MaxMessageLength is the message text bound in runes. Longer input is
// silently truncated, not rejected.
const MaxMessageLength = 1000

// DefaultHistoryLimit caps a conversation history fetch.
const DefaultHistoryLimit = 200

// ChatService is the chat relay: it authenticates socket connections,
// persists messages, and fans them out to every live connection of both
// participants. Delivery is best-effort and at-most-once — an offline
// recipient discovers new messages by re-fetching history.
type ChatService struct {
	Store    Store
	Registry *Registry
}

// ConversationSummary is one row of the conversation list: the peer and the
// latest message exchanged with them.
type ConversationSummary struct {
	User   models.PublicProfile `json:"user"`
	Last   string               `json:"last"`
	LastAt string               `json:"lastAt"`
}

// AuthenticateConnection binds conn to userID after verifying the user
// exists. On success the connection is registered for push delivery and
// acknowledged with auth:ok; on failure the caller must close the socket.
func (cs *ChatService) AuthenticateConnection(ctx context.Context, conn Conn, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if _, err := cs.Store.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return fmt.Errorf("user %s: %w", userID, ErrUnauthenticated)
		}
		return err
	}

	cs.Registry.Register(userID, conn)
	conn.Emit("auth:ok")
	log.Printf("Socket %s authenticated as user %s", conn.ID(), userID)
	return nil
}

// Disconnect removes conn from the user's registry entry.
func (cs *ChatService) Disconnect(userID string, conn Conn) {
	cs.Registry.Unregister(userID, conn)
	log.Printf("Socket %s for user %s disconnected", conn.ID(), userID)
}

// SendMessage persists a message from the connection-bound sender identity
// and pushes it to all live connections of sender and recipient. fromID must
// come from an authenticated connection, never from the client payload. The
// timestamp is server-assigned. Persistence happens before any push, so a
// failed push never loses data.
func (cs *ChatService) SendMessage(ctx context.Context, fromID, toID, text string) (*models.Message, error) {
	if fromID == "" {
		return nil, ErrUnauthenticated
	}
	if toID == "" || text == "" {
		return nil, errors.New("recipient and text are required")
	}
	if _, err := cs.Store.FindUserByID(ctx, toID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, fmt.Errorf("recipient %s: %w", toID, ErrInvalidReference)
		}
		return nil, err
	}

	if runes := []rune(text); len(runes) > MaxMessageLength {
		text = string(runes[:MaxMessageLength])
	}

	message := models.Message{
		ConversationID: models.ConversationID(fromID, toID),
		CreatedAt:      time.Now().UTC().Format(time.RFC3339Nano),
		MessageID:      uuid.NewString(),
		SenderID:       fromID,
		ReceiverID:     toID,
		Text:           text,
	}

	if err := cs.Store.InsertMessage(ctx, message); err != nil {
		return nil, err
	}

	// Echo to the sender's other devices and deliver to the recipient. The
	// registry is re-read here, at send time: connections may have dropped
	// since the persistence call suspended.
	cs.deliver(fromID, message)
	cs.deliver(toID, message)

	return &message, nil
}

func (cs *ChatService) deliver(userID string, message models.Message) {
	for _, conn := range cs.Registry.ConnectionsFor(userID) {
		conn.Emit("chat:message", message)
	}
}

// GetConversation returns up to limit messages between the two users,
// oldest first. Both orderings of the pair resolve to the same conversation.
func (cs *ChatService) GetConversation(ctx context.Context, userID, otherID string, limit int32) ([]models.Message, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	messages, err := cs.Store.FindMessages(ctx, models.ConversationID(userID, otherID), limit)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// GetConversationSummaries returns the user's conversations, one entry per
// peer with the latest message, newest conversations first.
func (cs *ChatService) GetConversationSummaries(ctx context.Context, userID string) ([]ConversationSummary, error) {
	messages, err := cs.Store.FindMessagesByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}

	latestByPeer := make(map[string]models.Message)
	for _, message := range messages {
		peer := message.ReceiverID
		if peer == userID {
			peer = message.SenderID
		}
		if last, ok := latestByPeer[peer]; !ok || message.CreatedAt > last.CreatedAt {
			latestByPeer[peer] = message
		}
	}

	summaries := make([]ConversationSummary, 0, len(latestByPeer))
	for peer, message := range latestByPeer {
		profile, err := cs.Store.FindUserByID(ctx, peer)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		summaries = append(summaries, ConversationSummary{
			User:   profile.Public(),
			Last:   message.Text,
			LastAt: message.CreatedAt,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastAt > summaries[j].LastAt
	})
	return summaries, nil
}
