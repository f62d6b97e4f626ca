package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/godswillumukoro/say-yes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatFixture(users ...models.UserProfile) (*ChatService, *fakeStore) {
	store := newFakeStore(users...)
	return &ChatService{Store: store, Registry: NewRegistry()}, store
}

func TestChatService_AuthenticateConnection(t *testing.T) {
	service, _ := newChatFixture(models.UserProfile{UserID: "alice", Name: "Alice"})
	conn := &fakeConn{id: "c1"}

	err := service.AuthenticateConnection(context.Background(), conn, "alice")
	require.NoError(t, err)
	assert.True(t, service.Registry.IsOnline("alice"))
	assert.Equal(t, []string{"auth:ok"}, conn.eventNames())
}

func TestChatService_AuthenticateConnection_UnknownUser(t *testing.T) {
	service, _ := newChatFixture()
	conn := &fakeConn{id: "c1"}

	err := service.AuthenticateConnection(context.Background(), conn, "ghost")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.False(t, service.Registry.IsOnline("ghost"))
	assert.Empty(t, conn.eventNames())
}

func TestChatService_AuthenticateConnection_EmptyUserID(t *testing.T) {
	service, _ := newChatFixture()

	err := service.AuthenticateConnection(context.Background(), &fakeConn{id: "c1"}, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestChatService_SendMessage_DeliversToBothParticipants(t *testing.T) {
	service, store := newChatFixture(
		models.UserProfile{UserID: "alice", Name: "Alice"},
		models.UserProfile{UserID: "bob", Name: "Bob"},
	)
	ctx := context.Background()

	alicePhone := &fakeConn{id: "alice-phone"}
	aliceLaptop := &fakeConn{id: "alice-laptop"}
	bobPhone := &fakeConn{id: "bob-phone"}
	require.NoError(t, service.AuthenticateConnection(ctx, alicePhone, "alice"))
	require.NoError(t, service.AuthenticateConnection(ctx, aliceLaptop, "alice"))
	require.NoError(t, service.AuthenticateConnection(ctx, bobPhone, "bob"))

	message, err := service.SendMessage(ctx, "alice", "bob", "hey there")
	require.NoError(t, err)
	require.NotNil(t, message)

	assert.Equal(t, "alice", message.SenderID)
	assert.Equal(t, "bob", message.ReceiverID)
	assert.Equal(t, models.ConversationID("alice", "bob"), message.ConversationID)
	assert.NotEmpty(t, message.MessageID)
	_, err = time.Parse(time.RFC3339Nano, message.CreatedAt)
	assert.NoError(t, err, "timestamp must be server-assigned RFC3339Nano")

	assert.Equal(t, 1, store.storedMessageCount())

	// Every live connection of both participants sees the message, the
	// sender's other devices included.
	for _, conn := range []*fakeConn{alicePhone, aliceLaptop, bobPhone} {
		received := conn.receivedMessages()
		require.Len(t, received, 1, "connection %s", conn.ID())
		assert.Equal(t, "hey there", received[0].Text)
	}
}

func TestChatService_SendMessage_OfflineRecipientStillPersisted(t *testing.T) {
	service, store := newChatFixture(
		models.UserProfile{UserID: "alice", Name: "Alice"},
		models.UserProfile{UserID: "bob", Name: "Bob"},
	)

	message, err := service.SendMessage(context.Background(), "alice", "bob", "are you there?")
	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, 1, store.storedMessageCount())
}

func TestChatService_SendMessage_TruncatesLongText(t *testing.T) {
	service, _ := newChatFixture(
		models.UserProfile{UserID: "alice", Name: "Alice"},
		models.UserProfile{UserID: "bob", Name: "Bob"},
	)

	// Multi-byte runes: the bound is in runes, not bytes.
	text := strings.Repeat("é", MaxMessageLength+50)
	message, err := service.SendMessage(context.Background(), "alice", "bob", text)
	require.NoError(t, err)
	assert.Equal(t, MaxMessageLength, len([]rune(message.Text)))
	assert.Equal(t, strings.Repeat("é", MaxMessageLength), message.Text)
}

func TestChatService_SendMessage_Validation(t *testing.T) {
	service, store := newChatFixture(
		models.UserProfile{UserID: "alice", Name: "Alice"},
		models.UserProfile{UserID: "bob", Name: "Bob"},
	)
	ctx := context.Background()

	_, err := service.SendMessage(ctx, "", "bob", "hi")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = service.SendMessage(ctx, "alice", "", "hi")
	assert.Error(t, err)

	_, err = service.SendMessage(ctx, "alice", "bob", "")
	assert.Error(t, err)

	_, err = service.SendMessage(ctx, "alice", "ghost", "hi")
	assert.ErrorIs(t, err, ErrInvalidReference)

	assert.Equal(t, 0, store.storedMessageCount())
}

func TestChatService_SendMessage_PersistFailureDeliversNothing(t *testing.T) {
	service, store := newChatFixture(
		models.UserProfile{UserID: "alice", Name: "Alice"},
		models.UserProfile{UserID: "bob", Name: "Bob"},
	)
	ctx := context.Background()

	bobConn := &fakeConn{id: "bob-phone"}
	require.NoError(t, service.AuthenticateConnection(ctx, bobConn, "bob"))
	store.insertErr = errors.New("table unavailable")

	_, err := service.SendMessage(ctx, "alice", "bob", "hi")
	assert.Error(t, err)
	assert.Empty(t, bobConn.receivedMessages())
}

func TestChatService_Disconnect(t *testing.T) {
	service, _ := newChatFixture(models.UserProfile{UserID: "alice", Name: "Alice"})
	conn := &fakeConn{id: "c1"}
	require.NoError(t, service.AuthenticateConnection(context.Background(), conn, "alice"))

	service.Disconnect("alice", conn)
	assert.False(t, service.Registry.IsOnline("alice"))
}

func TestChatService_GetConversation(t *testing.T) {
	service, _ := newChatFixture(
		models.UserProfile{UserID: "alice", Name: "Alice"},
		models.UserProfile{UserID: "bob", Name: "Bob"},
	)
	ctx := context.Background()

	for _, text := range []string{"first", "second", "third"} {
		_, err := service.SendMessage(ctx, "alice", "bob", text)
		require.NoError(t, err)
	}

	messages, err := service.GetConversation(ctx, "alice", "bob", 0)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Text)
	assert.Equal(t, "third", messages[2].Text)

	// Both orderings of the pair resolve to the same conversation.
	reversed, err := service.GetConversation(ctx, "bob", "alice", 0)
	require.NoError(t, err)
	assert.Equal(t, messages, reversed)

	limited, err := service.GetConversation(ctx, "alice", "bob", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestChatService_GetConversation_EmptyIsNotNil(t *testing.T) {
	service, _ := newChatFixture()

	messages, err := service.GetConversation(context.Background(), "alice", "bob", 0)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestChatService_GetConversationSummaries(t *testing.T) {
	service, store := newChatFixture(
		models.UserProfile{UserID: "alice", Name: "Alice"},
		models.UserProfile{UserID: "bob", Name: "Bob"},
		models.UserProfile{UserID: "carol", Name: "Carol"},
	)
	ctx := context.Background()

	_, err := service.SendMessage(ctx, "alice", "bob", "hi bob")
	require.NoError(t, err)
	_, err = service.SendMessage(ctx, "bob", "alice", "hi alice")
	require.NoError(t, err)
	_, err = service.SendMessage(ctx, "carol", "alice", "hello from carol")
	require.NoError(t, err)

	summaries, err := service.GetConversationSummaries(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Newest conversation first, one row per peer with the latest message.
	assert.Equal(t, "carol", summaries[0].User.UserID)
	assert.Equal(t, "hello from carol", summaries[0].Last)
	assert.Equal(t, "bob", summaries[1].User.UserID)
	assert.Equal(t, "hi alice", summaries[1].Last)

	// Peers whose profile no longer exists are dropped from the list.
	store.mu.Lock()
	delete(store.users, "carol")
	store.mu.Unlock()

	summaries, err = service.GetConversationSummaries(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "bob", summaries[0].User.UserID)
}
