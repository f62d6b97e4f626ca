package models

import "strings"

// Message is a chat message between two matched users, immutable once
// created and ordered by createdAt within its conversation.
type Message struct {
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"` // ✅ Partition Key
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`           // ✅ Sort Key (RFC3339Nano)
	MessageID      string `dynamodbav:"messageId" json:"id"`
	SenderID       string `dynamodbav:"senderId" json:"from"`
	ReceiverID     string `dynamodbav:"receiverId" json:"to"`
	Text           string `dynamodbav:"text" json:"text"`
}

// ConversationID computes the order-independent conversation key for two
// users: the sorted pair joined with ":". Both directions of a thread map
// to the same partition.
func ConversationID(a, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + ":" + b
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"

// GSI index names for looking up a user's conversations
const (
	MessageSenderIndex   = "senderId-index"   // PK: senderId
	MessageReceiverIndex = "receiverId-index" // PK: receiverId
)
