package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationID_OrderIndependent(t *testing.T) {
	assert.Equal(t, ConversationID("alice", "bob"), ConversationID("bob", "alice"))
	assert.Equal(t, "alice:bob", ConversationID("bob", "alice"))
}

func TestConversationID_Deterministic(t *testing.T) {
	first := ConversationID("u-42", "u-7")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ConversationID("u-42", "u-7"))
	}
}

func TestConversationID_DistinctPairs(t *testing.T) {
	assert.NotEqual(t, ConversationID("alice", "bob"), ConversationID("alice", "carol"))
}
