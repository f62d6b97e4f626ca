package services

import (
	"context"
	"testing"

	"github.com/godswillumukoro/say-yes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func likeTestUsers() (models.UserProfile, models.UserProfile) {
	alice := models.UserProfile{UserID: "alice", Name: "Alice", Age: 28}
	bob := models.UserProfile{UserID: "bob", Name: "Bob", Age: 30}
	return alice, bob
}

func TestLikeService_OneSidedLikeIsNotAMatch(t *testing.T) {
	alice, bob := likeTestUsers()
	store := newFakeStore(alice, bob)
	service := &LikeService{Store: store}

	isMatch, details, err := service.RecordLikeAndCheckMatch(context.Background(), "alice", "bob", true)
	require.NoError(t, err)
	assert.False(t, isMatch)
	assert.Nil(t, details)
	assert.Equal(t, 1, store.storedLikeCount("alice", "bob"))
}

func TestLikeService_ReciprocalLikeCompletesMatch(t *testing.T) {
	alice, bob := likeTestUsers()
	store := newFakeStore(alice, bob)
	service := &LikeService{Store: store}

	_, _, err := service.RecordLikeAndCheckMatch(context.Background(), "alice", "bob", true)
	require.NoError(t, err)

	isMatch, details, err := service.RecordLikeAndCheckMatch(context.Background(), "bob", "alice", true)
	require.NoError(t, err)
	assert.True(t, isMatch)
	require.NotNil(t, details)
	assert.Equal(t, "bob", details.Me.UserID)
	assert.Equal(t, "alice", details.Them.UserID)
}

func TestLikeService_RepeatedLikeIsIdempotent(t *testing.T) {
	alice, bob := likeTestUsers()
	store := newFakeStore(alice, bob)
	service := &LikeService{Store: store}

	for i := 0; i < 3; i++ {
		_, _, err := service.RecordLikeAndCheckMatch(context.Background(), "alice", "bob", true)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, store.storedLikeCount("alice", "bob"))
}

func TestLikeService_PassStoresNothing(t *testing.T) {
	alice, bob := likeTestUsers()
	store := newFakeStore(alice, bob)
	service := &LikeService{Store: store}

	isMatch, details, err := service.RecordLikeAndCheckMatch(context.Background(), "alice", "bob", false)
	require.NoError(t, err)
	assert.False(t, isMatch)
	assert.Nil(t, details)
	assert.Equal(t, 0, store.storedLikeCount("alice", "bob"))
}

func TestLikeService_UnknownTargetIsRejected(t *testing.T) {
	alice, _ := likeTestUsers()
	store := newFakeStore(alice)
	service := &LikeService{Store: store}

	_, _, err := service.RecordLikeAndCheckMatch(context.Background(), "alice", "ghost", true)
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Equal(t, 0, store.storedLikeCount("alice", "ghost"))
}

func TestLikeService_UnknownLikerIsRejected(t *testing.T) {
	_, bob := likeTestUsers()
	store := newFakeStore(bob)
	service := &LikeService{Store: store}

	_, _, err := service.RecordLikeAndCheckMatch(context.Background(), "ghost", "bob", true)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestLikeService_GetMatch(t *testing.T) {
	alice, bob := likeTestUsers()
	store := newFakeStore(alice, bob)
	service := &LikeService{Store: store}
	ctx := context.Background()

	require.NoError(t, store.InsertLikeIfAbsent(ctx, "alice", "bob"))

	details, err := service.GetMatch(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Nil(t, details, "one-sided like must not read as a match")

	require.NoError(t, store.InsertLikeIfAbsent(ctx, "bob", "alice"))

	details, err = service.GetMatch(ctx, "alice", "bob")
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, "alice", details.Me.UserID)
	assert.Equal(t, "bob", details.Them.UserID)
}

func TestLikeService_ListMatches(t *testing.T) {
	alice, bob := likeTestUsers()
	carol := models.UserProfile{UserID: "carol", Name: "Carol", Age: 27}
	store := newFakeStore(alice, bob, carol)
	service := &LikeService{Store: store}
	ctx := context.Background()

	// alice↔bob mutual, alice→carol one-sided.
	require.NoError(t, store.InsertLikeIfAbsent(ctx, "alice", "bob"))
	require.NoError(t, store.InsertLikeIfAbsent(ctx, "bob", "alice"))
	require.NoError(t, store.InsertLikeIfAbsent(ctx, "alice", "carol"))

	matches, err := service.ListMatches(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "bob", matches[0].UserID)

	matches, err = service.ListMatches(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, matches)
}
