package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godswillumukoro/say-yes/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Store is the persistence surface consumed by the like engine and the chat
// relay. FindLike must observe writes already committed through
// InsertLikeIfAbsent, including writes made by a concurrent reciprocal call.
type Store interface {
	FindUserByID(ctx context.Context, id string) (*models.UserProfile, error)
	InsertLikeIfAbsent(ctx context.Context, likerID, likedID string) error
	FindLike(ctx context.Context, likerID, likedID string) (*models.Like, error)
	FindMutualLikes(ctx context.Context, userID string) ([]models.UserProfile, error)
	InsertMessage(ctx context.Context, message models.Message) error
	FindMessages(ctx context.Context, conversationID string, limit int32) ([]models.Message, error)
	FindMessagesByParticipant(ctx context.Context, userID string) ([]models.Message, error)
}

// DynamoStore implements Store on top of the shared DynamoService wrapper.
type DynamoStore struct {
	Dynamo *DynamoService
}

// FindUserByID retrieves a user profile, or ErrUserNotFound.
func (s *DynamoStore) FindUserByID(ctx context.Context, id string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: id},
	}

	item, err := s.Dynamo.GetItem(ctx, models.UserProfilesTable, key, false)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrUserNotFound
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// InsertLikeIfAbsent records Like(likerId→likedId) as a set-insert: a
// duplicate pair leaves the original record untouched and reports success.
func (s *DynamoStore) InsertLikeIfAbsent(ctx context.Context, likerID, likedID string) error {
	like := models.Like{
		LikerID:   likerID,
		LikedID:   likedID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}

	err := s.Dynamo.PutItemIfAbsent(ctx, models.LikesTable, like, "likerId")
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			// Pair already recorded; the insert is idempotent.
			return nil
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

// FindLike returns the directed like for the pair, or (nil, nil) when it
// does not exist. The read is strongly consistent: a reciprocal like
// committed a moment ago must be visible here.
func (s *DynamoStore) FindLike(ctx context.Context, likerID, likedID string) (*models.Like, error) {
	key := map[string]types.AttributeValue{
		"likerId": &types.AttributeValueMemberS{Value: likerID},
		"likedId": &types.AttributeValueMemberS{Value: likedID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.LikesTable, key, true)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var like models.Like
	if err := attributevalue.UnmarshalMap(item, &like); err != nil {
		return nil, fmt.Errorf("failed to unmarshal like: %w", err)
	}
	return &like, nil
}

// FindMutualLikes computes the user's matches as a self-join over Likes:
// every target the user liked, filtered to targets that liked back. Matches
// are never materialized, so this is recomputed on every read.
func (s *DynamoStore) FindMutualLikes(ctx context.Context, userID string) ([]models.UserProfile, error) {
	keyCondition := "likerId = :likerId"
	expressionValues := map[string]types.AttributeValue{
		":likerId": &types.AttributeValueMemberS{Value: userID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.LikesTable, keyCondition, expressionValues, nil, 1000)
	if err != nil {
		return nil, fmt.Errorf("failed to query likes for %s: %w", userID, err)
	}

	var likes []models.Like
	if err := attributevalue.UnmarshalListOfMaps(items, &likes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal likes: %w", err)
	}

	var matched []models.UserProfile
	for _, like := range likes {
		reciprocal, err := s.FindLike(ctx, like.LikedID, userID)
		if err != nil {
			return nil, err
		}
		if reciprocal == nil {
			continue
		}

		profile, err := s.FindUserByID(ctx, like.LikedID)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		matched = append(matched, *profile)
	}

	return matched, nil
}

// InsertMessage stores a message in its conversation partition.
func (s *DynamoStore) InsertMessage(ctx context.Context, message models.Message) error {
	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}
	return nil
}

// FindMessages returns up to limit messages of a conversation, oldest first.
func (s *DynamoStore) FindMessages(ctx context.Context, conversationID string, limit int32) ([]models.Message, error) {
	keyCondition := "conversationId = :conversationId"
	expressionValues := map[string]types.AttributeValue{
		":conversationId": &types.AttributeValueMemberS{Value: conversationID},
	}

	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, nil, limit, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}
	return messages, nil
}

// FindMessagesByParticipant returns every message the user sent or received,
// via the senderId and receiverId GSIs. Used for the conversation list.
func (s *DynamoStore) FindMessagesByParticipant(ctx context.Context, userID string) ([]models.Message, error) {
	var all []models.Message

	queries := []struct {
		index     string
		attribute string
	}{
		{models.MessageSenderIndex, "senderId"},
		{models.MessageReceiverIndex, "receiverId"},
	}

	for _, q := range queries {
		keyCondition := fmt.Sprintf("%s = :userId", q.attribute)
		expressionValues := map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		}

		items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.MessagesTable, q.index, keyCondition, expressionValues, nil, 1000)
		if err != nil {
			return nil, fmt.Errorf("failed to query %s: %w", q.index, err)
		}

		var messages []models.Message
		if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse messages: %w", err)
		}
		all = append(all, messages...)
	}

	return all, nil
}
