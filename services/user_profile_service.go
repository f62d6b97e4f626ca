package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/godswillumukoro/say-yes/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type UserProfileService struct {
	Dynamo *DynamoService
}

// AddUserProfile creates a new user profile at onboarding. The id and
// creation timestamp are server-assigned.
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.Name == "" || profile.Age <= 0 {
		return nil, errors.New("name and age are required")
	}

	profile.UserID = uuid.NewString()
	profile.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &profile, nil
}

// GetUserProfile retrieves a user profile by ID
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key, false)
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

// GetCandidates returns every profile except the requesting user's, newest
// first, as the swipe feed.
func (ups *UserProfileService) GetCandidates(ctx context.Context, userID string) ([]models.PublicProfile, error) {
	var profiles []models.UserProfile
	err := ups.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, func(item map[string]types.AttributeValue) bool {
		id, ok := item["userId"].(*types.AttributeValueMemberS)
		return !ok || id.Value != userID
	}, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].CreatedAt > profiles[j].CreatedAt
	})

	candidates := make([]models.PublicProfile, 0, len(profiles))
	for _, profile := range profiles {
		candidates = append(candidates, profile.Public())
	}
	return candidates, nil
}

// SetPhotos replaces a user's photo list.
func (ups *UserProfileService) SetPhotos(ctx context.Context, userID string, photos []string) (*models.UserProfile, error) {
	photoValues := make([]types.AttributeValue, 0, len(photos))
	for _, photo := range photos {
		photoValues = append(photoValues, &types.AttributeValueMemberS{Value: photo})
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	updated, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable, "SET photos = :photos", key,
		map[string]types.AttributeValue{
			":photos": &types.AttributeValueMemberL{Value: photoValues},
		}, nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set photos for %s: %w", userID, err)
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(updated, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// AddPhoto appends one photo to a user's photo list.
func (ups *UserProfileService) AddPhoto(ctx context.Context, userID, photo string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	updateExpression := "SET photos = list_append(if_not_exists(photos, :empty), :photo)"
	updated, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable, updateExpression, key,
		map[string]types.AttributeValue{
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":photo": &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberS{Value: photo}}},
		}, nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add photo for %s: %w", userID, err)
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(updated, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}
