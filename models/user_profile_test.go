package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfilePublic_NilPhotosMarshalsAsEmptyList(t *testing.T) {
	profile := UserProfile{UserID: "u1", Name: "Alice", Age: 28}

	data, err := json.Marshal(profile.Public())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"photos":[]`)
}

func TestUserProfilePublic_CarriesProfileFields(t *testing.T) {
	profile := UserProfile{
		UserID: "u1",
		Name:   "Alice",
		Age:    28,
		Bio:    "voice-first",
		Photos: []string{"https://bucket.s3.us-east-1.amazonaws.com/assets/a.jpg"},
	}

	public := profile.Public()
	assert.Equal(t, profile.UserID, public.UserID)
	assert.Equal(t, profile.Name, public.Name)
	assert.Equal(t, profile.Age, public.Age)
	assert.Equal(t, profile.Bio, public.Bio)
	assert.Equal(t, profile.Photos, public.Photos)
}
