package models

// UserProfile defines the structure for user profiles created at onboarding
type UserProfile struct {
	UserID       string   `dynamodbav:"userId" json:"id"`                                     // ✅ Partition Key
	Name         string   `dynamodbav:"name" json:"name"`                                     // Display name
	Age          int      `dynamodbav:"age" json:"age"`                                       // User's age
	Gender       string   `dynamodbav:"gender,omitempty" json:"gender,omitempty"`             // Gender
	InterestedIn string   `dynamodbav:"interestedIn,omitempty" json:"interestedIn,omitempty"` // Preference for candidate feed
	Bio          string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`                   // Short biography
	Email        string   `dynamodbav:"email,omitempty" json:"email,omitempty"`               // Contact email
	Phone        string   `dynamodbav:"phone,omitempty" json:"phone,omitempty"`               // Contact phone
	Photos       []string `dynamodbav:"photos,omitempty" json:"photos,omitempty"`             // Ordered photo URLs
	CreatedAt    string   `dynamodbav:"createdAt" json:"createdAt"`                           // Timestamp of onboarding
}

// PublicProfile is the projection of a profile returned to other users
// (match details, candidate feed, conversation list).
type PublicProfile struct {
	UserID       string   `json:"id"`
	Name         string   `json:"name"`
	Age          int      `json:"age"`
	Gender       string   `json:"gender,omitempty"`
	InterestedIn string   `json:"interestedIn,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Photos       []string `json:"photos"`
}

// Public returns the profile projection shared with other users.
func (u UserProfile) Public() PublicProfile {
	photos := u.Photos
	if photos == nil {
		photos = []string{}
	}
	return PublicProfile{
		UserID:       u.UserID,
		Name:         u.Name,
		Age:          u.Age,
		Gender:       u.Gender,
		InterestedIn: u.InterestedIn,
		Bio:          u.Bio,
		Email:        u.Email,
		Phone:        u.Phone,
		Photos:       photos,
	}
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "Users"
