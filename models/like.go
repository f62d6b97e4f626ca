package models

// Like is a directed, immutable expression of interest from one user to
// another. The table key (likerId, likedId) enforces at most one Like per
// ordered pair; a mutual match is derived from the two directions and is
// never stored on its own.
type Like struct {
	LikerID   string `dynamodbav:"likerId" json:"likerId"` // ✅ Partition Key
	LikedID   string `dynamodbav:"likedId" json:"likedId"` // ✅ Sort Key
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// LikesTable is the DynamoDB table name for likes
const LikesTable = "Likes"
