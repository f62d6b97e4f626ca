package services

import (
	"context"
	"sort"
	"sync"

	"github.com/godswillumukoro/say-yes/models"
)

// fakeStore is an in-memory Store used to exercise the like engine and the
// chat relay without DynamoDB.
type fakeStore struct {
	mu        sync.Mutex
	users     map[string]models.UserProfile
	likes     map[string]map[string]models.Like
	messages  []models.Message
	insertErr error
}

func newFakeStore(users ...models.UserProfile) *fakeStore {
	s := &fakeStore{
		users: make(map[string]models.UserProfile),
		likes: make(map[string]map[string]models.Like),
	}
	for _, u := range users {
		s.users[u.UserID] = u
	}
	return s
}

func (s *fakeStore) FindUserByID(_ context.Context, id string) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *fakeStore) InsertLikeIfAbsent(_ context.Context, likerID, likedID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.likes[likerID]
	if !ok {
		set = make(map[string]models.Like)
		s.likes[likerID] = set
	}
	if _, exists := set[likedID]; exists {
		return nil
	}
	set[likedID] = models.Like{LikerID: likerID, LikedID: likedID}
	return nil
}

func (s *fakeStore) FindLike(_ context.Context, likerID, likedID string) (*models.Like, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	like, ok := s.likes[likerID][likedID]
	if !ok {
		return nil, nil
	}
	return &like, nil
}

func (s *fakeStore) FindMutualLikes(ctx context.Context, userID string) ([]models.UserProfile, error) {
	s.mu.Lock()
	targets := make([]string, 0, len(s.likes[userID]))
	for target := range s.likes[userID] {
		targets = append(targets, target)
	}
	s.mu.Unlock()
	sort.Strings(targets)

	var matched []models.UserProfile
	for _, target := range targets {
		reciprocal, err := s.FindLike(ctx, target, userID)
		if err != nil {
			return nil, err
		}
		if reciprocal == nil {
			continue
		}
		profile, err := s.FindUserByID(ctx, target)
		if err != nil {
			continue
		}
		matched = append(matched, *profile)
	}
	return matched, nil
}

func (s *fakeStore) InsertMessage(_ context.Context, message models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.insertErr != nil {
		return s.insertErr
	}
	s.messages = append(s.messages, message)
	return nil
}

func (s *fakeStore) FindMessages(_ context.Context, conversationID string, limit int32) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Message
	for _, m := range s.messages {
		if m.ConversationID == conversationID {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt < result[j].CreatedAt
	})
	if int32(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *fakeStore) FindMessagesByParticipant(_ context.Context, userID string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Message
	for _, m := range s.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			result = append(result, m)
		}
	}
	return result, nil
}

// storedLikeCount reports how many like records exist for the pair; used to
// assert insert idempotency.
func (s *fakeStore) storedLikeCount(likerID, likedID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.likes[likerID][likedID]; ok {
		return 1
	}
	return 0
}

func (s *fakeStore) storedMessageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

type emittedEvent struct {
	name string
	args []interface{}
}

// fakeConn records everything emitted to it.
type fakeConn struct {
	mu     sync.Mutex
	id     string
	events []emittedEvent
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Emit(event string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, emittedEvent{name: event, args: args})
}

func (c *fakeConn) eventNames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.events))
	for _, e := range c.events {
		names = append(names, e.name)
	}
	return names
}

// receivedMessages returns the chat:message payloads pushed to this
// connection.
func (c *fakeConn) receivedMessages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	var messages []models.Message
	for _, e := range c.events {
		if e.name != "chat:message" || len(e.args) == 0 {
			continue
		}
		if m, ok := e.args[0].(models.Message); ok {
			messages = append(messages, m)
		}
	}
	return messages
}
