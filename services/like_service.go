package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/godswillumukoro/say-yes/models"
)

// LikeService records likes and derives matches. A match between A and B
// exists iff Like(A→B) and Like(B→A) both exist; it is computed from the
// Likes table on every read and never stored, so there is no second source
// of truth to drift.
type LikeService struct {
	Store Store
}

// MatchDetails carries both participants' public projections when a mutual
// match exists.
type MatchDetails struct {
	Me   models.PublicProfile `json:"me"`
	Them models.PublicProfile `json:"them"`
}

// RecordLikeAndCheckMatch processes a swipe from likerID on targetID. When
// liked is true the like is persisted (idempotently — a repeated swipe on
// the same pair never creates a second record); a pass stores nothing and is
// terminal for that candidate. Either way the reciprocal like is then
// checked and, if present, both profiles are returned as a match.
func (ls *LikeService) RecordLikeAndCheckMatch(ctx context.Context, likerID, targetID string, liked bool) (bool, *MatchDetails, error) {
	liker, err := ls.Store.FindUserByID(ctx, likerID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil, fmt.Errorf("liker %s: %w", likerID, ErrInvalidReference)
		}
		return false, nil, err
	}
	target, err := ls.Store.FindUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil, fmt.Errorf("target %s: %w", targetID, ErrInvalidReference)
		}
		return false, nil, err
	}

	if liked {
		if err := ls.Store.InsertLikeIfAbsent(ctx, likerID, targetID); err != nil {
			return false, nil, err
		}
	}

	reciprocal, err := ls.Store.FindLike(ctx, targetID, likerID)
	if err != nil {
		return false, nil, err
	}
	if reciprocal == nil {
		return false, nil, nil
	}

	log.Printf("It's a match: %s and %s", likerID, targetID)
	return true, &MatchDetails{Me: liker.Public(), Them: target.Public()}, nil
}

// GetMatch returns match details for userID and otherID if both directed
// likes exist, or nil when the pair is not matched.
func (ls *LikeService) GetMatch(ctx context.Context, userID, otherID string) (*MatchDetails, error) {
	forward, err := ls.Store.FindLike(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	reciprocal, err := ls.Store.FindLike(ctx, otherID, userID)
	if err != nil {
		return nil, err
	}
	if forward == nil || reciprocal == nil {
		return nil, nil
	}

	me, err := ls.Store.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	them, err := ls.Store.FindUserByID(ctx, otherID)
	if err != nil {
		return nil, err
	}

	return &MatchDetails{Me: me.Public(), Them: them.Public()}, nil
}

// ListMatches returns the public profiles of every user mutually liked with
// userID, recomputed from the Likes self-join.
func (ls *LikeService) ListMatches(ctx context.Context, userID string) ([]models.PublicProfile, error) {
	profiles, err := ls.Store.FindMutualLikes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for %s: %w", userID, err)
	}

	matches := make([]models.PublicProfile, 0, len(profiles))
	for _, profile := range profiles {
		matches = append(matches, profile.Public())
	}
	return matches, nil
}
