package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/fitplan/backend/internal/recommendation"
	"github.com/pageza/fitplan/backend/internal/types"
)

const DefaultLinkExpiration = 15 * time.Minute

// Snapshot is the archived form of a recommendation.
type Snapshot struct {
	UserID         uuid.UUID                     `json:"userId"`
	ArchivedAt     time.Time                     `json:"archivedAt"`
	Recommendation recommendation.Recommendation `json:"recommendation"`
}

// Archiver writes recommendation snapshots to an object store.
type Archiver struct {
	store      RecommendationArchive
	expiration time.Duration
	now        func() time.Time
}

func NewArchiver(store RecommendationArchive, expiration time.Duration) *Archiver {
	if expiration <= 0 {
		expiration = DefaultLinkExpiration
	}
	return &Archiver{
		store:      store,
		expiration: expiration,
		now:        time.Now,
	}
}

// ObjectKey is where the snapshot of a profile is stored.
func ObjectKey(userID uuid.UUID) string {
	return fmt.Sprintf("recommendations/%s.json", userID)
}

// Store overwrites the snapshot of a profile.
func (a *Archiver) Store(ctx context.Context, userID uuid.UUID, rec recommendation.Recommendation) error {
	body, err := json.Marshal(Snapshot{
		UserID:         userID,
		ArchivedAt:     a.now().UTC(),
		Recommendation: rec,
	})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := a.store.PutJSON(ctx, ObjectKey(userID), body); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

// Link returns a presigned download URL for the snapshot of a profile.
func (a *Archiver) Link(ctx context.Context, userID uuid.UUID) (*types.ExportResponse, error) {
	issued := a.now().UTC()
	url, err := a.store.GeneratePresignedURL(ctx, ObjectKey(userID), a.expiration)
	if err != nil {
		return nil, fmt.Errorf("failed to presign snapshot url: %w", err)
	}
	return &types.ExportResponse{
		URL:       url,
		ExpiresAt: issued.Add(a.expiration),
	}, nil
}
