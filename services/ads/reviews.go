package ads

import (
	"errors"
	"fmt"

	adsRepo "ard/database/repository/ads"
	"ard/models"

	"github.com/google/uuid"
)

// AddReview stamps and prepends a review. Reviews are append-only; there is
// no edit or delete path. Returns (nil, nil) when the ad doesn't exist.
func (s *DefaultAdService) AddReview(id string, review models.Review) (*models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	review.ID = uuid.New().String()
	review.CreatedAt = nowMillis()

	if err := s.Repo.PushReview(id, review); err != nil {
		if errors.Is(err, adsRepo.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to add review to ad %s: %w", id, err)
	}
	return &review, nil
}
