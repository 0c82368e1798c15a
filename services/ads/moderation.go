package ads

import (
	"errors"
	"fmt"

	adsRepo "ard/database/repository/ads"
)

// Approve clears the moderation gate so the ad can appear in the public feed.
func (s *DefaultAdService) Approve(id string) error {
	ad, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, adsRepo.ErrNotFound) {
			return nil
		}
		return err
	}
	if ad.IsApproved {
		return nil
	}
	ad.IsApproved = true
	if err := s.Repo.Replace(ad); err != nil && !errors.Is(err, adsRepo.ErrNotFound) {
		return fmt.Errorf("failed to approve ad %s: %w", id, err)
	}
	return nil
}

// Report increments the report counter for moderator attention.
func (s *DefaultAdService) Report(id string) error {
	ad, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, adsRepo.ErrNotFound) {
			return nil
		}
		return err
	}
	ad.Reports++
	if err := s.Repo.Replace(ad); err != nil && !errors.Is(err, adsRepo.ErrNotFound) {
		return fmt.Errorf("failed to report ad %s: %w", id, err)
	}
	return nil
}

// DismissReports resets the report counter after moderator review.
func (s *DefaultAdService) DismissReports(id string) error {
	ad, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, adsRepo.ErrNotFound) {
			return nil
		}
		return err
	}
	if ad.Reports == 0 {
		return nil
	}
	ad.Reports = 0
	if err := s.Repo.Replace(ad); err != nil && !errors.Is(err, adsRepo.ErrNotFound) {
		return fmt.Errorf("failed to dismiss reports for ad %s: %w", id, err)
	}
	return nil
}
