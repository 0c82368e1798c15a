package ads

import (
	"errors"
	"fmt"

	adsRepo "ard/database/repository/ads"
	"ard/models"
)

// RecordInsight bumps the named engagement counter by one. Kinds classified
// as contacts (see models.ContactKinds) also bump the derived contacts total;
// the repository performs both increments in a single atomic write so
// concurrent recordings for the same ad never lose updates.
func (s *DefaultAdService) RecordInsight(id string, kind models.InsightKind) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown insight kind %q", kind)
	}
	err := s.Repo.IncrementInsight(id, kind, models.ContactKinds[kind])
	if errors.Is(err, adsRepo.ErrNotFound) {
		return nil
	}
	return err
}
