// File: database/repository/ads/ads_memory.go
package adsRepo

import (
	"sort"
	"sync"

	"ard/models"
)

// MemoryAdRepo is an in-process AdRepository used in development mode and in
// tests. A single mutex guards the map; insight increments therefore serialize
// the same way the mongo backend's per-document $inc does.
type MemoryAdRepo struct {
	mu  sync.RWMutex
	ads map[string]models.Ad
}

// NewMemoryAdRepo creates an empty in-memory repository.
func NewMemoryAdRepo() *MemoryAdRepo {
	return &MemoryAdRepo{ads: make(map[string]models.Ad)}
}

func (r *MemoryAdRepo) Insert(ad *models.Ad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ads[ad.ID] = *ad
	return nil
}

func (r *MemoryAdRepo) Replace(ad *models.Ad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ads[ad.ID]; !ok {
		return ErrNotFound
	}
	r.ads[ad.ID] = *ad
	return nil
}

func (r *MemoryAdRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ads[id]; !ok {
		return ErrNotFound
	}
	delete(r.ads, id)
	return nil
}

func (r *MemoryAdRepo) GetByID(id string) (*models.Ad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ad, ok := r.ads[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := cloneAd(ad)
	return &copied, nil
}

func (r *MemoryAdRepo) GetAll() ([]models.Ad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ads := make([]models.Ad, 0, len(r.ads))
	for _, ad := range r.ads {
		ads = append(ads, cloneAd(ad))
	}
	sort.SliceStable(ads, func(i, j int) bool {
		return ads[i].CreatedAt > ads[j].CreatedAt
	})
	return ads, nil
}

func (r *MemoryAdRepo) GetByUser(userID string) ([]models.Ad, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	owned := all[:0]
	for _, ad := range all {
		if ad.UserID == userID {
			owned = append(owned, ad)
		}
	}
	return owned, nil
}

func (r *MemoryAdRepo) DeleteExpired(nowMillis int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, ad := range r.ads {
		if ad.ExpiresAt <= nowMillis {
			delete(r.ads, id)
			removed++
		}
	}
	return removed, nil
}

func (r *MemoryAdRepo) IncrementInsight(id string, kind models.InsightKind, contact bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ad, ok := r.ads[id]
	if !ok {
		return ErrNotFound
	}
	switch kind {
	case models.InsightViews:
		ad.Insights.Views++
	case models.InsightCalls:
		ad.Insights.Calls++
	case models.InsightWhatsapp:
		ad.Insights.Whatsapp++
	case models.InsightSocials:
		ad.Insights.Socials++
	case models.InsightWeb:
		ad.Insights.Web++
	}
	if contact {
		ad.Insights.Contacts++
	}
	r.ads[id] = ad
	return nil
}

func (r *MemoryAdRepo) PushReview(id string, review models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ad, ok := r.ads[id]
	if !ok {
		return ErrNotFound
	}
	ad.Reviews = append([]models.Review{review}, ad.Reviews...)
	r.ads[id] = ad
	return nil
}

// cloneAd deep-copies the slices so callers can't mutate stored state.
func cloneAd(ad models.Ad) models.Ad {
	ad.Keywords = append([]string(nil), ad.Keywords...)
	ad.Images = append([]string(nil), ad.Images...)
	ad.Locations = append([]models.Location(nil), ad.Locations...)
	ad.Reviews = append([]models.Review(nil), ad.Reviews...)
	return ad
}
