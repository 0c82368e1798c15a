// Package feed is the pure read side of the discovery engine: it narrows an
// ad snapshot through the filter stages, ranks what survives, and chunks the
// ranked result into carousel groups. Nothing here mutates the snapshot, so
// concurrent callers are safe as long as each captures its own snapshot.
package feed

import (
	"time"

	"ard/config"
	"ard/models"
	"ard/utils"
)

// Filter narrows the snapshot through the pipeline stages in order:
// visibility, search allow-list, category, radius. Later stages run against
// the smallest possible set.
// The output preserves snapshot order but carries no ranking guarantee.
func Filter(snapshot []models.Ad, q models.FeedQuery) []models.Ad {
	now := time.Now().UnixMilli()

	result := make([]models.Ad, 0, len(snapshot))
	for _, ad := range snapshot {
		if ad.WellFormed() && ad.Visible(now) {
			result = append(result, ad)
		}
	}

	if q.AllowedIDs != nil {
		allowed := make(map[string]bool, len(q.AllowedIDs))
		for _, id := range q.AllowedIDs {
			allowed[id] = true
		}
		kept := result[:0]
		for _, ad := range result {
			if allowed[ad.ID] {
				kept = append(kept, ad)
			}
		}
		result = kept
	}

	if q.Category != "" && q.Category != models.CategoryAll {
		kept := result[:0]
		for _, ad := range result {
			if ad.Category == q.Category {
				kept = append(kept, ad)
			}
		}
		result = kept
	}

	if q.UserLocation != nil && q.MaxDistanceKm < config.AppConfig.MaxRadiusKm {
		user := q.UserLocation.Coordinate()
		kept := result[:0]
		for _, ad := range result {
			if ad.IsAllLocations || withinRadius(user, ad.Locations, q.MaxDistanceKm) {
				kept = append(kept, ad)
			}
		}
		result = kept
	}

	return result
}

// withinRadius reports whether any of the ad's locations is at or inside the
// radius. The boundary is inclusive.
func withinRadius(user models.Coordinate, locations []models.Location, maxKm float64) bool {
	for _, loc := range locations {
		if utils.Distance(user, loc.Coordinate()) <= maxKm {
			return true
		}
	}
	return false
}
