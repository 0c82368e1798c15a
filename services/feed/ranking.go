package feed

import (
	"sort"

	"ard/models"
	"ard/utils"
)

// Rank orders the filtered set. Distance mode sorts ascending by the minimum
// distance from the viewer to any of the ad's locations; all-locations ads
// get no privileged distance and rank by their real minimum. Without a viewer
// location, distance mode silently falls back to newest. Both modes are
// stable: equal keys keep their pre-sort relative order.
func Rank(ads []models.Ad, order models.SortOrder, userLocation *models.Location) []models.Ad {
	ranked := append([]models.Ad(nil), ads...)

	if order == models.SortByDistance && userLocation != nil {
		user := userLocation.Coordinate()
		dist := make(map[string]float64, len(ranked))
		for _, ad := range ranked {
			dist[ad.ID] = utils.MinDistance(user, ad.Locations)
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			return dist[ranked[i].ID] < dist[ranked[j].ID]
		})
		return ranked
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CreatedAt > ranked[j].CreatedAt
	})
	return ranked
}

// Decorate computes the display distance and card labels for each ranked ad.
// All-locations ads report 0 and the national flag so the presentation layer
// renders "National" instead of a number.
func Decorate(ads []models.Ad, userLocation *models.Location) []models.FeedAd {
	out := make([]models.FeedAd, 0, len(ads))
	for _, ad := range ads {
		item := models.FeedAd{
			Ad:        ad,
			National:  ad.IsAllLocations,
			PostedAgo: utils.TimeAgo(ad.CreatedAt),
			ExpiresIn: utils.ExpiresIn(ad.ExpiresAt),
		}
		switch {
		case ad.IsAllLocations:
			item.DistanceLabel = "National"
		case userLocation != nil:
			item.DistanceKm = utils.MinDistance(userLocation.Coordinate(), ad.Locations)
			item.DistanceLabel = utils.FormatDistance(item.DistanceKm)
		}
		out = append(out, item)
	}
	return out
}
