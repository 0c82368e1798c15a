// Package insights is the read-side rollup behind the owner dashboard. It
// holds no state of its own: every call is a pure reduction over the ad
// snapshot it is handed.
package insights

import (
	"sort"

	"ard/models"
)

// Summary totals engagement across every ad owned by userID.
func Summary(snapshot []models.Ad, userID string) models.InsightsSummary {
	var sum models.InsightsSummary
	for _, ad := range snapshot {
		if ad.UserID != userID {
			continue
		}
		sum.Views += ad.Insights.Views
		sum.Whatsapp += ad.Insights.Whatsapp
		sum.Calls += ad.Insights.Calls
		sum.Socials += ad.Insights.Socials
		sum.Reviews += len(ad.Reviews)
	}
	return sum
}

// RecentReviews collects the n newest reviews across all of a user's ads,
// newest first.
func RecentReviews(snapshot []models.Ad, userID string, n int) []models.Review {
	var all []models.Review
	for _, ad := range snapshot {
		if ad.UserID == userID {
			all = append(all, ad.Reviews...)
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt > all[j].CreatedAt
	})
	if n > 0 && len(all) > n {
		all = all[:n]
	}
	return all
}
