package insights

import (
	"testing"

	"ard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adFor(userID string, ins models.AdInsights, reviews ...models.Review) models.Ad {
	return models.Ad{ID: "ad-" + userID, UserID: userID, Insights: ins, Reviews: reviews}
}

func TestSummaryTotalsAcrossOwnedAds(t *testing.T) {
	snapshot := []models.Ad{
		adFor("seller", models.AdInsights{Views: 10, Calls: 2, Whatsapp: 3, Socials: 1},
			models.Review{ID: "r1", Rating: 5}),
		{ID: "ad-2", UserID: "seller", Insights: models.AdInsights{Views: 5, Calls: 1}},
		adFor("other", models.AdInsights{Views: 100}),
	}

	sum := Summary(snapshot, "seller")
	assert.Equal(t, 15, sum.Views)
	assert.Equal(t, 3, sum.Calls)
	assert.Equal(t, 3, sum.Whatsapp)
	assert.Equal(t, 1, sum.Socials)
	assert.Equal(t, 1, sum.Reviews)
}

func TestSummaryNoAdsIsZero(t *testing.T) {
	assert.Zero(t, Summary(nil, "seller"))
}

func TestRecentReviewsNewestFirstTruncated(t *testing.T) {
	var reviews []models.Review
	for i := 0; i < 8; i++ {
		reviews = append(reviews, models.Review{
			ID:        string(rune('a' + i)),
			CreatedAt: int64(i),
		})
	}
	snapshot := []models.Ad{
		{ID: "ad-1", UserID: "seller", Reviews: reviews[:4]},
		{ID: "ad-2", UserID: "seller", Reviews: reviews[4:]},
		{ID: "ad-3", UserID: "other", Reviews: []models.Review{{ID: "z", CreatedAt: 999}}},
	}

	recent := RecentReviews(snapshot, "seller", 5)
	require.Len(t, recent, 5)
	for i := 1; i < len(recent); i++ {
		assert.GreaterOrEqual(t, recent[i-1].CreatedAt, recent[i].CreatedAt)
	}
	assert.Equal(t, int64(7), recent[0].CreatedAt)
}
