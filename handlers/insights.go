package handlers

import (
	"net/http"

	"ard/services/ads"
	"ard/services/insights"
	"ard/utils"

	"github.com/gin-gonic/gin"
)

const recentReviewLimit = 5

// InsightsHandler serves per-seller engagement rollups.
type InsightsHandler struct {
	Ads ads.AdService
}

func NewInsightsHandler(adSvc ads.AdService) *InsightsHandler {
	return &InsightsHandler{Ads: adSvc}
}

// UserInsightsHandler aggregates counters and recent reviews across all of a
// seller's ads, expired ones included.
func (h *InsightsHandler) UserInsightsHandler(c *gin.Context) {
	userID := c.Param("userId")
	userAds, err := h.Ads.ListByUser(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load ads", err.Error())
		return
	}
	summary := insights.Summary(userAds, userID)
	reviews := insights.RecentReviews(userAds, userID, recentReviewLimit)
	c.JSON(http.StatusOK, gin.H{
		"summary":       summary,
		"recentReviews": reviews,
	})
}
