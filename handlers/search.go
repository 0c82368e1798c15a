package handlers

import (
	"net/http"

	"ard/models"
	"ard/services/ads"
	"ard/services/search"
	"ard/utils"

	"github.com/gin-gonic/gin"
)

// SearchHandler runs AI search over the live snapshot.
type SearchHandler struct {
	Ads          ads.AdService
	Orchestrator *search.Orchestrator
}

func NewSearchHandler(adSvc ads.AdService, orch *search.Orchestrator) *SearchHandler {
	return &SearchHandler{Ads: adSvc, Orchestrator: orch}
}

// SearchAdsHandler accepts a text, voice, or image query and always returns
// a SearchResult payload, even when the AI collaborator misbehaves.
func (h *SearchHandler) SearchAdsHandler(c *gin.Context) {
	var q models.SearchQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid search payload", err.Error())
		return
	}
	switch q.Mode {
	case models.SearchModeText, models.SearchModeVoice, models.SearchModeImage:
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid search payload", "type must be text, voice, or image")
		return
	}

	snapshot, err := h.Ads.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load ads", err.Error())
		return
	}

	result := h.Orchestrator.Search(c.Request.Context(), q, snapshot)
	c.JSON(http.StatusOK, result)
}
