package handlers

import (
	"net/http"

	"ard/models"
	"ard/services/ads"
	"ard/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the moderation queue.
type AdminHandler struct {
	Ads ads.AdService
}

func NewAdminHandler(adSvc ads.AdService) *AdminHandler {
	return &AdminHandler{Ads: adSvc}
}

// PendingAdsHandler lists live ads still behind the moderation gate.
func (h *AdminHandler) PendingAdsHandler(c *gin.Context) {
	snapshot, err := h.Ads.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load ads", err.Error())
		return
	}
	pending := make([]models.Ad, 0)
	for _, ad := range snapshot {
		if !ad.IsApproved {
			pending = append(pending, ad)
		}
	}
	c.JSON(http.StatusOK, gin.H{"ads": pending})
}

// ReportedAdsHandler lists live ads carrying at least one report.
func (h *AdminHandler) ReportedAdsHandler(c *gin.Context) {
	snapshot, err := h.Ads.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load ads", err.Error())
		return
	}
	reported := make([]models.Ad, 0)
	for _, ad := range snapshot {
		if ad.Reports > 0 {
			reported = append(reported, ad)
		}
	}
	c.JSON(http.StatusOK, gin.H{"ads": reported})
}

// ApproveAdHandler clears the moderation gate.
func (h *AdminHandler) ApproveAdHandler(c *gin.Context) {
	if err := h.Ads.Approve(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to approve ad", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}

// DismissReportsHandler resets an ad's report counter.
func (h *AdminHandler) DismissReportsHandler(c *gin.Context) {
	if err := h.Ads.DismissReports(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to dismiss reports", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "dismissed"})
}
