package handlers

import (
	"net/http"

	"ard/models"
	"ard/services/ads"
	"ard/utils"

	"github.com/gin-gonic/gin"
)

// AdHandler exposes the AdStore lifecycle operations.
type AdHandler struct {
	Ads ads.AdService
}

func NewAdHandler(adSvc ads.AdService) *AdHandler {
	return &AdHandler{Ads: adSvc}
}

// CreateAdHandler posts a new ad; it goes live immediately for 24 hours.
func (h *AdHandler) CreateAdHandler(c *gin.Context) {
	var input models.Ad
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	ad, err := h.Ads.Create(input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create ad", err.Error())
		return
	}
	c.JSON(http.StatusCreated, ad)
}

// GetAdHandler fetches a single ad.
func (h *AdHandler) GetAdHandler(c *gin.Context) {
	ad, err := h.Ads.Get(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch ad", err.Error())
		return
	}
	if ad == nil {
		utils.JSONError(c, http.StatusNotFound, "ad not found", "")
		return
	}
	c.JSON(http.StatusOK, ad)
}

// UpdateAdHandler edits an ad's fields. Identity, timestamps, counters and
// reviews survive the edit.
func (h *AdHandler) UpdateAdHandler(c *gin.Context) {
	var input models.Ad
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	ad, err := h.Ads.Update(c.Param("id"), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update ad", err.Error())
		return
	}
	if ad == nil {
		utils.JSONError(c, http.StatusNotFound, "ad not found", "")
		return
	}
	c.JSON(http.StatusOK, ad)
}

// DeleteAdHandler removes an ad and its insights permanently.
func (h *AdHandler) DeleteAdHandler(c *gin.Context) {
	if err := h.Ads.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete ad", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// RenewAdHandler reposts an ad for a fresh 24-hour run.
func (h *AdHandler) RenewAdHandler(c *gin.Context) {
	ad, err := h.Ads.Renew(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to renew ad", err.Error())
		return
	}
	if ad == nil {
		utils.JSONError(c, http.StatusNotFound, "ad not found", "")
		return
	}
	c.JSON(http.StatusOK, ad)
}

// ReportAdHandler flags an ad for moderator review.
func (h *AdHandler) ReportAdHandler(c *gin.Context) {
	if err := h.Ads.Report(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to report ad", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reported"})
}

// AddReviewHandler appends a review to an ad, newest first.
func (h *AdHandler) AddReviewHandler(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	saved, err := h.Ads.AddReview(c.Param("id"), review)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to add review", err.Error())
		return
	}
	if saved == nil {
		utils.JSONError(c, http.StatusNotFound, "ad not found", "")
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// RecordInsightHandler records one engagement event against an ad.
func (h *AdHandler) RecordInsightHandler(c *gin.Context) {
	kind := models.InsightKind(c.Param("kind"))
	if !kind.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "unknown insight kind", string(kind))
		return
	}
	if err := h.Ads.RecordInsight(c.Param("id"), kind); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to record insight", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

// MyAdsHandler lists everything a user owns, expired ads included so the
// owner can renew them.
func (h *AdHandler) MyAdsHandler(c *gin.Context) {
	owned, err := h.Ads.ListByUser(c.Param("userId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch ads", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ads": owned})
}
