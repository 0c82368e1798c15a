package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"ard/config"
	"ard/middleware"
	"ard/models"
	"ard/services/ads"
	"ard/services/carousel"
	"ard/services/feed"
	"ard/utils"

	"github.com/gin-gonic/gin"
)

// FeedHandler serves the filtered, ranked, chunked discovery feed and the
// rotation state of its carousel sessions.
type FeedHandler struct {
	Ads      ads.AdService
	Sessions *carousel.Manager
}

func NewFeedHandler(adSvc ads.AdService, sessions *carousel.Manager) *FeedHandler {
	return &FeedHandler{Ads: adSvc, Sessions: sessions}
}

// GetFeed runs the full pipeline: snapshot -> filter -> rank -> chunk, then
// opens a carousel session over the chunks.
//
// Query parameters: category, sort (distance|newest), maxDistance, lat/lng
// (consumed by the location middleware), and ids, the comma-separated
// allow-list from a prior search. A present-but-empty ids parameter means
// "search matched nothing" and legitimately yields an empty feed.
func (h *FeedHandler) GetFeed(c *gin.Context) {
	snapshot, err := h.Ads.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load ads", err.Error())
		return
	}

	loc := middleware.ViewerLocation(c)
	query := models.FeedQuery{
		Category:      models.Category(c.DefaultQuery("category", string(models.CategoryAll))),
		UserLocation:  &loc,
		MaxDistanceKm: config.AppConfig.DefaultRadiusKm,
		Sort:          models.SortOrder(c.DefaultQuery("sort", string(models.SortByDistance))),
	}
	if raw := c.Query("maxDistance"); raw != "" {
		if km, err := strconv.ParseFloat(raw, 64); err == nil {
			query.MaxDistanceKm = km
		}
	}
	if idsParam, present := c.GetQuery("ids"); present {
		query.AllowedIDs = []string{}
		if idsParam != "" {
			query.AllowedIDs = strings.Split(idsParam, ",")
		}
	}

	filtered := feed.Filter(snapshot, query)
	ranked := feed.Rank(filtered, query.Sort, query.UserLocation)
	groups := feed.Chunk(ranked, config.AppConfig.CarouselSlotSize)

	sessionID, sched := h.Sessions.Create(groups)

	decorated := make([][]models.FeedAd, 0, len(groups))
	for _, group := range groups {
		decorated = append(decorated, feed.Decorate(group, query.UserLocation))
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sessionID,
		"location":  loc,
		"total":     len(ranked),
		"groups":    decorated,
		"slots":     sched.States(),
	})
}

// GetSlots reports the current rotation state of a feed session.
func (h *FeedHandler) GetSlots(c *gin.Context) {
	sched, ok := h.Sessions.Get(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "feed session not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": sched.States()})
}

// GetCurrent returns the ad a slot is showing right now. This is a pure read;
// it never advances or pauses the slot.
func (h *FeedHandler) GetCurrent(c *gin.Context) {
	sched, ok := h.Sessions.Get(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "feed session not found", "")
		return
	}
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid slot index", err.Error())
		return
	}
	ad, ok := sched.Current(slot)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "slot not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ad": ad})
}

// PauseSlot halts one slot's rotation (viewer pressed/hovered).
func (h *FeedHandler) PauseSlot(c *gin.Context) {
	h.setSlotPaused(c, true)
}

// ResumeSlot lets a paused slot rotate again.
func (h *FeedHandler) ResumeSlot(c *gin.Context) {
	h.setSlotPaused(c, false)
}

func (h *FeedHandler) setSlotPaused(c *gin.Context, paused bool) {
	sched, ok := h.Sessions.Get(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "feed session not found", "")
		return
	}
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid slot index", err.Error())
		return
	}
	var changed bool
	if paused {
		changed = sched.Pause(slot)
	} else {
		changed = sched.Resume(slot)
	}
	if !changed {
		utils.JSONError(c, http.StatusNotFound, "slot not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": slot, "paused": paused})
}

// DropSession stops a session's timers immediately instead of waiting for
// the idle janitor.
func (h *FeedHandler) DropSession(c *gin.Context) {
	h.Sessions.Drop(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "dropped"})
}
