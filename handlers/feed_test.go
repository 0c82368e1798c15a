package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ard/config"
	adsRepo "ard/database/repository/ads"
	"ard/middleware"
	"ard/models"
	"ard/services/ads"
	"ard/services/carousel"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.LoadConfig()
	m.Run()
}

func newFeedRouter(t *testing.T) (*gin.Engine, *adsRepo.MemoryAdRepo) {
	t.Helper()
	repo := adsRepo.NewMemoryAdRepo()
	svc := &ads.DefaultAdService{Repo: repo}
	manager := carousel.NewManager(carousel.Config{MinPeriod: time.Hour, MaxPeriod: time.Hour}, time.Minute)
	t.Cleanup(manager.Close)
	h := NewFeedHandler(svc, manager)

	r := gin.New()
	api := r.Group("/api/feed")
	api.Use(middleware.ViewerLocationMiddleware())
	api.GET("", h.GetFeed)
	api.GET("/session/:id/slots", h.GetSlots)
	api.PUT("/session/:id/slots/:slot/pause", h.PauseSlot)
	api.DELETE("/session/:id", h.DropSession)
	return r, repo
}

func seedAds(t *testing.T, repo *adsRepo.MemoryAdRepo, n int, loc models.Location) {
	t.Helper()
	now := time.Now().UnixMilli()
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Insert(&models.Ad{
			ID:         fmt.Sprintf("ad-%d", i),
			Title:      fmt.Sprintf("Ad %d", i),
			Category:   models.CategoryServices,
			Locations:  []models.Location{loc},
			CreatedAt:  now - int64(i),
			ExpiresAt:  now + time.Hour.Milliseconds(),
			IsApproved: true,
		}))
	}
}

type feedResponse struct {
	SessionID string            `json:"sessionId"`
	Location  models.Location   `json:"location"`
	Total     int               `json:"total"`
	Groups    [][]models.FeedAd `json:"groups"`
	Slots     []models.SlotState `json:"slots"`
}

func getFeed(t *testing.T, r *gin.Engine, path string) feedResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "127.0.0.1:55555" // keep the IP geolocation lookup offline
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp feedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetFeedChunksAndOpensSession(t *testing.T) {
	r, repo := newFeedRouter(t)
	lagos := models.Location{Lat: 6.5244, Lng: 3.3792, City: "Lagos Island", State: "Lagos"}
	seedAds(t, repo, 13, lagos)

	resp := getFeed(t, r, "/api/feed?lat=6.5244&lng=3.3792")
	assert.Equal(t, 13, resp.Total)
	require.Len(t, resp.Groups, 3)
	assert.Len(t, resp.Groups[0], 6)
	assert.Len(t, resp.Groups[2], 1)
	assert.NotEmpty(t, resp.SessionID)
	assert.Len(t, resp.Slots, 3)
}

func TestGetFeedFallsBackToDefaultCity(t *testing.T) {
	r, repo := newFeedRouter(t)
	seedAds(t, repo, 1, models.Location{Lat: 6.5244, Lng: 3.3792, City: "Lagos Island", State: "Lagos"})

	resp := getFeed(t, r, "/api/feed")
	assert.Equal(t, config.AppConfig.DefaultCity, resp.Location.City)
	assert.Equal(t, 1, resp.Total)
}

func TestGetFeedEmptyIdsParamMeansNoMatches(t *testing.T) {
	r, repo := newFeedRouter(t)
	seedAds(t, repo, 3, models.Location{Lat: 6.5244, Lng: 3.3792, City: "Lagos Island", State: "Lagos"})

	// No ids parameter: no search active.
	resp := getFeed(t, r, "/api/feed?lat=6.5244&lng=3.3792")
	assert.Equal(t, 3, resp.Total)

	// Present but empty: search matched nothing.
	resp = getFeed(t, r, "/api/feed?lat=6.5244&lng=3.3792&ids=")
	assert.Zero(t, resp.Total)

	// Explicit allow-list narrows the feed.
	resp = getFeed(t, r, "/api/feed?lat=6.5244&lng=3.3792&ids=ad-1,ad-2")
	assert.Equal(t, 2, resp.Total)
}

func TestFeedSessionSlotOperations(t *testing.T) {
	r, repo := newFeedRouter(t)
	seedAds(t, repo, 7, models.Location{Lat: 6.5244, Lng: 3.3792, City: "Lagos Island", State: "Lagos"})

	resp := getFeed(t, r, "/api/feed?lat=6.5244&lng=3.3792")
	base := "/api/feed/session/" + resp.SessionID

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, base+"/slots/0/pause", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, base+"/slots", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var slots struct {
		Slots []models.SlotState `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	require.NotEmpty(t, slots.Slots)
	assert.True(t, slots.Slots[0].Paused)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, base, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, base+"/slots", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFeedUnknownSession(t *testing.T) {
	r, _ := newFeedRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/feed/session/nope/slots", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
