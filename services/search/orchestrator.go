// File: services/search/orchestrator.go
package search

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"ard/models"
	"ard/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// User-facing copy for recovered failures. Search never surfaces a technical
// error; the feed just shows zero matches plus one of these.
const (
	offlineApology = "Oga, the AI search is currently offline. Please check the platform settings."
	searchApology  = "Oga/Madam, the AI search had a small issue. Please check your connection and try again!"
	visualApology  = "We couldn't process your photo right now. Please check your signal and try again."
	voiceApology   = "We couldn't hear that clearly. Please try speaking again!"
)

// Orchestrator dispatches a search in any modality to the AI collaborator,
// bounds the wait, and degrades every failure into a usable SearchResult.
type Orchestrator struct {
	Provider    Provider
	Transcriber Transcriber
	// Cache is optional; resolved results are cached briefly so repeated
	// identical queries skip the collaborator.
	Cache    *redis.Client
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Search resolves a query against the current snapshot. It always returns a
// usable result within the configured timeout bound, never an error: failure
// of any kind (missing credentials, network, malformed reply, timeout) comes
// back as empty ids plus an apologetic explanation.
func (o *Orchestrator) Search(ctx context.Context, q models.SearchQuery, snapshot []models.Ad) models.SearchResult {
	logger := utils.GetLogger()

	if o.Provider == nil {
		return models.SearchResult{AdIDs: []string{}, Explanation: offlineApology}
	}

	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	text := q.Text
	if q.Mode == models.SearchModeVoice {
		if o.Transcriber == nil {
			return models.SearchResult{AdIDs: []string{}, Explanation: voiceApology}
		}
		transcript, err := o.Transcriber.Transcribe(ctx, q.Audio, q.Lang)
		if err != nil {
			logger.Warn("voice transcription failed", zap.Error(err))
			return models.SearchResult{AdIDs: []string{}, Explanation: voiceApology}
		}
		text = transcript
	}

	key := o.cacheKey(q.Mode, text, q.Image)
	if cached := o.fromCache(ctx, key); cached != nil {
		return *cached
	}

	var image []byte
	if q.Mode == models.SearchModeImage {
		image = q.Image
	}

	result, err := o.Provider.Query(ctx, text, image, models.Summarize(snapshot))
	if err != nil {
		logger.Warn("search collaborator failure",
			zap.String("mode", string(q.Mode)),
			zap.Error(err))
		apology := searchApology
		if q.Mode == models.SearchModeImage {
			apology = visualApology
		}
		return models.SearchResult{AdIDs: []string{}, Explanation: apology}
	}

	o.toCache(ctx, key, result)
	return *result
}

func (o *Orchestrator) cacheKey(mode models.SearchMode, text string, image []byte) string {
	h := sha256.New()
	h.Write([]byte(mode))
	h.Write([]byte{0})
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write(image)
	return fmt.Sprintf("search:%x", h.Sum(nil))
}

func (o *Orchestrator) fromCache(ctx context.Context, key string) *models.SearchResult {
	if o.Cache == nil {
		return nil
	}
	raw, err := o.Cache.Get(ctx, key).Result()
	if err != nil || raw == "" {
		return nil
	}
	var result models.SearchResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil
	}
	return &result
}

func (o *Orchestrator) toCache(ctx context.Context, key string, result *models.SearchResult) {
	if o.Cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	// Best effort; a cache miss next time is fine.
	_ = o.Cache.Set(ctx, key, raw, o.CacheTTL).Err()
}
