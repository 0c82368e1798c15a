package search

import (
	"context"

	"ard/models"
)

// Provider is the external AI search collaborator: it receives the query (or
// image) plus the trimmed candidate summaries and answers with an ordered id
// list and an explanation. Any shape deviation is an error; the orchestrator
// turns every error into a recovered, user-safe result.
type Provider interface {
	Query(ctx context.Context, text string, image []byte, candidates []models.AdSummary) (*models.SearchResult, error)
}

// Transcriber converts a finalized voice clip into query text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}
