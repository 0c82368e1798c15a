package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"ard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	result *models.SearchResult
	err    error
	block  bool

	gotText  string
	gotImage []byte
}

func (f *fakeProvider) Query(ctx context.Context, text string, image []byte, candidates []models.AdSummary) (*models.SearchResult, error) {
	f.gotText = text
	f.gotImage = image
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.result, f.err
}

type fakeTranscriber struct {
	transcript string
	err        error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte, lang string) (string, error) {
	return f.transcript, f.err
}

func newOrchestrator(p Provider, tr Transcriber) *Orchestrator {
	return &Orchestrator{
		Provider:    p,
		Transcriber: tr,
		Timeout:     200 * time.Millisecond,
	}
}

func textQuery(s string) models.SearchQuery {
	return models.SearchQuery{Mode: models.SearchModeText, Text: s}
}

func TestSearchSuccessPassthrough(t *testing.T) {
	provider := &fakeProvider{result: &models.SearchResult{
		AdIDs:       []string{"a", "b"},
		Explanation: "Found two generator repairers near you.",
	}}
	o := newOrchestrator(provider, nil)

	res := o.Search(context.Background(), textQuery("generator repair"), nil)
	assert.Equal(t, []string{"a", "b"}, res.AdIDs)
	assert.Equal(t, "generator repair", provider.gotText)
	assert.NotEmpty(t, res.Explanation)
}

func TestSearchNilProviderIsOffline(t *testing.T) {
	o := newOrchestrator(nil, nil)

	res := o.Search(context.Background(), textQuery("anything"), nil)
	assert.Empty(t, res.AdIDs)
	assert.NotNil(t, res.AdIDs, "ids must be an empty list, not null")
	assert.NotEmpty(t, res.Explanation)
}

func TestSearchProviderFailureDegrades(t *testing.T) {
	o := newOrchestrator(&fakeProvider{err: errors.New("boom")}, nil)

	res := o.Search(context.Background(), textQuery("anything"), nil)
	assert.Empty(t, res.AdIDs)
	assert.NotNil(t, res.AdIDs)
	assert.NotEmpty(t, res.Explanation)
}

func TestSearchTimeoutBoundsTheWait(t *testing.T) {
	o := newOrchestrator(&fakeProvider{block: true}, nil)

	start := time.Now()
	res := o.Search(context.Background(), textQuery("slow"), nil)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Empty(t, res.AdIDs)
	assert.NotEmpty(t, res.Explanation)
}

func TestSearchImageModeUsesVisualApology(t *testing.T) {
	o := newOrchestrator(&fakeProvider{err: errors.New("boom")}, nil)

	res := o.Search(context.Background(), models.SearchQuery{
		Mode:  models.SearchModeImage,
		Image: []byte{0xff, 0xd8},
	}, nil)
	assert.Empty(t, res.AdIDs)
	assert.Equal(t, visualApology, res.Explanation)
}

func TestSearchImagePayloadReachesProvider(t *testing.T) {
	provider := &fakeProvider{result: &models.SearchResult{AdIDs: []string{}, Explanation: "ok"}}
	o := newOrchestrator(provider, nil)

	img := []byte{0xff, 0xd8, 0xff}
	o.Search(context.Background(), models.SearchQuery{Mode: models.SearchModeImage, Image: img}, nil)
	assert.Equal(t, img, provider.gotImage)
}

func TestSearchVoiceTranscribesBeforeQuerying(t *testing.T) {
	provider := &fakeProvider{result: &models.SearchResult{AdIDs: []string{"a"}, Explanation: "ok"}}
	o := newOrchestrator(provider, &fakeTranscriber{transcript: "cold room rental"})

	res := o.Search(context.Background(), models.SearchQuery{
		Mode:  models.SearchModeVoice,
		Audio: []byte{1, 2, 3},
	}, nil)
	require.Equal(t, []string{"a"}, res.AdIDs)
	assert.Equal(t, "cold room rental", provider.gotText)
}

func TestSearchVoiceFailuresDegrade(t *testing.T) {
	provider := &fakeProvider{result: &models.SearchResult{AdIDs: []string{"a"}, Explanation: "ok"}}

	// No transcriber wired at all.
	o := newOrchestrator(provider, nil)
	res := o.Search(context.Background(), models.SearchQuery{Mode: models.SearchModeVoice}, nil)
	assert.Equal(t, voiceApology, res.Explanation)

	// Transcription itself fails.
	o = newOrchestrator(provider, &fakeTranscriber{err: errors.New("static")})
	res = o.Search(context.Background(), models.SearchQuery{Mode: models.SearchModeVoice}, nil)
	assert.Empty(t, res.AdIDs)
	assert.Equal(t, voiceApology, res.Explanation)
}

func TestDecodeResultRecoversShapeErrors(t *testing.T) {
	res, err := decodeResult(`{"adIds":null,"explanation":"nothing matched"}`)
	require.NoError(t, err)
	assert.NotNil(t, res.AdIDs)
	assert.Empty(t, res.AdIDs)

	res, err = decodeResult(`{"adIds":["x"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, res.AdIDs)
	assert.Empty(t, res.Explanation)

	_, err = decodeResult(`not json at all`)
	assert.Error(t, err)
}

func TestSummarizeCandidates(t *testing.T) {
	ads := []models.Ad{{
		ID:       "a",
		Title:    "Suya spot",
		Category: models.CategoryBusinesses,
		Keywords: []string{"suya", "grill"},
		Locations: []models.Location{
			{City: "Yaba", State: "Lagos"},
		},
	}}
	summaries := models.Summarize(ads)
	require.Len(t, summaries, 1)
	assert.Equal(t, "a", summaries[0].ID)
	assert.Equal(t, "Suya spot", summaries[0].Title)
}
