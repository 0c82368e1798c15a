// File: services/search/geminiClient.go
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ard/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider on top of the Gemini API, asking for a
// JSON response constrained to the {adIds, explanation} schema.
type GeminiProvider struct {
	model *genai.GenerativeModel
}

// NewGeminiProvider builds the collaborator client. An empty API key is an
// error here so the orchestrator can degrade instead of panicking mid-request.
func NewGeminiProvider(apiKey, modelName string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is not configured")
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"adIds": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "IDs of ads that match the search, sorted by relevance.",
			},
			"explanation": {
				Type:        genai.TypeString,
				Description: "A short friendly explanation of why these ads match.",
			},
		},
		Required: []string{"adIds", "explanation"},
	}
	return &GeminiProvider{model: model}, nil
}

func textPrompt(query string, adsJSON []byte) string {
	return fmt.Sprintf(`You are a local ad assistant for "ARD" in Nigeria.
The platform has ONLY 5 categories: Services, Businesses, Events, Jobs, Healthy.

User Query: %q

Ads Data: %s

Instructions:
1. Identify what category the user is looking for.
2. Rank ads by matching the query against titles, descriptions, and keywords.
3. Be culturally aware of Nigerian context.
4. Return a JSON object with 'adIds' (ordered by relevance) and a short friendly 'explanation' with a local flavor.`,
		query, adsJSON)
}

func visualPrompt(adsJSON []byte) string {
	return fmt.Sprintf(`Identify the main item or service in this image. Then, from the following list of local ads, find the most relevant matches.

Ads Data: %s

Return a JSON object with 'adIds' (ordered by visual relevance) and a short 'explanation' starting with "Based on your photo...".`,
		adsJSON)
}

// Query sends the candidates plus the text query or image to Gemini and
// decodes the constrained JSON reply.
func (g *GeminiProvider) Query(ctx context.Context, text string, image []byte, candidates []models.AdSummary) (*models.SearchResult, error) {
	adsJSON, err := json.Marshal(candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ad summaries: %w", err)
	}

	var parts []genai.Part
	if len(image) > 0 {
		parts = append(parts, genai.ImageData("jpeg", image), genai.Text(visualPrompt(adsJSON)))
	} else {
		parts = append(parts, genai.Text(textPrompt(text, adsJSON)))
	}

	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return decodeResult(sb.String())
}

// decodeResult validates that the collaborator's reply deserializes to the
// expected shape. A missing explanation defaults to an empty string; a reply
// that isn't the expected JSON object at all is a failure.
func decodeResult(raw string) (*models.SearchResult, error) {
	var result models.SearchResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("malformed search response: %w", err)
	}
	if result.AdIDs == nil {
		result.AdIDs = []string{}
	}
	return &result, nil
}
