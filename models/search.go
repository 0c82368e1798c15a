package models

// SearchMode distinguishes the payload encodings of a search request. Voice
// and visual search share the ranking path with text; only the payload differs.
type SearchMode string

const (
	SearchModeText  SearchMode = "text"
	SearchModeVoice SearchMode = "voice"
	SearchModeImage SearchMode = "image"
)

// SearchQuery is one user search in any modality.
type SearchQuery struct {
	Mode  SearchMode `json:"type"`
	Text  string     `json:"query,omitempty"`    // typed text
	Audio []byte     `json:"audio,omitempty"`    // finalized voice clip (WAV)
	Image []byte     `json:"image,omitempty"`    // JPEG bytes
	Lang  string     `json:"language,omitempty"` // BCP-47 hint for transcription
}

// SearchResult is the normalized answer from the AI search collaborator.
// AdIDs may reference expired or deleted ads; the filter pipeline intersects
// them against the live snapshot.
type SearchResult struct {
	AdIDs       []string `json:"adIds"`
	Explanation string   `json:"explanation"`
}

// AdSummary is the trimmed, searchable projection of an ad that gets shipped
// to the collaborator. Nothing else about the ad leaves the engine.
type AdSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Keywords    []string `json:"keywords"`
	Cities      string   `json:"cities"`
}

// Summarize projects a snapshot into collaborator-safe summaries.
func Summarize(ads []Ad) []AdSummary {
	summaries := make([]AdSummary, 0, len(ads))
	for _, ad := range ads {
		cities := ""
		for i, loc := range ad.Locations {
			if i > 0 {
				cities += ", "
			}
			cities += loc.City
		}
		summaries = append(summaries, AdSummary{
			ID:          ad.ID,
			Title:       ad.Title,
			Description: ad.Description,
			Category:    ad.Category,
			Keywords:    ad.Keywords,
			Cities:      cities,
		})
	}
	return summaries
}
