package model

// ReviewSummary lists the claimed quests accepted and rejected by one review
// pass.
type ReviewSummary struct {
	Valid   []string `json:"valid"`
	Invalid []string `json:"invalid"`
}
