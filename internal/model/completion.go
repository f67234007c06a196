package model

import "github.com/questx-lab/nftdrop/internal/entity"

// FieldSubmission is the answer a user gave to one custom question of a quest.
type FieldSubmission struct {
	Label string `mapstructure:"label" json:"label"`
	Value string `mapstructure:"value" json:"value"`
}

// CompletionRecord is one user's claim of a quest, as returned by the quest
// platform.
type CompletionRecord struct {
	ID     string                    `json:"id"`
	UserID string                    `json:"user_id"`
	Status entity.ClaimedQuestStatus `json:"status"`
	Fields []FieldSubmission         `json:"fields"`
}

// Field returns the first submission labelled label.
func (r CompletionRecord) Field(label string) (FieldSubmission, bool) {
	for _, f := range r.Fields {
		if f.Label == label {
			return f, true
		}
	}

	return FieldSubmission{}, false
}
