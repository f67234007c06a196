package model

// ResolvedAddress is a validated destination address together with the
// network prefix it was validated against.
type ResolvedAddress struct {
	Address string `json:"address"`
	Prefix  string `json:"prefix"`
}

type SkipReason string

const (
	SkipMissingField  SkipReason = "missing_field"
	SkipInvalidPrefix SkipReason = "invalid_prefix"
	SkipTooShort      SkipReason = "too_short"
	SkipInvalidFormat SkipReason = "invalid_format"
	SkipDuplicate     SkipReason = "duplicate"
	SkipStatus        SkipReason = "status"
	SkipNotWinner     SkipReason = "not_winner"
	SkipAlreadySent   SkipReason = "already_sent"
)

// SkippedSubmission describes a record that produced no address. Skips are
// not errors; they are kept so an operator can review them.
type SkippedSubmission struct {
	RecordID string     `json:"record_id"`
	UserID   string     `json:"user_id"`
	Value    string     `json:"value"`
	Reason   SkipReason `json:"reason"`
}
