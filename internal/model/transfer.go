package model

// TransferResult is the outcome of one transfer attempt.
type TransferResult struct {
	Address string `json:"address"`
	Success bool   `json:"success"`
	Err     string `json:"error,omitempty"`
	TxID    string `json:"tx_id,omitempty"`
}

// DropSummary is what one drop run did.
type DropSummary struct {
	RunID   string              `json:"run_id"`
	Winners int                 `json:"winners"`
	Results []TransferResult    `json:"results"`
	Skipped []SkippedSubmission `json:"skipped"`
}

func (s DropSummary) Failed() []TransferResult {
	var failed []TransferResult
	for _, r := range s.Results {
		if !r.Success {
			failed = append(failed, r)
		}
	}

	return failed
}
