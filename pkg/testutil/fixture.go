package testutil

import (
	"github.com/questx-lab/nftdrop/internal/entity"
	"github.com/questx-lab/nftdrop/internal/model"
)

const (
	NFTQuestID     = "nft-drop-quest"
	AddressQuestID = "smr-address-quest"

	// Valid testnet addresses.
	Address1 = "rms1qzhz7spttwu6x26nqmuuadtc7v8ydt2hrx38hm4zgwhpeu3x2tmrg9cgutx"
	Address2 = "rms1qrqp2tcjh3wr8840xethayj3d05x7gdd5cqqf7zvafasktsy37r8s7wt79m"
	Address3 = "rms1qzy74vpzwkw6dc4kmcdwnjn5ek3rgfcwrz5yur94ffw9gkua79f7s5fztsq"
)

// Record builds a completion record with a single field submission.
func Record(id, userID string, status entity.ClaimedQuestStatus, label, value string) model.CompletionRecord {
	return model.CompletionRecord{
		ID:     id,
		UserID: userID,
		Status: status,
		Fields: []model.FieldSubmission{{Label: label, Value: value}},
	}
}
