package entity

import (
	"github.com/questx-lab/nftdrop/pkg/enum"
)

// ClaimedQuestStatus is the review status of a claimed quest on the quest
// platform.
type ClaimedQuestStatus string

var (
	Pending = enum.New(ClaimedQuestStatus("pending"))
	Success = enum.New(ClaimedQuestStatus("success"))
	Fail    = enum.New(ClaimedQuestStatus("fail"))
)
