package entity

// NFTTransfer is one successful NFT transfer. An address appears at most once,
// which keeps later runs from sending to it again.
type NFTTransfer struct {
	Base

	Address     string `gorm:"uniqueIndex;size:128"`
	QuestID     string `gorm:"index"`
	TxID        string
	ExplorerURL string
	RunID       string `gorm:"index"`
}
