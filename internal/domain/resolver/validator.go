package resolver

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/questx-lab/nftdrop/config"
	"github.com/questx-lab/nftdrop/internal/model"
)

// Validator decides whether a trimmed value is an address of the network
// identified by prefix. It returns the reason when it is not.
type Validator interface {
	Validate(value, prefix string) (model.SkipReason, bool)
}

// PrefixValidator accepts any value starting with the prefix and carrying at
// least one more character.
type PrefixValidator struct{}

func (PrefixValidator) Validate(value, prefix string) (model.SkipReason, bool) {
	if !strings.HasPrefix(value, prefix) {
		return model.SkipInvalidPrefix, false
	}

	if len(value) <= len(prefix) {
		return model.SkipTooShort, false
	}

	return "", true
}

// ChecksumValidator additionally decodes the value as bech32 and requires the
// human-readable part to match the prefix.
type ChecksumValidator struct{}

func (ChecksumValidator) Validate(value, prefix string) (model.SkipReason, bool) {
	if reason, ok := (PrefixValidator{}).Validate(value, prefix); !ok {
		return reason, false
	}

	hrp, _, err := bech32.Decode(value)
	if err != nil {
		return model.SkipInvalidFormat, false
	}

	if hrp != (config.DropConfigs{NetworkPrefix: prefix}).HRP() {
		return model.SkipInvalidPrefix, false
	}

	return "", true
}

// NewValidator returns the checksum validator when verifyChecksum is set.
func NewValidator(verifyChecksum bool) Validator {
	if verifyChecksum {
		return ChecksumValidator{}
	}

	return PrefixValidator{}
}
