package resolver

import (
	"strings"

	"github.com/questx-lab/nftdrop/internal/entity"
	"github.com/questx-lab/nftdrop/internal/model"
)

// Resolution is an insertion-ordered set of addresses plus the submissions
// that were dropped on the way.
type Resolution struct {
	addresses []model.ResolvedAddress
	index     map[string]struct{}
	skipped   []model.SkippedSubmission
}

func newResolution() *Resolution {
	return &Resolution{index: make(map[string]struct{})}
}

// Addresses returns the resolved addresses in first-seen order.
func (r *Resolution) Addresses() []model.ResolvedAddress {
	result := make([]model.ResolvedAddress, len(r.addresses))
	copy(result, r.addresses)
	return result
}

func (r *Resolution) Skipped() []model.SkippedSubmission {
	result := make([]model.SkippedSubmission, len(r.skipped))
	copy(result, r.skipped)
	return result
}

func (r *Resolution) Len() int {
	return len(r.addresses)
}

func (r *Resolution) Contains(address string) bool {
	_, ok := r.index[address]
	return ok
}

func (r *Resolution) add(address model.ResolvedAddress) bool {
	if r.Contains(address.Address) {
		return false
	}

	r.index[address.Address] = struct{}{}
	r.addresses = append(r.addresses, address)
	return true
}

func (r *Resolution) skip(record model.CompletionRecord, value string, reason model.SkipReason) {
	r.skipped = append(r.skipped, model.SkippedSubmission{
		RecordID: record.ID,
		UserID:   record.UserID,
		Value:    value,
		Reason:   reason,
	})
}

type Resolver struct {
	validator Validator
}

func NewResolver(validator Validator) *Resolver {
	if validator == nil {
		validator = PrefixValidator{}
	}

	return &Resolver{validator: validator}
}

// ResolveAddresses resolves with the prefix-only validator.
func ResolveAddresses(records []model.CompletionRecord, fieldLabel, networkPrefix string) *Resolution {
	return NewResolver(PrefixValidator{}).Resolve(records, fieldLabel, networkPrefix)
}

// Resolve extracts the address of every record and keeps the valid ones in
// first-seen order. Records without the field or with an invalid value are
// skipped, never rejected.
func (r *Resolver) Resolve(records []model.CompletionRecord, fieldLabel, networkPrefix string) *Resolution {
	result := newResolution()
	for _, record := range records {
		value, reason, ok := r.Extract(record, fieldLabel, networkPrefix)
		if !ok {
			result.skip(record, value, reason)
			continue
		}

		if !result.add(model.ResolvedAddress{Address: value, Prefix: networkPrefix}) {
			result.skip(record, value, model.SkipDuplicate)
		}
	}

	return result
}

// Extract returns the trimmed value of the first field labelled fieldLabel
// and whether it is an address of networkPrefix. The value is empty when the
// record has no such field.
func (r *Resolver) Extract(
	record model.CompletionRecord, fieldLabel, networkPrefix string,
) (string, model.SkipReason, bool) {
	field, ok := record.Field(fieldLabel)
	if !ok {
		return "", model.SkipMissingField, false
	}

	value := strings.TrimSpace(field.Value)
	if reason, ok := r.validator.Validate(value, networkPrefix); !ok {
		return value, reason, false
	}

	return value, "", true
}

// FilterByStatus keeps the records whose status is status, preserving order.
func FilterByStatus(records []model.CompletionRecord, status entity.ClaimedQuestStatus) []model.CompletionRecord {
	kept, _ := PartitionByStatus(records, status)
	return kept
}

// PartitionByStatus splits records into those with the given status and the
// others, both in input order.
func PartitionByStatus(
	records []model.CompletionRecord, status entity.ClaimedQuestStatus,
) ([]model.CompletionRecord, []model.CompletionRecord) {
	kept := make([]model.CompletionRecord, 0, len(records))
	excluded := []model.CompletionRecord{}
	for _, record := range records {
		if record.Status == status {
			kept = append(kept, record)
		} else {
			excluded = append(excluded, record)
		}
	}

	return kept, excluded
}

// FilterByUsers keeps the records submitted by one of userIDs.
func FilterByUsers(records []model.CompletionRecord, userIDs []string) []model.CompletionRecord {
	allowed := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		allowed[id] = struct{}{}
	}

	result := make([]model.CompletionRecord, 0, len(records))
	for _, record := range records {
		if _, ok := allowed[record.UserID]; ok {
			result = append(result, record)
		}
	}

	return result
}
