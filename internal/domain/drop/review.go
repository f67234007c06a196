package drop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/questx-lab/nftdrop/internal/domain/quest"
	"github.com/questx-lab/nftdrop/internal/domain/resolver"
	"github.com/questx-lab/nftdrop/internal/entity"
	"github.com/questx-lab/nftdrop/internal/model"
	"github.com/questx-lab/nftdrop/pkg/xcontext"
)

// Reviewer accepts pending address submissions whose address field is a valid
// address and rejects the others, so users can fix their submission before the drop.
type Reviewer struct {
	fetcher  quest.Fetcher
	reviewer quest.Reviewer
}

func NewReviewer(fetcher quest.Fetcher, reviewer quest.Reviewer) *Reviewer {
	return &Reviewer{fetcher: fetcher, reviewer: reviewer}
}

func (r *Reviewer) Run(ctx context.Context) (*model.ReviewSummary, error) {
	cfg := xcontext.Configs(ctx)

	records, err := r.fetcher.FetchCompletions(ctx, cfg.Drop.AddressQuestID, entity.Pending)
	if err != nil {
		return nil, fmt.Errorf("fetch pending submissions: %w", err)
	}

	summary := &model.ReviewSummary{Valid: []string{}, Invalid: []string{}}
	// Accept exactly what the drop resolves.
	addressResolver := resolver.NewResolver(resolver.ChecksumValidator{})
	for _, record := range records {
		value, reason, ok := addressResolver.Extract(record, cfg.Drop.AddressField, cfg.Drop.NetworkPrefix)
		if ok {
			summary.Valid = append(summary.Valid, record.ID)
		} else {
			xcontext.Logger(ctx).Infof("Reject claimed quest %s of user %s (%s): %q",
				record.ID, record.UserID, reason, value)
			summary.Invalid = append(summary.Invalid, record.ID)
		}
	}

	invalidComment := cfg.Review.InvalidComment
	if strings.Contains(invalidComment, "%s") {
		invalidComment = fmt.Sprintf(invalidComment, cfg.Drop.NetworkPrefix)
	}

	errValid := r.reviewer.Review(ctx, summary.Valid, entity.Success, cfg.Review.ValidComment)
	if errValid != nil {
		xcontext.Logger(ctx).Errorf("Cannot accept %d claimed quests: %v", len(summary.Valid), errValid)
	}

	errInvalid := r.reviewer.Review(ctx, summary.Invalid, entity.Fail, invalidComment)
	if errInvalid != nil {
		xcontext.Logger(ctx).Errorf("Cannot reject %d claimed quests: %v", len(summary.Invalid), errInvalid)
	}

	if err := errors.Join(errValid, errInvalid); err != nil {
		return summary, err
	}

	xcontext.Logger(ctx).Infof("Reviewed %d submissions: %d valid, %d invalid",
		len(records), len(summary.Valid), len(summary.Invalid))
	return summary, nil
}
