package drop

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/questx-lab/nftdrop/internal/common"
	"github.com/questx-lab/nftdrop/internal/domain/dispatcher"
	"github.com/questx-lab/nftdrop/internal/domain/quest"
	"github.com/questx-lab/nftdrop/internal/domain/resolver"
	"github.com/questx-lab/nftdrop/internal/entity"
	"github.com/questx-lab/nftdrop/internal/model"
	"github.com/questx-lab/nftdrop/internal/repository"
	"github.com/questx-lab/nftdrop/pkg/enum"
	"github.com/questx-lab/nftdrop/pkg/errorx"
	"github.com/questx-lab/nftdrop/pkg/xcontext"
)

// Pipeline runs one drop: fetch the winners, resolve their addresses and
// send one NFT to every address which never received one.
type Pipeline struct {
	fetcher         quest.Fetcher
	transferer      dispatcher.Transferer
	nftTransferRepo repository.NFTTransferRepository
	reporter        *Reporter
}

func NewPipeline(
	fetcher quest.Fetcher,
	transferer dispatcher.Transferer,
	nftTransferRepo repository.NFTTransferRepository,
	reporter *Reporter,
) *Pipeline {
	return &Pipeline{
		fetcher:         fetcher,
		transferer:      transferer,
		nftTransferRepo: nftTransferRepo,
		reporter:        reporter,
	}
}

// Run executes one drop. Failing to fetch from the quest service aborts the
// run before any transfer; a failed transfer only shows up in the summary.
func (p *Pipeline) Run(ctx context.Context) (*model.DropSummary, error) {
	start := time.Now()
	ctx = xcontext.WithRunID(ctx, uuid.NewString())

	summary, err := p.run(ctx)

	result := "success"
	if err != nil {
		result = "failure"
	}
	common.PromHistograms[common.DropRunDurationSeconds].
		WithLabelValues(result).Observe(time.Since(start).Seconds())

	return summary, err
}

func (p *Pipeline) run(ctx context.Context) (*model.DropSummary, error) {
	cfg := xcontext.Configs(ctx).Drop
	runID := xcontext.RunID(ctx)

	winnerStatus, err := enum.ToEnum[entity.ClaimedQuestStatus](cfg.WinnerStatus)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid winner status %q", cfg.WinnerStatus)
	}

	addressStatus, err := enum.ToEnum[entity.ClaimedQuestStatus](cfg.AddressStatus)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid address status %q", cfg.AddressStatus)
	}

	xcontext.Logger(ctx).Infof("Start drop %s for quest %s", runID, cfg.NFTQuestID)

	winners, err := p.fetcher.FetchCompletions(ctx, cfg.NFTQuestID, winnerStatus)
	if err != nil {
		return nil, fmt.Errorf("fetch winners: %w", err)
	}

	skipped := []model.SkippedSubmission{}
	records := winners
	if cfg.AddressQuestID != "" && cfg.AddressQuestID != cfg.NFTQuestID {
		submissions, err := p.fetcher.FetchCompletions(ctx, cfg.AddressQuestID, addressStatus)
		if err != nil {
			return nil, fmt.Errorf("fetch address submissions: %w", err)
		}

		records, skipped = intersectWinners(submissions, winners)
	}

	records, excluded := resolver.PartitionByStatus(records, addressStatus)
	for _, r := range excluded {
		skipped = append(skipped, model.SkippedSubmission{
			RecordID: r.ID,
			UserID:   r.UserID,
			Value:    string(r.Status),
			Reason:   model.SkipStatus,
		})
	}

	resolution := resolver.NewResolver(resolver.NewValidator(cfg.VerifyChecksum)).
		Resolve(records, cfg.AddressField, cfg.NetworkPrefix)
	skipped = append(skipped, resolution.Skipped()...)

	common.PromGauges[common.ResolvedAddresses].
		WithLabelValues(cfg.NFTQuestID).Set(float64(resolution.Len()))

	pending, alreadySent, err := p.removeSent(ctx, resolution.Addresses())
	if err != nil {
		return nil, err
	}
	skipped = append(skipped, alreadySent...)

	xcontext.Logger(ctx).Infof("Resolved %d addresses from %d winners, %d not sent yet",
		resolution.Len(), len(winners), len(pending))

	results := dispatcher.Dispatch(ctx, pending, p.transferer)
	p.record(ctx, cfg.NFTQuestID, cfg.ExplorerURL, results)

	summary := &model.DropSummary{
		RunID:   runID,
		Winners: len(winners),
		Results: results,
		Skipped: skipped,
	}

	p.log(ctx, summary)

	if p.reporter != nil && len(results) > 0 {
		if _, err := p.reporter.Write(ctx, summary); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot write report of drop %s: %v", runID, err)
		}
	}

	return summary, nil
}

// intersectWinners keeps the submissions of users who won, and reports the
// others as skipped.
func intersectWinners(
	submissions, winners []model.CompletionRecord,
) ([]model.CompletionRecord, []model.SkippedSubmission) {
	winnerIDs := make([]string, 0, len(winners))
	for _, w := range winners {
		winnerIDs = append(winnerIDs, w.UserID)
	}

	kept := resolver.FilterByUsers(submissions, winnerIDs)
	keptIDs := make(map[string]struct{}, len(kept))
	for _, r := range kept {
		keptIDs[r.ID] = struct{}{}
	}

	skipped := []model.SkippedSubmission{}
	for _, r := range submissions {
		if _, ok := keptIDs[r.ID]; !ok {
			skipped = append(skipped, model.SkippedSubmission{
				RecordID: r.ID,
				UserID:   r.UserID,
				Reason:   model.SkipNotWinner,
			})
		}
	}

	return kept, skipped
}

func (p *Pipeline) removeSent(
	ctx context.Context, addresses []model.ResolvedAddress,
) ([]model.ResolvedAddress, []model.SkippedSubmission, error) {
	values := make([]string, 0, len(addresses))
	for _, a := range addresses {
		values = append(values, a.Address)
	}

	transfers, err := p.nftTransferRepo.GetByAddresses(ctx, values)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get sent transfers: %v", err)
		return nil, nil, errorx.New(errorx.Internal, "Cannot read transfer ledger")
	}

	sent := make(map[string]struct{}, len(transfers))
	for _, t := range transfers {
		sent[t.Address] = struct{}{}
	}

	pending := []model.ResolvedAddress{}
	skipped := []model.SkippedSubmission{}
	for _, a := range addresses {
		if _, ok := sent[a.Address]; ok {
			xcontext.Logger(ctx).Debugf("Already sent NFT to %s", a.Address)
			skipped = append(skipped, model.SkippedSubmission{Value: a.Address, Reason: model.SkipAlreadySent})
			continue
		}
		pending = append(pending, a)
	}

	return pending, skipped, nil
}

func (p *Pipeline) record(
	ctx context.Context, questID, explorerURL string, results []model.TransferResult,
) {
	for _, r := range results {
		if !r.Success {
			continue
		}

		err := p.nftTransferRepo.Create(ctx, &entity.NFTTransfer{
			Base:        entity.Base{ID: uuid.NewString()},
			Address:     r.Address,
			QuestID:     questID,
			TxID:        r.TxID,
			ExplorerURL: ExplorerLink(explorerURL, r.TxID),
			RunID:       xcontext.RunID(ctx),
		})
		if err != nil {
			// The NFT is already sent, keep going so the other transfers are
			// recorded too.
			xcontext.Logger(ctx).Errorf("Cannot record transfer to %s (%s): %v", r.Address, r.TxID, err)
		}
	}
}

func (p *Pipeline) log(ctx context.Context, summary *model.DropSummary) {
	for _, s := range summary.Skipped {
		common.PromCounters[common.SkippedSubmissionTotal].WithLabelValues(string(s.Reason)).Inc()
		xcontext.Logger(ctx).Infof("Skipped claimed quest %s of user %s (%s): %q",
			s.RecordID, s.UserID, s.Reason, s.Value)
	}

	for _, r := range summary.Results {
		if r.Success {
			xcontext.Logger(ctx).Infof("Transfer to %s: success %s", r.Address, r.TxID)
		} else {
			xcontext.Logger(ctx).Warnf("Transfer to %s: failed %s", r.Address, r.Err)
		}
	}

	xcontext.Logger(ctx).Infof("Drop %s finished: %d transfers, %d failed, %d skipped",
		summary.RunID, len(summary.Results), len(summary.Failed()), len(summary.Skipped))
}

// ExplorerLink formats the explorer page of a transaction. format either
// contains a %s verb or is a prefix the id is appended to.
func ExplorerLink(format, txID string) string {
	if format == "" || txID == "" {
		return ""
	}

	if strings.Contains(format, "%s") {
		return fmt.Sprintf(format, txID)
	}

	return format + txID
}
