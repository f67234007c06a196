package cron

import (
	"context"
	"time"

	"github.com/questx-lab/nftdrop/internal/model"
	"github.com/questx-lab/nftdrop/pkg/xcontext"
)

type reviewRunner interface {
	Run(ctx context.Context) (*model.ReviewSummary, error)
}

type ReviewCronJob struct {
	reviewer reviewRunner
	interval time.Duration
}

func NewReviewCronJob(reviewer reviewRunner, interval time.Duration) *ReviewCronJob {
	return &ReviewCronJob{reviewer: reviewer, interval: interval}
}

func (job *ReviewCronJob) Do(ctx context.Context) {
	if _, err := job.reviewer.Run(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot review submissions: %v", err)
	}
}

func (job *ReviewCronJob) RunNow() bool {
	return true
}

func (job *ReviewCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}
