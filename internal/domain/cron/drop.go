package cron

import (
	"context"
	"time"

	"github.com/questx-lab/nftdrop/internal/model"
	"github.com/questx-lab/nftdrop/pkg/xcontext"
)

type dropRunner interface {
	Run(ctx context.Context) (*model.DropSummary, error)
}

type DropCronJob struct {
	pipeline dropRunner
	interval time.Duration
}

func NewDropCronJob(pipeline dropRunner, interval time.Duration) *DropCronJob {
	return &DropCronJob{pipeline: pipeline, interval: interval}
}

func (job *DropCronJob) Do(ctx context.Context) {
	summary, err := job.pipeline.Run(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot run drop: %v", err)
		return
	}

	if failed := summary.Failed(); len(failed) > 0 {
		xcontext.Logger(ctx).Warnf("Drop %s has %d failed transfers, they are retried next run",
			summary.RunID, len(failed))
	}
}

func (job *DropCronJob) RunNow() bool {
	return true
}

func (job *DropCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}
