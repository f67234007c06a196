package main

import (
	"github.com/questx-lab/nftdrop/internal/domain/cron"
	"github.com/questx-lab/nftdrop/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startReview(cctx *cli.Context) error {
	if err := s.prepare(cctx); err != nil {
		return err
	}
	defer s.close()

	if cctx.Bool(onceFlag.Name) {
		_, err := s.reviewer.Run(s.ctx)
		return err
	}

	cfg := xcontext.Configs(s.ctx)
	return s.runCron(cron.NewReviewCronJob(s.reviewer, cfg.Review.Interval))
}
