package main

import (
	"github.com/questx-lab/nftdrop/internal/domain/cron"
	"github.com/questx-lab/nftdrop/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startDrop(cctx *cli.Context) error {
	if err := s.prepare(cctx); err != nil {
		return err
	}
	defer s.close()

	if cctx.Bool(onceFlag.Name) {
		summary, err := s.pipeline.Run(s.ctx)
		if err != nil {
			return err
		}

		xcontext.Logger(s.ctx).Infof("Sent %d NFTs, %d failed",
			len(summary.Results)-len(summary.Failed()), len(summary.Failed()))
		return nil
	}

	cfg := xcontext.Configs(s.ctx)
	return s.runCron(cron.NewDropCronJob(s.pipeline, cfg.Drop.Interval))
}
