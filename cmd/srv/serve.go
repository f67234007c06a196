package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/questx-lab/nftdrop/internal/domain/cron"
	"github.com/questx-lab/nftdrop/pkg/prometheus"
	"github.com/questx-lab/nftdrop/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startServe(cctx *cli.Context) error {
	if err := s.prepare(cctx); err != nil {
		return err
	}
	defer s.close()

	cfg := xcontext.Configs(s.ctx)

	mux := http.NewServeMux()
	mux.Handle("/metrics", prometheus.NewHandler())
	httpSrv := &http.Server{
		Addr:    cfg.Prometheus.Address(),
		Handler: mux,
	}

	go func() {
		xcontext.Logger(s.ctx).Infof("Starting prometheus on %s", cfg.Prometheus.Address())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			xcontext.Logger(s.ctx).Errorf("Prometheus server stopped: %v", err)
		}
	}()

	jobs := []cron.CronJob{cron.NewDropCronJob(s.pipeline, cfg.Drop.Interval)}
	if cfg.Review.Enabled {
		jobs = append(jobs, cron.NewReviewCronJob(s.reviewer, cfg.Review.Interval))
	}

	err := s.runCron(jobs...)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if shutdownErr := httpSrv.Shutdown(ctx); shutdownErr != nil {
		xcontext.Logger(s.ctx).Warnf("Cannot shutdown prometheus server: %v", shutdownErr)
	}

	return err
}

// runCron runs jobs until the process receives SIGINT or SIGTERM.
func (s *srv) runCron(jobs ...cron.CronJob) error {
	manager := cron.NewCronJobManager()
	manager.Register(jobs...)

	stopped := make(chan struct{})
	go func() {
		manager.Start(s.ctx)
		close(stopped)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case <-sig:
		xcontext.Logger(s.ctx).Infof("Shutting down")
		manager.Cancel(s.ctx)
		<-stopped
	case <-stopped:
	}

	return nil
}
