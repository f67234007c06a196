package main

import (
	"github.com/questx-lab/nftdrop/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	s.ctx = cctx.Context
	if err := s.loadConfig(cctx); err != nil {
		return err
	}

	if err := s.loadLogger(); err != nil {
		return err
	}
	defer s.close()

	db, err := s.newDatabase()
	if err != nil {
		return err
	}
	s.ctx = xcontext.WithDB(s.ctx, db)

	if err := s.migrateDB(); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Migrated database")
	return nil
}
