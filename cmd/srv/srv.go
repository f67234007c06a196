package main

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/questx-lab/nftdrop/config"
	"github.com/questx-lab/nftdrop/internal/client"
	"github.com/questx-lab/nftdrop/internal/domain/drop"
	"github.com/questx-lab/nftdrop/internal/domain/quest"
	"github.com/questx-lab/nftdrop/internal/entity"
	"github.com/questx-lab/nftdrop/internal/repository"
	"github.com/questx-lab/nftdrop/pkg/api"
	"github.com/questx-lab/nftdrop/pkg/logger"
	"github.com/questx-lab/nftdrop/pkg/storage"
	"github.com/questx-lab/nftdrop/pkg/xcontext"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	ctx context.Context
	app *cli.App

	nftTransferRepo repository.NFTTransferRepository

	questClient  *quest.Client
	walletCaller client.WalletCaller
	storage      storage.Storage

	pipeline *drop.Pipeline
	reviewer *drop.Reviewer
}

// prepare loads everything a command needs, in dependency order.
func (s *srv) prepare(cctx *cli.Context) error {
	s.ctx = cctx.Context

	if err := s.loadConfig(cctx); err != nil {
		return err
	}

	if err := xcontext.Configs(s.ctx).Validate(); err != nil {
		return err
	}

	if err := s.loadLogger(); err != nil {
		return err
	}

	db, err := s.newDatabase()
	if err != nil {
		return err
	}
	s.ctx = xcontext.WithDB(s.ctx, db)

	if err := s.migrateDB(); err != nil {
		return err
	}

	s.loadRepos()
	if err := s.loadClients(); err != nil {
		return err
	}

	s.loadDomains()
	return nil
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String(configFlag.Name), cctx.String(envFlag.Name))
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	return nil
}

func (s *srv) loadLogger() error {
	cfg := xcontext.Configs(s.ctx)
	l, err := logger.NewLogger(logger.ParseLevel(cfg.LogLevel), cfg.LogFile)
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithLogger(s.ctx, l)
	return nil
}

func (s *srv) newDatabase() (*gorm.DB, error) {
	cfg := xcontext.Configs(s.ctx).Database

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.New(mysql.Config{
			DSN:                       cfg.DSN, // data source name
			DefaultStringSize:         256,     // default size for string fields
			DisableDatetimePrecision:  true,    // disable datetime precision, which not supported before MySQL 5.6
			DontSupportRenameIndex:    true,    // drop & create when rename index, rename index not supported before MySQL 5.7, MariaDB
			DontSupportRenameColumn:   true,    // `change` when rename column, rename column not supported before MySQL 8, MariaDB
			SkipInitializeWithVersion: false,   // auto configure based on currently MySQL version
		})
	default:
		dialector = sqlite.Open(cfg.DSN)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

func (s *srv) migrateDB() error {
	return entity.MigrateTable(s.ctx)
}

func (s *srv) loadRepos() {
	s.nftTransferRepo = repository.NewNFTTransferRepository()
}

func (s *srv) loadClients() error {
	cfg := xcontext.Configs(s.ctx)

	s.ctx = xcontext.WithHTTPClient(s.ctx, &http.Client{Timeout: cfg.Zealy.Timeout})
	s.questClient = quest.NewClient(cfg.Zealy, api.NewGenerator())

	rpcWalletClient, err := rpc.DialContext(s.ctx, cfg.Wallet.Endpoint)
	if err != nil {
		return err
	}
	s.walletCaller = client.NewWalletCaller(rpcWalletClient)

	if cfg.Report.Bucket != "" {
		s.storage, err = storage.NewS3Storage(cfg.Storage)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *srv) loadDomains() {
	s.pipeline = drop.NewPipeline(s.questClient, s.walletCaller, s.nftTransferRepo, drop.NewReporter(s.storage))
	s.reviewer = drop.NewReviewer(s.questClient, s.questClient)
}

func (s *srv) close() {
	if s.walletCaller != nil {
		s.walletCaller.Close()
	}

	if l, ok := xcontext.Logger(s.ctx).(interface{ Sync() error }); ok {
		_ = l.Sync()
	}
}
