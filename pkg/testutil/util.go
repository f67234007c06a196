package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/questx-lab/nftdrop/config"
	"github.com/questx-lab/nftdrop/internal/entity"
	"github.com/questx-lab/nftdrop/pkg/logger"
	"github.com/questx-lab/nftdrop/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// MockConfigs is a complete testnet configuration.
func MockConfigs() config.Configs {
	cfg := config.Default()
	cfg.LogFile = ""
	cfg.Database = config.DatabaseConfigs{Driver: "sqlite", DSN: ":memory:"}
	cfg.Zealy.BaseURL = "https://api.zealy.test"
	cfg.Zealy.Subdomain = "shimmer"
	cfg.Zealy.APIKey = "api-key"
	cfg.Zealy.PageLimit = 2
	cfg.Zealy.RequestsPerSecond = 0
	cfg.Zealy.Timeout = time.Second
	cfg.Drop.NFTQuestID = NFTQuestID
	cfg.Drop.AddressQuestID = AddressQuestID
	cfg.Drop.AddressField = "smr_address"
	cfg.Drop.NetworkPrefix = "rms1"
	cfg.Wallet.Endpoint = "http://localhost:14265"
	cfg.Report.Dir = ""
	return cfg
}

// MockContext returns a context carrying MockConfigs, a silent logger and a
// private in-memory database with all tables migrated.
func MockContext() context.Context {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, MockConfigs())
	ctx = xcontext.WithLogger(ctx, logger.NewNopLogger())
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

// MockContextWithConfigs is MockContext with cfg replacing MockConfigs.
func MockContextWithConfigs(cfg config.Configs) context.Context {
	return xcontext.WithConfigs(MockContext(), cfg)
}
