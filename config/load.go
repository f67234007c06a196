package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

func Default() Configs {
	return Configs{
		Env:      "local",
		LogLevel: "info",
		LogFile:  "app.log",
		Database: DatabaseConfigs{
			Driver: "sqlite",
			DSN:    "nftdrop.db",
		},
		Zealy: ZealyConfigs{
			BaseURL:           "https://api.zealy.io",
			PageLimit:         100,
			RequestsPerSecond: 2,
			Timeout:           30 * time.Second,
		},
		Drop: DropConfigs{
			WinnerStatus:  "success",
			AddressStatus: "success",
			AddressField:  "submission",
			Interval:      2 * time.Minute,
			ExplorerURL:   "https://explorer.shimmer.network/shimmer/block/%s",
		},
		Review: ReviewConfigs{
			Interval:     2 * time.Minute,
			ValidComment: "Thank you for submitting a valid Shimmer address.",
			InvalidComment: "Thank you, but the submitted address is not a valid Shimmer address. " +
				"A valid address starts with %s. Submit a new address.",
		},
		Wallet: WalletConfigs{
			RPCName: "wallet",
		},
		Prometheus: ServerConfigs{
			Host: "0.0.0.0",
			Port: "9090",
		},
		Report: ReportConfigs{
			Dir:    "reports",
			Prefix: "nftdrop",
		},
	}
}

// Load builds the configuration from defaults, then the TOML file at path
// (skipped when path is empty), then envFile and the process environment.
func Load(path, envFile string) (Configs, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if envFile != "" {
		// A missing .env is fine, the environment may be set directly.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Configs{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Configs{}, err
	}

	return cfg, nil
}

func applyEnv(cfg *Configs) error {
	setString(&cfg.Env, "ENV")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.LogFile, "LOG_FILE")

	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.DSN, "DB_DSN")

	setString(&cfg.Zealy.BaseURL, "ZEALY_BASE_URL")
	setString(&cfg.Zealy.Subdomain, "ZEALY_SUBDOMAIN")
	setString(&cfg.Zealy.APIKey, "ZEALY_API_KEY")

	setString(&cfg.Drop.NFTQuestID, "NFT_DROP_QUEST_ID")
	setString(&cfg.Drop.AddressQuestID, "SMR_ADDRESS_QUEST_ID")
	setString(&cfg.Drop.WinnerStatus, "NFT_DROP_WINNER_STATUS")
	setString(&cfg.Drop.AddressStatus, "SMR_ADDRESS_STATUS")
	setString(&cfg.Drop.AddressField, "SMR_ADDRESS_FIELD")
	setString(&cfg.Drop.NetworkPrefix, "SHIMMER_ADDRESS_HRP")
	setString(&cfg.Drop.ExplorerURL, "EXPLORER_URL")

	setString(&cfg.Wallet.Endpoint, "WALLET_RPC_ENDPOINT")
	setString(&cfg.Wallet.RPCName, "WALLET_RPC_NAME")

	setString(&cfg.Prometheus.Host, "PROMETHEUS_HOST")
	setString(&cfg.Prometheus.Port, "PROMETHEUS_PORT")

	setString(&cfg.Report.Dir, "REPORT_DIR")
	setString(&cfg.Report.Bucket, "REPORT_BUCKET")
	setString(&cfg.Report.Prefix, "REPORT_PREFIX")

	setString(&cfg.Storage.Region, "S3_REGION")
	setString(&cfg.Storage.Endpoint, "S3_ENDPOINT")
	setString(&cfg.Storage.PublicEndpoint, "S3_PUBLIC_ENDPOINT")
	setString(&cfg.Storage.AccessKey, "S3_ACCESS_KEY")
	setString(&cfg.Storage.SecretKey, "S3_SECRET_KEY")

	var err error
	if err = setInt(&cfg.Zealy.PageLimit, "ZEALY_PAGE_LIMIT"); err != nil {
		return err
	}
	if err = setFloat(&cfg.Zealy.RequestsPerSecond, "ZEALY_REQUESTS_PER_SECOND"); err != nil {
		return err
	}
	if err = setDuration(&cfg.Zealy.Timeout, "ZEALY_TIMEOUT"); err != nil {
		return err
	}
	if err = setBool(&cfg.Drop.VerifyChecksum, "DROP_VERIFY_CHECKSUM"); err != nil {
		return err
	}
	if err = setDuration(&cfg.Drop.Interval, "DROP_INTERVAL"); err != nil {
		return err
	}
	if err = setBool(&cfg.Review.Enabled, "REVIEW_ENABLED"); err != nil {
		return err
	}
	if err = setDuration(&cfg.Review.Interval, "REVIEW_INTERVAL"); err != nil {
		return err
	}
	if err = setBool(&cfg.Storage.SSLDisabled, "S3_SSL_DISABLED"); err != nil {
		return err
	}

	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = f
	return nil
}

func setBool(dst *bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = b
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}
