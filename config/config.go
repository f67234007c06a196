package config

import (
	"fmt"
	"strings"
	"time"
)

type Configs struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	Database   DatabaseConfigs `toml:"database"`
	Zealy      ZealyConfigs    `toml:"zealy"`
	Drop       DropConfigs     `toml:"drop"`
	Review     ReviewConfigs   `toml:"review"`
	Wallet     WalletConfigs   `toml:"wallet"`
	Prometheus ServerConfigs   `toml:"prometheus"`
	Report     ReportConfigs   `toml:"report"`
	Storage    S3Configs       `toml:"storage"`
}

type DatabaseConfigs struct {
	// Driver is either "mysql" or "sqlite".
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

func (c ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type ZealyConfigs struct {
	BaseURL           string        `toml:"base_url"`
	Subdomain         string        `toml:"subdomain"`
	APIKey            string        `toml:"api_key"`
	PageLimit         int           `toml:"page_limit"`
	RequestsPerSecond float64       `toml:"requests_per_second"`
	Timeout           time.Duration `toml:"timeout"`
}

type DropConfigs struct {
	// NFTQuestID is the quest whose successful completers win an NFT.
	NFTQuestID string `toml:"nft_quest_id"`
	// AddressQuestID is the quest where users submit their ledger address.
	AddressQuestID string `toml:"address_quest_id"`

	WinnerStatus  string `toml:"winner_status"`
	AddressStatus string `toml:"address_status"`
	AddressField  string `toml:"address_field"`

	// NetworkPrefix is the human-readable part plus separator, e.g. "smr1"
	// on mainnet or "rms1" on testnet.
	NetworkPrefix  string        `toml:"network_prefix"`
	VerifyChecksum bool          `toml:"verify_checksum"`
	Interval       time.Duration `toml:"interval"`
	ExplorerURL    string        `toml:"explorer_url"`
}

// HRP returns the human-readable part of the network prefix, without the
// bech32 separator.
func (c DropConfigs) HRP() string {
	return strings.TrimSuffix(c.NetworkPrefix, "1")
}

type ReviewConfigs struct {
	Enabled        bool          `toml:"enabled"`
	Interval       time.Duration `toml:"interval"`
	ValidComment   string        `toml:"valid_comment"`
	InvalidComment string        `toml:"invalid_comment"`
}

type WalletConfigs struct {
	Endpoint string `toml:"endpoint"`
	RPCName  string `toml:"rpc_name"`
}

type ReportConfigs struct {
	Dir    string `toml:"dir"`
	Bucket string `toml:"bucket"`
	Prefix string `toml:"prefix"`
}

type S3Configs struct {
	Region         string `toml:"region"`
	Endpoint       string `toml:"endpoint"`
	PublicEndpoint string `toml:"public_endpoint"`
	AccessKey      string `toml:"access_key"`
	SecretKey      string `toml:"secret_key"`
	SSLDisabled    bool   `toml:"ssl_disabled"`
}

// Validate reports the first required value which is missing.
func (c Configs) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"ZEALY_API_KEY", c.Zealy.APIKey},
		{"ZEALY_SUBDOMAIN", c.Zealy.Subdomain},
		{"NFT_DROP_QUEST_ID", c.Drop.NFTQuestID},
		{"SMR_ADDRESS_QUEST_ID", c.Drop.AddressQuestID},
		{"SHIMMER_ADDRESS_HRP", c.Drop.NetworkPrefix},
		{"WALLET_RPC_ENDPOINT", c.Wallet.Endpoint},
		{"DB_DSN", c.Database.DSN},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("missing required config %s", r.name)
		}
	}

	if c.Zealy.PageLimit <= 0 {
		return fmt.Errorf("invalid page limit %d", c.Zealy.PageLimit)
	}

	return nil
}
