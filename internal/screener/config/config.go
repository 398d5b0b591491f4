package config

import (
	"time"

	"idx-scalping-sniper/pkg/common"
	"idx-scalping-sniper/pkg/config"

	"github.com/spf13/viper"
)

// MarketData holds the configuration for the upstream market-data API.
type MarketData struct {
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	UserAgent           string        `mapstructure:"user_agent"`
}

// Screening holds the momentum scalping thresholds.
type Screening struct {
	MinChangePercent float64       `mapstructure:"min_change_percent"`
	MinVolume        float64       `mapstructure:"min_volume"`
	MinPrice         float64       `mapstructure:"min_price"`
	MaxPrice         float64       `mapstructure:"max_price"`
	MinScore         int           `mapstructure:"min_score"`
	TakeProfitPct    float64       `mapstructure:"take_profit_percent"`
	StopLossPct      float64       `mapstructure:"stop_loss_percent"`
	DetailDelay      time.Duration `mapstructure:"detail_delay"`
}

// Warrant holds the warrant screener configuration.
type Warrant struct {
	StockCodeFile string        `mapstructure:"stock_code_file"`
	Suffix        string        `mapstructure:"suffix"`
	BatchSize     int           `mapstructure:"batch_size"`
	BatchDelay    time.Duration `mapstructure:"batch_delay"`
	ParentDelay   time.Duration `mapstructure:"parent_delay"`
}

// WatcherJob is one scheduled digest.
type WatcherJob struct {
	Type string `mapstructure:"type"`
	Cron string `mapstructure:"cron"`
	Top  int    `mapstructure:"top"`
}

// Watcher holds the periodic screening configuration.
type Watcher struct {
	Enabled  bool          `mapstructure:"enabled"`
	Timezone string        `mapstructure:"timezone"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Jobs     []WatcherJob  `mapstructure:"jobs"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the screener.
type Config struct {
	App        config.App    `mapstructure:"app"`
	Logger     config.Logger `mapstructure:"logger"`
	API        config.API    `mapstructure:"api"`
	MarketData MarketData    `mapstructure:"market_data"`
	Screening  Screening     `mapstructure:"screening"`
	Warrant    Warrant       `mapstructure:"warrant"`
	Watcher    Watcher       `mapstructure:"watcher"`
	Telegram   Telegram      `mapstructure:"telegram"`
}

// SetDefaults registers the built-in values so a missing file still yields a usable config.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "idx-scalping-sniper")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.version", "3.0")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.suppress", []string{
		"validation.md",
		"Expected union value",
		"YahooNumber",
		"schema validation",
	})

	v.SetDefault("api.host", "")
	v.SetDefault("api.port", 3000)
	v.SetDefault("api.static_dir", "")

	v.SetDefault("market_data.base_url", "https://sniper-ihsg.vercel.app")
	v.SetDefault("market_data.timeout", 15*time.Second)
	v.SetDefault("market_data.max_request_per_minute", 0)
	v.SetDefault("market_data.user_agent", "idx-scalping-sniper/3.0")

	v.SetDefault("screening.min_change_percent", 3)
	v.SetDefault("screening.min_volume", 5_000_000)
	v.SetDefault("screening.min_price", 50)
	v.SetDefault("screening.max_price", 5000)
	v.SetDefault("screening.min_score", 50)
	v.SetDefault("screening.take_profit_percent", 5)
	v.SetDefault("screening.stop_loss_percent", 3)
	v.SetDefault("screening.detail_delay", 50*time.Millisecond)

	v.SetDefault("warrant.stock_code_file", "api/stockcode.csv")
	v.SetDefault("warrant.suffix", common.DefaultWarrantSuffix)
	v.SetDefault("warrant.batch_size", 10)
	v.SetDefault("warrant.batch_delay", 100*time.Millisecond)
	v.SetDefault("warrant.parent_delay", 100*time.Millisecond)

	v.SetDefault("watcher.enabled", false)
	v.SetDefault("watcher.timezone", "Asia/Jakarta")
	v.SetDefault("watcher.timeout", 10*time.Minute)

	v.SetDefault("telegram.enabled", false)
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Load loads the screener configuration from the given path.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	// conventional PORT override, API_PORT is handled by AutomaticEnv
	_ = v.BindEnv("api.port", "API_PORT", "PORT")

	var cfg Config
	if err := config.LoadWith(v, path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
