package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/cockroachdb/errors"
)

type Config struct {
	StarlingAccessToken string `env:"STARLING_ACCESS_TOKEN,required,notEmpty"`
	StarlingAPIURL      string `env:"STARLING_API_URL" envDefault:"https://api.starlingbank.com"`

	YnabAccessToken string `env:"YNAB_ACCESS_TOKEN,required,notEmpty"`
	YnabAPIURL      string `env:"YNAB_API_URL" envDefault:"https://api.ynab.com/v1"`
	YnabAccountID   string `env:"YNAB_ACCOUNT_ID,required,notEmpty"`
	// empty means the first budget visible to the token
	YnabBudgetID string `env:"YNAB_BUDGET_ID"`

	StartDate           string `env:"START_DATE"`
	LookbackDays        int    `env:"LOOKBACK_DAYS" envDefault:"14"`
	StripTransferPrefix bool   `env:"STRIP_TRANSFER_PREFIX" envDefault:"true"`
	DryRun              bool   `env:"DRY_RUN" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`

	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `env:"TELEGRAM_CHAT_ID"`
}

// Load reads the configuration from the process environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.LookbackDays <= 0 {
		return errors.Newf("LOOKBACK_DAYS must be positive, got %d", c.LookbackDays)
	}

	if c.TelegramBotToken != "" && c.TelegramChatID == 0 {
		return errors.New("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}

	return nil
}

func (c *Config) NotificationsEnabled() bool {
	return c.TelegramBotToken != ""
}
