package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Upstream rates API
	NBPAPIBaseURL string
	NBPTableType  string

	// Fetch cycle
	Currencies    []string
	DaysToStart   int
	DaysToEnd     int
	FetchInterval time.Duration

	// Persistence
	AllCurrencyCSVPath      string
	SelectedCurrencyCSVPath string

	// HTTP boundary
	RateLimit          string
	CORSAllowedOrigins []string
}

const (
	defaultFetchInterval = 24 * time.Hour
	defaultCurrencies    = "eur,usd,chf"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("NBP_API_BASE_URL", "https://api.nbp.pl/api")
	viper.SetDefault("NBP_TABLE_TYPE", "a")
	viper.SetDefault("CURRENCIES", defaultCurrencies)
	viper.SetDefault("DAYS_TO_START", 90)
	viper.SetDefault("DAYS_TO_END", 0)
	viper.SetDefault("FETCH_INTERVAL", "24h")
	viper.SetDefault("ALL_CURRENCY_CSV_PATH", "all_currency_data.csv")
	viper.SetDefault("SELECTED_CURRENCY_CSV_PATH", "selected_currency_data.csv")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.NBPAPIBaseURL = viper.GetString("NBP_API_BASE_URL")
	cfg.NBPTableType = viper.GetString("NBP_TABLE_TYPE")

	cfg.Currencies = splitList(viper.GetString("CURRENCIES"))
	if len(cfg.Currencies) == 0 {
		cfg.Currencies = splitList(defaultCurrencies)
		log.Printf("Warning: CURRENCIES is empty. Defaulting to %s.\n", defaultCurrencies)
	}

	cfg.DaysToStart = viper.GetInt("DAYS_TO_START")
	cfg.DaysToEnd = viper.GetInt("DAYS_TO_END")
	if cfg.DaysToEnd < 0 || cfg.DaysToStart < cfg.DaysToEnd {
		return nil, fmt.Errorf("invalid fetch window: DAYS_TO_START (%d) must be >= DAYS_TO_END (%d) and DAYS_TO_END must not be negative", cfg.DaysToStart, cfg.DaysToEnd)
	}

	fetchIntervalStr := viper.GetString("FETCH_INTERVAL")
	fetchInterval, err := time.ParseDuration(fetchIntervalStr)
	if err != nil || fetchInterval <= 0 {
		fetchInterval = defaultFetchInterval
		log.Printf("Warning: Invalid value for FETCH_INTERVAL ('%s'). Defaulting to %s.\n", fetchIntervalStr, fetchInterval.String())
	}
	cfg.FetchInterval = fetchInterval

	cfg.AllCurrencyCSVPath = viper.GetString("ALL_CURRENCY_CSV_PATH")
	cfg.SelectedCurrencyCSVPath = viper.GetString("SELECTED_CURRENCY_CSV_PATH")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

// splitList parses a comma-separated environment value into a slice,
// trimming whitespace and dropping empty entries.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
