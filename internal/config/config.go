package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env"`          // current application environment (local, dev, production etc)
	TelegramAPIToken string    `mapstructure:"-"`            // Telegram API token loaded from environment
	VocabSource      string    `mapstructure:"vocab_source"` // path or http(s) URL of the vocabulary JSON
	DB               DB        `mapstructure:"database"`     // database configuration section
	Corpus           Corpus    `mapstructure:"corpus"`
	Quiz             Quiz      `mapstructure:"quiz"`
	Game             Game      `mapstructure:"game"`
	Search           Search    `mapstructure:"search"`
	Sessions         Sessions  `mapstructure:"sessions"`
	DailyWord        DailyWord `mapstructure:"daily_word"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
	Migrate         bool          `mapstructure:"migrate"`           // apply migrations on startup
}

// Corpus configures fetching the vocabulary over HTTP.
type Corpus struct {
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	MaxRetries   uint64        `mapstructure:"max_retries"`
}

// Quiz holds word count limits per selected group.
type Quiz struct {
	MaxWordsPerGroup     int `mapstructure:"max_words_per_group"`
	DefaultWordsPerGroup int `mapstructure:"default_words_per_group"`
}

// Game holds matching game timings.
type Game struct {
	MatchDelay    time.Duration `mapstructure:"match_delay"`
	MismatchDelay time.Duration `mapstructure:"mismatch_delay"`
}

// Search configures the fuzzy word search.
type Search struct {
	Threshold      float64 `mapstructure:"threshold"`        // 0 is a perfect match, 1 matches anything
	MinMatchLength int     `mapstructure:"min_match_length"` // shorter queries return nothing
	MaxResults     int     `mapstructure:"max_results"`
}

// Sessions configures the in-memory store of running quizzes, games and decks.
type Sessions struct {
	Size int           `mapstructure:"size"`
	TTL  time.Duration `mapstructure:"ttl"`
}

// DailyWord configures the daily word broadcast.
type DailyWord struct {
	Schedule string `mapstructure:"schedule"` // cron expression, UTC
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine, variables may come from the environment.
	_ = godotenv.Load()

	cfg, err := load(viper.New(), "./config")
	if err != nil {
		return nil, err
	}

	if cfg.TelegramAPIToken == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}
	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
	}

	return cfg, nil
}

// LoadOffline reads configuration without requiring bot secrets.
// Used by the operator CLI.
func LoadOffline() (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New(), "./config")
}

func load(v *viper.Viper, configPath string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	setDefaults(v)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("vocab_source", "VOCAB_SOURCE")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Sensitive values are never read from the config file.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("vocab_source", "assets/data/vocab.json")

	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("database.migrate", true)

	v.SetDefault("corpus.fetch_timeout", "10s")
	v.SetDefault("corpus.max_retries", 3)

	v.SetDefault("quiz.max_words_per_group", 30)
	v.SetDefault("quiz.default_words_per_group", 10)

	v.SetDefault("game.match_delay", "500ms")
	v.SetDefault("game.mismatch_delay", "700ms")

	v.SetDefault("search.threshold", 0.4)
	v.SetDefault("search.min_match_length", 2)
	v.SetDefault("search.max_results", 10)

	v.SetDefault("sessions.size", 10000)
	v.SetDefault("sessions.ttl", "2h")

	v.SetDefault("daily_word.schedule", "0 9 * * *")
}
