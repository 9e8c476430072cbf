package cfg

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version == "" {
		return "unknown"
	}
	return Version
}

type rawCfg struct {
	// Database configuration
	DBPath string `long:"db-path" env:"DB_PATH" default:"./newslens.db" description:"Path to the SQLite database file"`

	// News service configuration
	NewsAPIKey string `long:"news-api-key" env:"NEWS_API_KEY" description:"News search API key (required)" required:"true"`
	NewsAPIURL string `long:"news-api-url" env:"NEWS_API_URL" default:"https://newsapi.org/v2" description:"Base URL of the news search API"`

	// Model inference configuration
	SentimentURL string `long:"sentiment-url" env:"SENTIMENT_URL" default:"http://localhost:8090/sentiment" description:"Sentiment classifier inference endpoint"`
	NERURL       string `long:"ner-url" env:"NER_URL" description:"Named-entity recognizer inference endpoint (optional, NER disabled when empty)"`

	// Application configuration
	Port          string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	SessionSecret string `long:"session-secret" env:"SESSION_SECRET" description:"Secret used to sign session cookies (required)" required:"true"`
	TopicsFile    string `long:"topics-file" env:"TOPICS_FILE" default:"./topics.yml" description:"YAML file with curated dashboard topics"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"NewsLens/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBPath:        raw.DBPath,
		NewsAPIKey:    raw.NewsAPIKey,
		NewsAPIURL:    raw.NewsAPIURL,
		SentimentURL:  raw.SentimentURL,
		NERURL:        raw.NERURL,
		Port:          raw.Port,
		SessionSecret: raw.SessionSecret,
		TopicsFile:    raw.TopicsFile,
		UserAgent:     raw.UserAgent,
		Timezone:      raw.Timezone,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
