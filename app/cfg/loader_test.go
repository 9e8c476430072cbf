package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		DBPath:        "./test.db",
		NewsAPIKey:    "test-key",
		NewsAPIURL:    "https://newsapi.example.com/v2",
		SentimentURL:  "http://localhost:8090/sentiment",
		NERURL:        "http://localhost:8091/ner",
		Port:          "8080",
		SessionSecret: "test-secret",
		TopicsFile:    "./topics.yml",
		UserAgent:     "Test Agent",
		Timezone:      "UTC",
		Debug:         true,
		Version:       "test-version",
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.NewsAPIKey != "test-key" {
		t.Errorf("Expected news API key 'test-key', got '%s'", cfg.NewsAPIKey)
	}
	if cfg.NewsAPIURL != "https://newsapi.example.com/v2" {
		t.Errorf("Expected news API URL 'https://newsapi.example.com/v2', got '%s'", cfg.NewsAPIURL)
	}
	if cfg.SentimentURL != "http://localhost:8090/sentiment" {
		t.Errorf("Expected sentiment URL 'http://localhost:8090/sentiment', got '%s'", cfg.SentimentURL)
	}
	if cfg.NERURL != "http://localhost:8091/ner" {
		t.Errorf("Expected NER URL 'http://localhost:8091/ner', got '%s'", cfg.NERURL)
	}
	if cfg.DBPath != "./test.db" {
		t.Errorf("Expected DB path './test.db', got '%s'", cfg.DBPath)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be true")
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
}

func TestGetPanicsWhenNotLoaded(t *testing.T) {
	prev := globalCfg
	globalCfg = nil
	defer func() {
		globalCfg = prev
		if r := recover(); r == nil {
			t.Error("Get should panic when configuration is not loaded")
		}
	}()

	Get()
}

func TestApplyTimezone(t *testing.T) {
	if err := applyTimezone("UTC"); err != nil {
		t.Errorf("Expected no error for 'UTC', got %v", err)
	}

	if err := applyTimezone("Not/AZone"); err == nil {
		t.Error("Expected error for invalid timezone")
	}
}
