package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SourceRemote   = "remote"
	SourcePostgres = "postgres"
	SourceMemory   = "memory"
)

type Config struct {
	Port          string
	AllowedOrigin string
	APIBaseURL    string
	APITimeout    time.Duration
	DataSource    string
	DatabaseURL   string
	OwnerID       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	SessionFile   string
	AuthSecret    string
	LogLevel      string
}

// field: default value
var defaults = map[string]any{
	"port":                "8080",
	"allowed_origin":      "http://localhost:5173",
	"api_base_url":        "http://localhost:8080",
	"api_timeout_seconds": 30,
	"redis_db":            0,
	"cache_ttl_seconds":   120,
	"session_file":        ".precificapro-session.json",
	"log_level":           "INFO",
}

var envOnly = []string{
	"data_source",
	"database_url",
	"owner_id",
	"redis_addr",
	"redis_password",
	"auth_secret",
}

// Load reads .env when present, then the process environment, which wins.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for _, key := range envOnly {
		_ = v.BindEnv(key)
	}

	timeout := v.GetInt("api_timeout_seconds")
	if timeout < 1 {
		timeout = 30
	}
	ttl := v.GetInt("cache_ttl_seconds")
	if ttl < 0 {
		ttl = 0
	}

	cfg := Config{
		Port:          strings.TrimSpace(v.GetString("port")),
		AllowedOrigin: strings.TrimSpace(v.GetString("allowed_origin")),
		APIBaseURL:    strings.TrimRight(strings.TrimSpace(v.GetString("api_base_url")), "/"),
		APITimeout:    time.Duration(timeout) * time.Second,
		DatabaseURL:   strings.TrimSpace(v.GetString("database_url")),
		OwnerID:       strings.TrimSpace(v.GetString("owner_id")),
		RedisAddr:     strings.TrimSpace(v.GetString("redis_addr")),
		RedisPassword: v.GetString("redis_password"),
		RedisDB:       v.GetInt("redis_db"),
		CacheTTL:      time.Duration(ttl) * time.Second,
		SessionFile:   strings.TrimSpace(v.GetString("session_file")),
		AuthSecret:    strings.TrimSpace(v.GetString("auth_secret")),
		LogLevel:      strings.ToUpper(strings.TrimSpace(v.GetString("log_level"))),
	}
	cfg.DataSource = resolveSource(v.GetString("data_source"), cfg.DatabaseURL)

	return cfg
}

func (c Config) Address() string {
	return fmt.Sprintf(":%s", c.Port)
}

func resolveSource(raw string, databaseURL string) string {
	source := strings.ToLower(strings.TrimSpace(raw))
	if source != "" {
		return source
	}
	if databaseURL != "" {
		return SourcePostgres
	}
	return SourceRemote
}
