package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Source SourceConfig
	Export ExportConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	DatasetTTL time.Duration
	OverlayTTL time.Duration
}

// SourceConfig points at the published airspace release: the YAIXM
// document and the overlay text files live under one base URL.
type SourceConfig struct {
	BaseURL        string
	RequestTimeout int
}

// ExportConfig configures the offline exporter binary.
type ExportConfig struct {
	DatasetPath  string
	OverlayDir   string
	SettingsPath string
	OutputPath   string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			DatasetTTL: time.Duration(viper.GetInt("DATASET_CACHE_TTL")) * time.Second,
			OverlayTTL: time.Duration(viper.GetInt("OVERLAY_CACHE_TTL")) * time.Second,
		},
		Source: SourceConfig{
			BaseURL:        viper.GetString("SOURCE_BASE_URL"),
			RequestTimeout: viper.GetInt("SOURCE_REQUEST_TIMEOUT"),
		},
		Export: ExportConfig{
			DatasetPath:  viper.GetString("EXPORT_DATASET_PATH"),
			OverlayDir:   viper.GetString("EXPORT_OVERLAY_DIR"),
			SettingsPath: viper.GetString("EXPORT_SETTINGS_PATH"),
			OutputPath:   viper.GetString("EXPORT_OUTPUT_PATH"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Cache.DatasetTTL == 0 {
		cfg.Cache.DatasetTTL = 6 * time.Hour
	}
	if cfg.Cache.OverlayTTL == 0 {
		cfg.Cache.OverlayTTL = 6 * time.Hour
	}
	if cfg.Source.BaseURL == "" {
		cfg.Source.BaseURL = "https://asselect.uk"
	}
	if cfg.Source.RequestTimeout == 0 {
		cfg.Source.RequestTimeout = 30
	}
	if cfg.Export.DatasetPath == "" {
		cfg.Export.DatasetPath = "yaixm.json"
	}
	if cfg.Export.OutputPath == "" {
		cfg.Export.OutputPath = "openair.txt"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
