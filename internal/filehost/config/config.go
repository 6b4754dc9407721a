package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/anthanhphan/gosdk/conflux"
	"github.com/anthanhphan/gosdk/logger"
)

const (
	DriverDisk   = "disk"
	DriverMemory = "memory"
)

// Config holds file host configuration
type Config struct {
	Server    ServerConfig    `json:"server" yaml:"server"`
	App       AppConfig       `json:"app" yaml:"app"`
	Storage   StorageConfig   `json:"storage" yaml:"storage"`
	Retention RetentionConfig `json:"retention" yaml:"retention"`
	Hub       HubConfig       `json:"hub" yaml:"hub"`
	Redis     RedisConfig     `json:"redis" yaml:"redis"`
	Logger    logger.Config   `json:"logger" yaml:"logger"`
}

type ServerConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	BodyLimit int    `json:"body_limit" yaml:"body_limit"`
}

type AppConfig struct {
	NodeID        int64  `json:"node_id" yaml:"node_id"`
	PublicBaseURL string `json:"public_base_url" yaml:"public_base_url"`
}

type StorageConfig struct {
	Driver string `json:"driver" yaml:"driver"` // "disk", "memory"
	Dir    string `json:"dir" yaml:"dir"`
	FSync  bool   `json:"fsync" yaml:"fsync"`
}

// RetentionConfig bounds the number of stored files. Capacity 0 disables eviction.
type RetentionConfig struct {
	Capacity int `json:"capacity" yaml:"capacity"`
}

type HubConfig struct {
	OutboxSize int `json:"outbox_size" yaml:"outbox_size"`
}

// RedisConfig configures optional notice persistence.
type RedisConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	NoticeKey string `json:"notice_key" yaml:"notice_key"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:      ":8088",
			BodyLimit: 512 * 1024 * 1024, // 512MB
		},
		App: AppConfig{
			NodeID:        1,
			PublicBaseURL: "http://obs.dimond.top",
		},
		Storage: StorageConfig{
			Driver: DriverDisk,
			Dir:    "./obs",
		},
		Retention: RetentionConfig{
			Capacity: 100,
		},
		Hub: HubConfig{
			OutboxSize: 64,
		},
		Redis: RedisConfig{
			Addr:      "localhost:6379",
			NoticeKey: "filehost:notice",
		},
		Logger: logger.Config{
			LogLevel:    logger.LevelInfo,
			LogEncoding: logger.EncodingJSON,
		},
	}
}

// Load loads configuration from file
func Load(path string) (*Config, error) {
	configPath := path
	if configPath == "" {
		env := os.Getenv("ENV")
		if env == "" {
			env = "local"
		}
		configPath = filepath.Join("internal", "filehost", "config", env+".yaml")
	}

	cfg := DefaultConfig()

	parsedCfg, err := conflux.ParseConfig(configPath, cfg)
	if err != nil {
		// The logger is not initialised before the config is known.
		log.Printf("Config file not found or failed to parse, using defaults if file not specified. Path: %s, Error: %v", configPath, err)
		if path != "" {
			return nil, err
		}
		return cfg, nil
	}

	return parsedCfg, nil
}
