package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

type Config struct {
	APIBaseURL string `mapstructure:"api_base_url"`
	DBPath     string `mapstructure:"db_path"`
	PageSize   int    `mapstructure:"page_size"`
	LogLevel   string `mapstructure:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		APIBaseURL: "http://localhost:8000",
		PageSize:   0, // 0 leaves paging to the server default
		LogLevel:   "warn",
	}
}

// Load merges defaults, the optional config file under the user's
// home, and environment variables, in that order.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	if err := LoadFile(filepath.Join(home, ".taskmanager", "config.yaml"), cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	applyEnv(cfg)

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(home, ".taskmanager", "taskmanager.db")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile overlays one yaml file onto cfg.
func LoadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

func applyEnv(cfg *Config) {
	if url := os.Getenv("TASKMANAGER_API_URL"); url != "" {
		cfg.APIBaseURL = url
	}
	if dbPath := os.Getenv("TASKMANAGER_DB"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if level := os.Getenv("TASKMANAGER_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if size := os.Getenv("TASKMANAGER_PAGE_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			cfg.PageSize = n
		}
	}
}
