package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config объединяет настройки CLI и локального дашборда.
type Config struct {
	// DataDir — каталог с обоими локальными хранилищами (files.sqlite, state.sqlite).
	DataDir string `env:"STUDYDECK_DATA_DIR"`

	// ListenAddr — адрес локального дашборда для команды serve.
	ListenAddr string `env:"STUDYDECK_LISTEN_ADDR"`

	// StateKeySuffix — суффикс версии ключа документа состояния.
	// Смена суффикса означает сброс на состояние по умолчанию, а не миграцию.
	StateKeySuffix string `env:"STUDYDECK_STATE_SUFFIX"`

	Version bool `env:"-"` // show version and exit (flag only)
}

// NewConfig читает .env, переменные окружения и флаги (флаги работают
// только если соответствующие переменные окружения не заданы).
func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory holding the local databases")
	flag.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "dashboard listen address (host:port)")
	flag.StringVar(&cfg.StateKeySuffix, "state-suffix", cfg.StateKeySuffix, "state document key suffix (schema version)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	// Defaults
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.ListenAddr) {
		cfg.ListenAddr = "localhost:8090"
	}
	if cfg.StateKeySuffix == "" {
		cfg.StateKeySuffix = "v2"
	}
	if cfg.DataDir == "" {
		cfgDir, err := os.UserConfigDir()
		if err != nil {
			cfgDir = "."
		}
		cfg.DataDir = filepath.Join(cfgDir, "StudyDeck")
	}

	return cfg
}

// FileStorePath возвращает путь к БД файлового домена.
func (c *Config) FileStorePath() string { return filepath.Join(c.DataDir, "files.sqlite") }

// StateStorePath возвращает путь к БД структурированного состояния.
func (c *Config) StateStorePath() string { return filepath.Join(c.DataDir, "state.sqlite") }
