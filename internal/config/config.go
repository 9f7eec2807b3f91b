package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// defaultAppSecret: встроенный секрет приложения, к которому дописывается мастер-пароль.
const defaultAppSecret = "guardasenha-dev-secret"

type Config struct {
	VaultDBPath string `env:"VAULT_DB_PATH"`
	AppSecret   string `env:"APP_SECRET"`
	ExportDir   string `env:"EXPORT_DIR"`
	LogLevel    string `env:"LOG_LEVEL"`
	Version     bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// значения из env служат значениями по умолчанию для флагов
	flag.StringVar(&cfg.VaultDBPath, "db", cfg.VaultDBPath, "path to the vault SQLite DB")
	flag.StringVar(&cfg.AppSecret, "app-secret", cfg.AppSecret, "application secret used to derive the vault key")
	flag.StringVar(&cfg.ExportDir, "export-dir", cfg.ExportDir, "folder for exported bundles")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug|info|warn|error")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

// applyDefaults заполняет пустые поля значениями по умолчанию.
func (c *Config) applyDefaults() {
	if c.AppSecret == "" {
		c.AppSecret = defaultAppSecret
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		c.LogLevel = "warn"
	}

	if c.VaultDBPath == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base, _ = os.UserHomeDir()
		}
		c.VaultDBPath = filepath.Join(base, "GuardaSenha", "vault.sqlite")
	}
	if c.ExportDir == "" {
		home, _ := os.UserHomeDir()
		c.ExportDir = filepath.Join(home, "GuardaSenha")
	}
}
