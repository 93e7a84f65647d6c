package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	DatabaseURL     string        `env:"DATABASE_URL,required"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AutoMigrate     bool          `env:"AUTO_MIGRATE" envDefault:"true"`

	Store StoreOptions
	Auth  AuthOptions
	Log   LogOptions

	UploadDir       string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxUploadSize   string `env:"MAX_UPLOAD_SIZE" envDefault:"10M"`
	ImportBatchSize int    `env:"IMPORT_BATCH_SIZE" envDefault:"100"`
	MetricsPath     string `env:"METRICS_PATH" envDefault:"/metrics"`
}

type StoreOptions struct {
	Kind          string `env:"GRADUATE_STORE" envDefault:"postgres"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"career_portal"`
}

type AuthOptions struct {
	AccessSecret string `env:"JWT_ACCESS_SECRET,required"`
	CookieName   string `env:"ACCESS_TOKEN_COOKIE" envDefault:"accessToken"`
}

type LogOptions struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads .env files when present, then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env", ".env.local"}
	}
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadAuth reads only the token settings, for tools that never touch a database.
func LoadAuth(envFiles ...string) (*AuthOptions, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env", ".env.local"}
	}
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	opts := &AuthOptions{}
	if err := env.Parse(opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return opts, nil
}

func (c *Config) Validate() error {
	switch c.Store.Kind {
	case StorePostgres:
	case StoreMongo:
		if c.Store.MongoURI == "" {
			return errors.New("MONGO_URI is required when GRADUATE_STORE is 'mongo'")
		}
	default:
		return fmt.Errorf("GRADUATE_STORE must be 'postgres' or 'mongo', got '%s'", c.Store.Kind)
	}
	if c.ImportBatchSize <= 0 {
		return fmt.Errorf("IMPORT_BATCH_SIZE must be positive, got %d", c.ImportBatchSize)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("LOG_FORMAT must be 'json' or 'text', got '%s'", c.Log.Format)
	}
	return nil
}

func loadEnvFiles(files []string) error {
	existing := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}
