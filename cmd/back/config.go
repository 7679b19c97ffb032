package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"rizoma/internal/record"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DSN             string        `yaml:"dsn" envconfig:"DSN"`
	Driver          string        `yaml:"driver" envconfig:"DRIVER"`
	MigrateDir      string        `yaml:"migrate_dir" envconfig:"MIGRATE_DIR"`
	Host            string        `yaml:"host" envconfig:"HOST"`
	HostGRPC        string        `yaml:"host_grpc" envconfig:"HOST_GRPC"`
	HostMetrics     string        `yaml:"host_metrics" envconfig:"HOST_METRICS"`
	LogLevel        int           `yaml:"loglevel" envconfig:"LOGLEVEL"`
	LogFile         string        `yaml:"log_file" envconfig:"LOG_FILE"`
	TimeOut         time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
	AddrCache       string        `yaml:"addr_cache" envconfig:"ADDR_CACHE"`
	PasswordCache   string        `yaml:"password_cache" envconfig:"PASSWORD_CACHE"`
	DBCacheRecords  int           `yaml:"db_cache_records" envconfig:"DB_CACHE_RECORDS"`
	CacheTTL        time.Duration `yaml:"cache_ttl" envconfig:"CACHE_TTL"`
	HostRBMQ        string        `yaml:"host_rbmq" envconfig:"HOST_RBMQ"`
	PortRBMQ        string        `yaml:"port_rbmq" envconfig:"PORT_RBMQ"`
	UserNameRBMQ    string        `yaml:"username_rbmq" envconfig:"USERNAME_RBMQ"`
	PasswordRBMQ    string        `yaml:"password_rbmq" envconfig:"PASSWORD_RBMQ"`
	VHostRBMQ       string        `yaml:"vhost_rbmq" envconfig:"VHOST_RBMQ"`
	FaucetLamports  uint64        `yaml:"faucet_max_lamports" envconfig:"FAUCET_MAX_LAMPORTS"`
	Rent            record.Rent   `yaml:"rent" envconfig:"RENT"`
}

const envPrefix = "RIZOMA"

func defaultConfig() Config {
	return Config{
		DSN:             "file:rizoma.db?_busy_timeout=5000",
		Driver:          "sqlite3",
		Host:            ":8080",
		HostGRPC:        ":50051",
		HostMetrics:     ":9090",
		TimeOut:         10 * time.Second,
		ShutdownTimeout: 15 * time.Second,
		AddrCache:       "localhost:6379",
		CacheTTL:        24 * time.Hour,
		PortRBMQ:        "5672",
		FaucetLamports:  5_000_000_000,
		Rent:            record.DefaultRent,
	}
}

// loadConfig layers defaults, the yaml file (optional), a .env file (optional)
// and RIZOMA_* environment variables, in that order.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	yamlConfig, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(yamlConfig, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Driver {
	case "postgres", "sqlite3":
	default:
		return fmt.Errorf("driver must be postgres or sqlite3, got %q", c.Driver)
	}
	if c.DSN == "" {
		return errors.New("dsn is required")
	}
	if c.Rent.ExemptionThreshold < 0 {
		return errors.New("rent.exemption_threshold must not be negative")
	}
	return nil
}
