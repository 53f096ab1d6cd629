package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	RecorderBackendSupabase = "supabase"
	RecorderBackendPostgres = "postgres"

	StorageDriverSupabase = "supabase"
	StorageDriverS3       = "s3"
)

type Config struct {
	Env        string         `yaml:"env" env:"APP_ENV" env-default:"local" json:"env"`
	Telegram   TelegramConfig `yaml:"telegram" json:"telegram"`
	Supabase   SupabaseConfig `yaml:"supabase" json:"supabase"`
	Recorder   RecorderConfig `yaml:"recorder" json:"recorder"`
	Storage    StorageConfig  `yaml:"storage" json:"storage"`
	HTTPServer HTTPServer     `yaml:"http_server" json:"-"`
}

type TelegramConfig struct {
	Token          string `yaml:"-" env:"BOT_TOKEN" env-required:"true" json:"-"`
	PollTimeoutSec int    `yaml:"poll_timeout_sec" env:"POLL_TIMEOUT_SEC" env-default:"30" json:"poll_timeout_sec"`
}

type SupabaseConfig struct {
	URL    string `yaml:"url" env:"SUPABASE_URL" json:"url"`
	Key    string `yaml:"-" env:"SUPABASE_KEY" json:"-"`
	Bucket string `yaml:"bucket" env:"SUPABASE_BUCKET" env-default:"support-files" json:"bucket"`
}

type RecorderConfig struct {
	Backend     string `yaml:"backend" env:"RECORDER_BACKEND" env-default:"supabase" json:"backend"`
	DatabaseDSN string `yaml:"database_dsn" env:"DATABASE_URL" json:"-"`
}

type StorageConfig struct {
	Driver string   `yaml:"driver" env:"STORAGE_DRIVER" env-default:"supabase" json:"driver"`
	S3     S3Config `yaml:"s3" json:"s3"`
}

type S3Config struct {
	Bucket        string `yaml:"bucket" env:"S3_BUCKET" json:"bucket"`
	Region        string `yaml:"region" env:"S3_REGION" json:"region"`
	Endpoint      string `yaml:"endpoint" env:"S3_ENDPOINT" json:"endpoint"`
	AccessKey     string `yaml:"-" env:"S3_ACCESS_KEY" json:"-"`
	SecretKey     string `yaml:"-" env:"S3_SECRET_KEY" json:"-"`
	PublicBaseURL string `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL" json:"public_base_url"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8084" json:"-"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s" json:"-"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s" json:"-"`
}

// MustLoad reads the config from the yaml file at CONFIG_PATH when set, or
// straight from the environment otherwise. Any missing required value is
// fatal: the bot must not start partially configured.
func MustLoad() *Config {
	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("config file does not exist: %s", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("cannot read config %s", err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err)
		}
	}

	mustValidate(&cfg)

	return &cfg
}

func mustValidate(cfg *Config) {
	if cfg.Recorder.Backend == RecorderBackendSupabase || cfg.Storage.Driver == StorageDriverSupabase {
		if cfg.Supabase.URL == "" || cfg.Supabase.Key == "" {
			log.Fatal("SUPABASE_URL and SUPABASE_KEY are required for the supabase backend")
		}
	}
	if cfg.Recorder.Backend == RecorderBackendPostgres && cfg.Recorder.DatabaseDSN == "" {
		log.Fatal("DATABASE_URL is required for the postgres recorder backend")
	}
	if cfg.Storage.Driver == StorageDriverS3 {
		if cfg.Storage.S3.Bucket == "" || cfg.Storage.S3.PublicBaseURL == "" {
			log.Fatal("S3_BUCKET and S3_PUBLIC_BASE_URL are required for the s3 storage driver")
		}
	}
}
