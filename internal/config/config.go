package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Auth       Auth       `yaml:"auth"`
	Notifier   Notifier   `yaml:"notifier"`
	Uploads    Uploads    `yaml:"uploads"`
	Redis      Redis      `yaml:"redis"`
	Booking    Booking    `yaml:"booking"`
}

type Database struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env-required:"true"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-required:"true"`
	DBName   string `yaml:"dbname" env-required:"true"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Auth struct {
	Secret            string        `yaml:"secret" env:"AUTH_SECRET" env-required:"true"`
	AdminEmail        string        `yaml:"admin_email" env-required:"true"`
	AdminPasswordHash string        `yaml:"admin_password_hash" env:"ADMIN_PASSWORD_HASH" env-required:"true"`
	TokenTTL          time.Duration `yaml:"token_ttl" env-default:"12h"`
}

type Notifier struct {
	Endpoint string        `yaml:"endpoint" env-default:""`
	Timeout  time.Duration `yaml:"timeout" env-default:"10s"`
}

type Uploads struct {
	Dir      string `yaml:"dir" env-default:"./uploads"`
	BaseURL  string `yaml:"base_url" env-default:"/uploads"`
	MaxBytes int64  `yaml:"max_bytes" env-default:"5242880"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env-default:"false"`
	Address string `yaml:"address" env-default:"localhost:6379"`
}

type Booking struct {
	ValidationBaseURL string `yaml:"validation_base_url" env-default:"https://topofthegreen.com/validate-booking"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
