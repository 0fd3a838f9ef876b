package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds the service configuration resolved from .env and the environment.
type Config struct {
	Env             string        `mapstructure:"app_env"`
	Port            string        `mapstructure:"port"`
	Channel         string        `mapstructure:"quiz_channel"` // pub/sub channel for quiz updates
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Redis           Redis         `mapstructure:"redis"`
	Auth            Auth          `mapstructure:"auth"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Auth configures the admin login and token signing.
type Auth struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
}

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: No .env file found, using environment variables")
	}
}

// Load reads .env (if any) and the process environment into a Config.
func Load() (*Config, error) {
	LoadEnv()

	v := viper.New()

	v.SetDefault("app_env", "local")
	v.SetDefault("port", "8080")
	v.SetDefault("quiz_channel", "quiz:updates")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.admin_username", "admin")
	v.SetDefault("auth.admin_password", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Names that don't follow the nested key layout.
	_ = v.BindEnv("redis.addr", "REDIS_URI")
	_ = v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("auth.admin_username", "ADMIN_USERNAME")
	_ = v.BindEnv("auth.admin_password", "ADMIN_PASSWORD")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Auth.JWTSecret == "" || cfg.Auth.AdminPassword == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return &cfg, nil
}
