package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Log      LogConfig
	Redis    RedisConfig
	Login    LoginConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Addr string
	Env  string
}

type DatabaseConfig struct {
	URL         string
	Driver      string
	AutoMigrate bool
}

// JWTConfig.Secret signs bearer tokens. Tokens always expire after
// auth.TokenTTL.
type JWTConfig struct {
	Secret string
}

type LogConfig struct {
	Level string
}

// RedisConfig.Addr empty keeps the login ban list in memory.
type RedisConfig struct {
	Addr string
}

type LoginConfig struct {
	MaxFailures int
	BanTTL      time.Duration
}

type AdminConfig struct {
	Username string
	Password string
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	EnvProduction = "production"

	// DefaultJWTSecret is only accepted outside production.
	DefaultJWTSecret = "change-me"
)

// Load reads the configuration from the environment, after loading an
// optional .env file from the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("STORE_DRIVER", DriverPostgres)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOGIN_MAX_FAILURES", 5)
	v.SetDefault("LOGIN_BAN_TTL", 15*time.Minute)

	cfg := &Config{
		Server: ServerConfig{
			Addr: v.GetString("SERVER_ADDR"),
			Env:  v.GetString("APP_ENV"),
		},
		Database: DatabaseConfig{
			URL:         v.GetString("DATABASE_URL"),
			Driver:      v.GetString("STORE_DRIVER"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Redis: RedisConfig{
			Addr: v.GetString("REDIS_ADDR"),
		},
		Login: LoginConfig{
			MaxFailures: v.GetInt("LOGIN_MAX_FAILURES"),
			BanTTL:      v.GetDuration("LOGIN_BAN_TTL"),
		},
		Admin: AdminConfig{
			Username: v.GetString("ADMIN_USERNAME"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER is %q", DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.Server.Env == EnvProduction && c.JWT.Secret == DefaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set when APP_ENV is %q", EnvProduction)
	}
	if c.Login.MaxFailures <= 0 {
		return fmt.Errorf("LOGIN_MAX_FAILURES must be positive, got %d", c.Login.MaxFailures)
	}
	return nil
}
