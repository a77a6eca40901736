package utils

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name          string
	Port          string
	Debug         bool
	AutoMigrate   bool
	LogPath       string
	LogLevel      string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type AuthConfig struct {
	// RateLimit is the number of auth requests allowed per minute per client.
	RateLimit               int
	HashPasswords           bool
	DefaultEmployeePassword string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	v.SetDefault("APP_NAME", "zoo-admin")
	v.SetDefault("PORT", "3001")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("LOG_MAX_SIZE_MB", 10)
	v.SetDefault("LOG_MAX_BACKUPS", 7)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "zoo")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("AUTH_RATE_LIMIT", 20)
	v.SetDefault("AUTH_HASH_PASSWORDS", false)
	v.SetDefault("DEFAULT_EMPLOYEE_PASSWORD", "emp123")
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	return &Config{
		App: AppConfig{
			Name:          v.GetString("APP_NAME"),
			Port:          v.GetString("PORT"),
			Debug:         v.GetBool("DEBUG"),
			AutoMigrate:   v.GetBool("AUTO_MIGRATE"),
			LogPath:       v.GetString("LOG_PATH"),
			LogLevel:      v.GetString("LOG_LEVEL"),
			LogMaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
			LogMaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
			LogMaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Auth: AuthConfig{
			RateLimit:               v.GetInt("AUTH_RATE_LIMIT"),
			HashPasswords:           v.GetBool("AUTH_HASH_PASSWORDS"),
			DefaultEmployeePassword: v.GetString("DEFAULT_EMPLOYEE_PASSWORD"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetStringSlice("CORS_ALLOWED_ORIGINS")),
		},
	}, nil
}

// splitList accepts both "a b" and "a,b" forms of a list variable.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
