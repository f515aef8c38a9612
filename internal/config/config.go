// internal/config/config.go
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	BaseURL  string `mapstructure:"base_url"`
	HTTPAddr string `mapstructure:"http_addr"`
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Uploads struct {
		Dir           string `mapstructure:"dir"`
		MaxUploadSize int64  `mapstructure:"max_upload_size"`
	} `mapstructure:"uploads"`
	Session struct {
		TTL time.Duration `mapstructure:"ttl"`
	} `mapstructure:"session"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
}

func Load() Config {
	viper.SetDefault("http_addr", ":8080")
	viper.SetDefault("uploads.dir", "uploads")
	viper.SetDefault("uploads.max_upload_size", 32<<20)
	viper.SetDefault("session.ttl", 24*time.Hour)
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	_ = viper.ReadInConfig()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// explicit bindings
	_ = viper.BindEnv("base_url", "BASE_URL")
	_ = viper.BindEnv("http_addr", "HTTP_ADDR")
	_ = viper.BindEnv("database.url", "DATABASE_URL")
	_ = viper.BindEnv("uploads.dir", "UPLOADS_DIR")
	_ = viper.BindEnv("session.ttl", "SESSION_TTL")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		panic("config error: " + err.Error())
	}
	if c.BaseURL == "" {
		panic("config error: base_url/BASE_URL required")
	}
	if c.Database.URL == "" {
		panic("config error: database.url/DATABASE_URL required")
	}
	return c
}
