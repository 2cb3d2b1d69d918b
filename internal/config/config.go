package config

import "github.com/spf13/viper"

// Config carries everything the two services consume from the environment.
// The token secret is the only value both must agree on.
type Config struct {
	AppEnv      string // environment label surfaced by /healthz and /env
	TokenSecret string
	UserAddr    string
	OrderAddr   string

	StoreBackend string // memory, sqlite or postgres
	DatabaseDSN  string

	RabbitMQURL string // empty disables event publishing
	LogLevel    string
}

// Load reads configuration from environment variables with development
// defaults. Env vars always win.
func Load() *Config {
	v := viper.New()
	v.SetDefault("APP_ENV", "unknown")
	v.SetDefault("TOKEN_SECRET", "dev-secret")
	v.SetDefault("USER_ADDR", ":8001")
	v.SetDefault("ORDER_ADDR", ":8002")
	v.SetDefault("STORE_BACKEND", "memory")
	v.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	return &Config{
		AppEnv:       v.GetString("APP_ENV"),
		TokenSecret:  v.GetString("TOKEN_SECRET"),
		UserAddr:     v.GetString("USER_ADDR"),
		OrderAddr:    v.GetString("ORDER_ADDR"),
		StoreBackend: v.GetString("STORE_BACKEND"),
		DatabaseDSN:  v.GetString("DATABASE_DSN"),
		RabbitMQURL:  v.GetString("RABBITMQ_URL"),
		LogLevel:     v.GetString("LOG_LEVEL"),
	}
}
