package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	maxConns := config.MaxConns
	if maxConns <= 0 {
		maxConns = 10
	}
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable pool_max_conns=%d",
		config.User, config.Pass, config.Host, config.Port, config.Name, maxConns,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type Sources struct {
	CountriesURL string `mapstructure:"countries_url"`
	RatesURL     string `mapstructure:"rates_url"`
}

type Scheduler struct {
	Enabled            bool `mapstructure:"enabled"`
	RefreshIntervalSec int  `mapstructure:"refresh_interval_seconds"`
}

type Cache struct {
	MaxItems int64 `mapstructure:"max_items"`
}

type Summary struct {
	Path string `mapstructure:"path"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Logging    Logging    `mapstructure:"logging"`
	Sources    Sources    `mapstructure:"sources"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Cache      Cache      `mapstructure:"cache"`
	Summary    Summary    `mapstructure:"summary"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional outside local development
	_ = godotenv.Load()

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("sources.countries_url", "https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies")
	viper.SetDefault("sources.rates_url", "https://open.er-api.com/v6/latest/USD")
	viper.SetDefault("scheduler.enabled", true)
	viper.SetDefault("scheduler.refresh_interval_seconds", 3600)
	viper.SetDefault("cache.max_items", 1024)
	viper.SetDefault("summary.path", "cache/summary.png")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// source env vars
	_ = viper.BindEnv("sources.countries_url", "COUNTRIES_API_URL")
	_ = viper.BindEnv("sources.rates_url", "RATES_API_URL")

	// scheduler env vars
	_ = viper.BindEnv("scheduler.enabled", "SCHEDULER_ENABLED")
	_ = viper.BindEnv("scheduler.refresh_interval_seconds", "REFRESH_INTERVAL_SECONDS")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
