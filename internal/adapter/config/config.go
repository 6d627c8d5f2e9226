package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Mpesa    *Mpesa
	Redis    *Redis
	SMTP     *SMTP
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
	TaxRate  string `env:"TAX_RATE"`
}

type Database struct {
	DSN      string `env:"DATABASE_URI"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Mpesa struct {
	BaseURL        string `env:"MPESA_BASE_URL"`
	ConsumerKey    string `env:"MPESA_CONSUMER_KEY"`
	ConsumerSecret string `env:"MPESA_CONSUMER_SECRET"`
	ShortCode      string `env:"MPESA_SHORTCODE"`
	Passkey        string `env:"MPESA_PASSKEY"`
	CallbackURL    string `env:"MPESA_CALLBACK_URL"`
}

type Redis struct {
	Addr string `env:"REDIS_ADDRESS"`
}

type SMTP struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT"`
	From     string `env:"SMTP_FROM"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var mpesa Mpesa
	var redis Redis
	var smtp SMTP
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&mpesa.BaseURL, "p", `https://sandbox.safaricom.co.ke`, "M-Pesa API base URL")
	flag.StringVar(&redis.Addr, "r", `localhost:6379`, "Redis address")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.StringVar(&app.TaxRate, "t", `0`, "Tax rate applied to the merchandise subtotal")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&mpesa)
	if err != nil {
		return nil, fmt.Errorf("error parsing mpesa config: %w", err)
	}
	err = env.Parse(&redis)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis config: %w", err)
	}
	err = env.Parse(&smtp)
	if err != nil {
		return nil, fmt.Errorf("error parsing smtp config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Mpesa:    &mpesa,
		Redis:    &redis,
		SMTP:     &smtp,
		App:      &app,
	}

	return &config, nil
}
