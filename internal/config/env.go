package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string `env:"APP_ADDR" env-default:":8080"`
	GinMode string `env:"GIN_MODE"`

	DB DBEnv

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" env-default:"0"`
	SessionTTL    time.Duration `env:"SESSION_TTL" env-default:"30m"`

	// APIBaseURL is where the booking flow sends its API calls. Unset means this same
	// process, reached through the loopback address of AppAddr.
	APIBaseURL   string        `env:"API_BASE_URL"`
	APITimeout   time.Duration `env:"API_TIMEOUT" env-default:"10s"`
	PaymentDelay time.Duration `env:"PAYMENT_DELAY" env-default:"2s"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173,http://localhost:8080"`
}

type DBEnv struct {
	Host         string `env:"DB_HOST" env-default:"127.0.0.1"`
	Port         string `env:"DB_PORT" env-default:"3306"`
	User         string `env:"DB_USER" env-default:"root"`
	Password     string `env:"DB_PASSWORD"`
	Name         string `env:"DB_NAME" env-default:"pmpml"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" env-default:"10"`
}

// LoadEnv reads an optional .env file, then the process environment.
func LoadEnv() (Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: failed to load .env: %v", err)
	}

	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return Env{}, err
	}
	if env.APIBaseURL == "" {
		base, err := LocalBaseURL(env.AppAddr)
		if err != nil {
			return Env{}, fmt.Errorf("APP_ADDR: %w", err)
		}
		env.APIBaseURL = base
	}
	return env, nil
}

// LocalBaseURL turns a listen address such as ":8080" or "0.0.0.0:9000" into a URL this
// process can call itself on. Wildcard hosts become the loopback address.
func LocalBaseURL(addr string) (string, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", err
	}
	if port == "" {
		return "", fmt.Errorf("missing port in %q", addr)
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port), nil
}
