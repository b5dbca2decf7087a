package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string `env:"DB_HOST,required"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBName     string `env:"DB_NAME,required"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`

	AppPort string `env:"APP_PORT" envDefault:"8080"`
	AppEnv  string `env:"APP_ENV" envDefault:"development"`

	JWTSecret string `env:"JWT_SECRET,required"`

	// VNPay merchant credentials. The hash secret signs every callback and
	// is handed to the verifier at construction time only.
	VNPTmnCode    string `env:"VNP_TMN_CODE"`
	VNPHashSecret string `env:"VNP_HASH_SECRET,required"`
	VNPReturnURL  string `env:"VNP_RETURN_URL"`
}

// Load reads .env (when present) and parses the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}
