package config

import (
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress      = "localhost:8080"
	defaultMigrations      = "migrations"
	defaultRateLimitWindow = 10 * time.Minute
	defaultRateLimitMax    = 100
)

type Config struct {
	Env       string
	DB        db
	Server    server
	Logger    logger
	Auth      auth
	Crypto    crypto
	RateLimit rateLimit
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type auth struct {
	JWTSecret string `env:"JWT_SECRET"`
	TokenTTL  time.Duration
}

type crypto struct {
	Algorithm  string `env:"ENCRYPT_ALGORITHM"`
	Passphrase string `env:"ENCRYPT_SECRET"`
}

type rateLimit struct {
	Window time.Duration
	Max    int
}

// MustLoad строит конфигурацию процесса один раз на старте.
// Отсутствие секрета подписи токенов или алгоритма шифрования — фатальная ошибка.
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("run_address", defaultRunAddress)
	viper.SetDefault("migrations_path", defaultMigrations)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("rate_limit_max", defaultRateLimitMax)

	config := Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: server{RunAddress: viper.GetString("run_address")},
		Logger: logger{LogLevel: viper.GetString("log_level")},
		Auth: auth{
			JWTSecret: viper.GetString("jwt_secret"),
			TokenTTL:  24 * time.Hour,
		},
		Crypto: crypto{
			Algorithm:  viper.GetString("encrypt_algorithm"),
			Passphrase: viper.GetString("encrypt_secret"),
		},
		RateLimit: rateLimit{
			Window: defaultRateLimitWindow,
			Max:    viper.GetInt("rate_limit_max"),
		},
	}

	if err := config.validate(); err != nil {
		log.Fatalln(err)
	}

	return &config
}

// validate проверяет обязательные секреты: без них процесс стартовать не должен.
func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.Crypto.Algorithm == "" {
		return errors.New("ENCRYPT_ALGORITHM is not set")
	}
	return nil
}
