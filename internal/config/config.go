// config предоставляет структуру конфигурации сервиса и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Auth     AuthConfig    `yaml:"auth"`
	DB       DBConfig      `yaml:"db"`
	Redis    RedisConfig   `yaml:"redis"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"3001"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// AuthConfig содержит параметры выпуска и валидации токенов.
//
// Секреты access- и refresh-токенов независимы — компрометация access-секрета
// не позволяет выпускать refresh-токены. TTL задаются строками длительности Go
// ("10m", "168h"); формат "7d" не поддерживается time.ParseDuration.
type AuthConfig struct {
	AccessSecret    string        `yaml:"access_secret" env:"JWT_ACCESS_SECRET" env-required:"true"`
	RefreshSecret   string        `yaml:"refresh_secret" env:"JWT_REFRESH_SECRET" env-required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_expiry" env:"ACCESS_TOKEN_EXPIRY" env-default:"10m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_expiry" env:"REFRESH_TOKEN_EXPIRY" env-default:"168h"`
	// ConfirmationTTL — срок жизни кодов подтверждения e-mail и восстановления пароля.
	ConfirmationTTL time.Duration `yaml:"confirmation_ttl" env:"CONFIRMATION_TTL" env-default:"24h"`
	// CookieSecure выключается только в локальной разработке без TLS.
	CookieSecure bool `yaml:"cookie_secure" env:"COOKIE_SECURE" env-default:"true"`
}

// DBConfig — настройки подключения к MongoDB.
type DBConfig struct {
	URL string `yaml:"mongo_url" env:"MONGO_URL" env-required:"true"`
}

// RedisConfig — настройки Redis для rate-limiter-а.
// Пустой URL отключает лимитирование.
type RedisConfig struct {
	URL string `yaml:"redis_url" env:"REDIS_URL"`
	// LoginLimit — максимум попыток на окно для credential-эндпойнтов.
	LoginLimit int `yaml:"login_limit" env:"LOGIN_RATE_LIMIT" env-default:"5"`
	// LoginWindow — длительность окна.
	LoginWindow time.Duration `yaml:"login_window" env:"LOGIN_RATE_WINDOW" env-default:"10s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	if path != "" {
		return tryRead(path)
	}

	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
