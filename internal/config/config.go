package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/spf13/viper"
)

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress   string
	DatabaseURL     string
	SecretKey       string
	FetchTimeout    time.Duration
	LogLevel        string
	EnableHTTPS     bool
	TLSCertPath     string
	TLSKeyPath      string
	ShutdownTimeout time.Duration
}

var (
	ErrEmptyServerAddress = errors.New("адрес сервера не может быть пустым")
	ErrEmptyDatabaseURL   = errors.New("адрес подключения к БД не может быть пустым")
)

// Load собирает конфигурацию: значения по умолчанию, затем .env и переменные
// окружения, затем флаги командной строки из args.
func Load(args []string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_ADDRESS", "localhost:8080") // Значения по умолчанию
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SECRET_KEY", "")
	v.SetDefault("FETCH_TIMEOUT", 10*time.Second)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENABLE_HTTPS", false)
	v.SetDefault("TLS_CERT_PATH", "cert.pem")
	v.SetDefault("TLS_KEY_PATH", "key.pem")
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)

	v.AutomaticEnv()

	// Читаем .env, если есть (не переопределяет переменные окружения!)
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // Ошибку игнорируем, если файла нет

	// Флаги без значений по умолчанию: пустое значение значит "не задан"
	fs := flag.NewFlagSet("page-analyzer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	serverAddress := fs.String("a", "", "server address")
	databaseURL := fs.String("d", "", "PostgreSQL DSN")
	secretKey := fs.String("k", "", "flash cookie signing secret")
	fetchTimeout := fs.Duration("timeout", 0, "outbound fetch timeout")
	logLevel := fs.String("l", "", "log level")
	enableHTTPS := fs.Bool("s", false, "enable HTTPS")
	tlsCertPath := fs.String("cert", "", "path to TLS certificate")
	tlsKeyPath := fs.String("key", "", "path to TLS key")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg := &Config{
		ServerAddress:   v.GetString("SERVER_ADDRESS"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		SecretKey:       v.GetString("SECRET_KEY"),
		FetchTimeout:    v.GetDuration("FETCH_TIMEOUT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		EnableHTTPS:     v.GetBool("ENABLE_HTTPS"),
		TLSCertPath:     v.GetString("TLS_CERT_PATH"),
		TLSKeyPath:      v.GetString("TLS_KEY_PATH"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	// Если флаг передан — он имеет высший приоритет
	override := func(flagVal string, target *string) {
		if flagVal != "" {
			*target = flagVal
		}
	}
	override(*serverAddress, &cfg.ServerAddress)
	override(*databaseURL, &cfg.DatabaseURL)
	override(*secretKey, &cfg.SecretKey)
	override(*logLevel, &cfg.LogLevel)
	override(*tlsCertPath, &cfg.TLSCertPath)
	override(*tlsKeyPath, &cfg.TLSKeyPath)
	if *fetchTimeout > 0 {
		cfg.FetchTimeout = *fetchTimeout
	}
	if *enableHTTPS {
		cfg.EnableHTTPS = true
	}

	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return ErrEmptyServerAddress
	}
	if cfg.DatabaseURL == "" {
		return ErrEmptyDatabaseURL
	}
	if cfg.FetchTimeout <= 0 {
		return fmt.Errorf("некорректный таймаут запроса страницы: %s", cfg.FetchTimeout)
	}
	return nil
}
