// Command analyzer запускает веб-приложение "Анализатор страниц".
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Totarae/PageAnalyzer/internal/config"
	"github.com/Totarae/PageAnalyzer/internal/database"
	"github.com/Totarae/PageAnalyzer/internal/fetch"
	"github.com/Totarae/PageAnalyzer/internal/flash"
	"github.com/Totarae/PageAnalyzer/internal/handlers"
	"github.com/Totarae/PageAnalyzer/internal/repositories"
	"github.com/Totarae/PageAnalyzer/internal/router"
	"github.com/Totarae/PageAnalyzer/internal/service"
)

func main() {
	cfg, cfgErr := config.Load(os.Args[1:])

	level := "info"
	if cfgErr == nil {
		level = cfg.LogLevel
	}
	logger, err := newLogger(level)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfgErr != nil {
		logger.Fatal("Ошибка конфигурации", zap.Error(cfgErr))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Ошибка конфигурации", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Сервер остановлен с ошибкой", zap.Error(err))
	}
	logger.Info("Сервер остановлен")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// secretKey возвращает ключ подписи flash-кук. Без SECRET_KEY ключ
// генерируется на время жизни процесса.
func secretKey(cfg *config.Config, logger *zap.Logger) string {
	if cfg.SecretKey != "" {
		return cfg.SecretKey
	}
	logger.Warn("SECRET_KEY не задан, используется временный ключ")
	return uuid.NewString()
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	db, err := database.NewDB(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	repo := repositories.NewURLRepository(db)
	svc := service.NewAnalyzerService(repo, fetch.New(cfg.FetchTimeout), logger)

	handler, err := handlers.NewHandler(svc, flash.New(secretKey(cfg, logger)), logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router.NewRouter(handler, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Проверка страницы ждёт внешний сайт до FetchTimeout
		WriteTimeout: cfg.FetchTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Сервер запущен",
			zap.String("address", cfg.ServerAddress),
			zap.Bool("https", cfg.EnableHTTPS),
		)
		if cfg.EnableHTTPS {
			serveErr <- srv.ListenAndServeTLS(cfg.TLSCertPath, cfg.TLSKeyPath)
		} else {
			serveErr <- srv.ListenAndServe()
		}
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Получен сигнал завершения, останавливаем сервер")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
