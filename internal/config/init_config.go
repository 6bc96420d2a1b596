package config

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"thread-translator/internal/api"
	"thread-translator/internal/cache"
	"thread-translator/internal/llm"
	"thread-translator/internal/logging"
	"thread-translator/internal/prompt"
	"thread-translator/internal/service"
	"thread-translator/internal/storage"
)

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewLogger() (*zap.Logger, error) {
	if err := logging.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logging.Logger, nil
}

// ------------------------------------------------------------------------------------------------------
// NewCache prefers Redis when an address is configured, falling back to the
// in-memory cache when the connection fails
func (c *Config) NewCache(logger *zap.Logger) cache.Store {
	if c.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(c.RedisAddr, c.RedisPassword)
		if err == nil {
			logger.Info("Connected to Redis cache", zap.String("addr", c.RedisAddr))
			return redisCache
		}
		logger.Warn("Failed to connect to Redis, using in-memory cache",
			zap.Error(err),
		)
	}

	return cache.NewMemoryCache(time.Duration(c.CacheSweepSeconds) * time.Second)
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewRecordStore() (storage.RecordStore, error) {
	return storage.NewSQLiteStore(c.DBPath)
}

// ------------------------------------------------------------------------------------------------------
// NewProvider constructs the configured vendor wrapped in the timeout guard
// and the retry policy, innermost first
func (c *Config) NewProvider(logger *zap.Logger) (llm.Provider, error) {
	provider, err := llm.NewProvider(c.Provider, c.APIKey, c.Model)
	if err != nil {
		return nil, err
	}

	provider = llm.WithTimeout(provider, time.Duration(c.TimeoutSeconds)*time.Second)
	provider = llm.WithRetry(provider, c.MaxRetries, time.Duration(c.RetryInitialDelayMs)*time.Millisecond, logger)

	return provider, nil
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewTranslator(logger *zap.Logger) (service.Translator, cache.Store, storage.RecordStore, error) {
	cacheStore := c.NewCache(logger)

	records, err := c.NewRecordStore()
	if err != nil {
		cacheStore.Destroy()
		return nil, nil, nil, err
	}

	provider, err := c.NewProvider(logger)
	if err != nil {
		cacheStore.Destroy()
		_ = records.Close()
		return nil, nil, nil, err
	}

	composer, err := prompt.NewComposer()
	if err != nil {
		cacheStore.Destroy()
		_ = records.Close()
		return nil, nil, nil, err
	}

	translator := service.NewTranslator(cacheStore, provider, composer, records, logger, service.TranslatorConfig{
		CacheTTL:           time.Duration(c.CacheTTLSeconds) * time.Second,
		TokenLimit:         c.TokenBudget,
		SummarizeOversized: c.SummarizeOversized,
		DefaultStyle:       c.DefaultStyle,
	})

	return translator, cacheStore, records, nil
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewHandler(translator service.Translator, cacheStore cache.Store, logger *zap.Logger) *api.Handler {
	return api.NewHandler(translator, cacheStore, logger)
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewRouter(handler *api.Handler, logger *zap.Logger) *mux.Router {
	return api.SetupRouter(handler, logger)
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewHTTPServer(router *mux.Router) *http.Server {
	return &http.Server{
		Addr:         ":" + c.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
