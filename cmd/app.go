package cmd

import (
	"context"

	"github.com/redis/go-redis/v9"

	"finance-guide/config"
	"finance-guide/logger"
	"finance-guide/repository"
	"finance-guide/service"
)

// app holds the wired services shared by serve and ask.
type app struct {
	calculators *service.CalculatorService
	chat        *service.ChatService
	redis       *redis.Client
	stops       []func()
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	if cfg.UsesRedis() {
		rdb, err := repository.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		a.redis = rdb
		logger.L.Info("connected to redis", "addr", cfg.Redis.Addr)
	}

	var sessions repository.SessionRepository
	if cfg.Session.Backend == config.SessionBackendRedis {
		sessions = repository.NewSessionRepositoryRedis(a.redis, cfg.Session.TTL)
	} else {
		mem := repository.NewSessionRepositoryMemory(cfg.Session.TTL)
		a.stops = append(a.stops, mem.Stop)
		sessions = mem
	}

	var cache repository.CacheRepository
	if cfg.Cache.Backend == config.SessionBackendRedis {
		cache = repository.NewRedisCache(a.redis, cfg.Cache.TTL)
	} else {
		mem := repository.NewMemoryCache(cfg.Cache.TTL)
		a.stops = append(a.stops, mem.Stop)
		cache = mem
	}

	a.calculators = service.NewCalculatorService(
		repository.NewCalculationRepositoryMemory(service.MaxRecentCalcs),
		cache,
	)

	ai := service.NewAIService(cfg.LLM, service.NewOpenAIClientFactory(cfg.LLM))
	a.chat = service.NewChatService(sessions, ai, cfg.LLM.APIKey)

	if cfg.LLM.APIKey == "" {
		logger.L.Warn("no server API key configured; each session must supply its own")
	}

	return a, nil
}

func (a *app) Close() {
	for _, stop := range a.stops {
		stop()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			logger.L.Warn("error closing redis", "error", err)
		}
	}
}
