package bootstrap

import (
	"context"

	"hotel-booking-api/internal/handler/middleware"
	"hotel-booking-api/internal/infra/cache"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		fx.Annotate(
			NewRedisCache,
			fx.As(new(queries.FeaturedCache)),
			fx.As(new(middleware.RequestCounter)),
		),
	),
)

func NewRedisCache(lc fx.Lifecycle, cfg config.Config) *cache.RedisCache {
	redisCache, cleanup := cache.NewRedisCache(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return redisCache
}
