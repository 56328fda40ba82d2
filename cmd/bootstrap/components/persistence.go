package components

import (
	"context"
	"log/slog"
	"time"

	"floorplan-service/internal/infra/lock"
	"floorplan-service/internal/infra/memstore"
	"floorplan-service/internal/infra/messaging"
	"floorplan-service/internal/infra/metrics"
	"floorplan-service/internal/infra/repository"
	"floorplan-service/internal/infra/uow"
	"floorplan-service/internal/pkg/config"
	"floorplan-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	storeModule,
	coordinationModule,
)

var storeModule = fx.Module("persistence/store",
	fx.Provide(
		NewFloorPlanRepository,
		fx.Annotate(
			NewPlanUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

var coordinationModule = fx.Module("persistence/coordination",
	fx.Provide(
		NewPlanLocker,
		NewEventPublisher,
		metrics.NewRecorder,
		func(r *metrics.Recorder) shared.MetricsRecorder { return r },
	),
)

func NewFloorPlanRepository(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) shared.FloorPlanRepository {
	if cfg.Store.Driver == "memory" || pool == nil {
		logger.Warn("using in-memory floor plan store; data is lost on restart")
		return memstore.NewFloorPlanStore(logger)
	}
	return repository.NewFloorPlanRepository(repository.NewQueries(), pool, logger)
}

func NewPlanUoW(cfg config.Config, repo shared.FloorPlanRepository, locker shared.PlanLocker, recorder shared.MetricsRecorder, logger *slog.Logger) *uow.PlanUoW {
	return uow.NewPlanUoW(repo, locker, recorder, cfg.Store.MaxRetries, logger)
}

func NewPlanLocker(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.PlanLocker, error) {
	if !cfg.Redis.Enabled {
		return lock.NewLocalLocker(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("plan locks are held in redis", "addr", cfg.Redis.Addr)
	return lock.NewRedisLocker(client, cfg.Redis.LockTTL, cfg.Redis.LockWait, logger), nil
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	if !cfg.AMQP.Enabled {
		return messaging.NewLogPublisher(logger), nil
	}

	publisher, err := messaging.DialAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}
