package bootstrap

import (
	"context"

	"hotel-booking-api/internal/infra/event"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		fx.Annotate(
			NewKafkaProducer,
			fx.As(new(commands.EventPublisher)),
		),
	),
)

func NewKafkaProducer(lc fx.Lifecycle, cfg config.Config) *event.Producer {
	producer := event.NewProducer(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return producer.Close()
		},
	})

	return producer
}
