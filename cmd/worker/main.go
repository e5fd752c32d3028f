package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/handler/middleware"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/infra/email"
	"hotel-booking-api/internal/infra/event"
	"hotel-booking-api/internal/infra/readstore"
	"hotel-booking-api/internal/infra/repository"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/pkg/refcode"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"
)

// The worker runs the completion sweep on a timer and turns booking events
// into notification emails. It shares the API's usecase wiring but exposes
// no HTTP surface.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	realClock := clock.NewRealClock()
	producer := event.NewProducer(cfg.Kafka)
	defer producer.Close()

	bookingRepo := repository.NewBookingRepository(pool)
	hotelRepo := repository.NewHotelRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	bookingQueries := queries.NewBookingQueries(readstore.NewBookingReadStore(pool), realClock)

	bookingCommands := commands.NewBookingCommands(
		bookingRepo,
		hotelRepo,
		userRepo,
		booking.NewFactory(realClock),
		bookingQueries,
		refcode.NewUUIDGenerator(),
		producer,
		realClock,
	)

	consumer := event.NewConsumer(cfg.Kafka)
	defer consumer.Close()

	sender := email.NewLogSender(logger)

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, ev event.BookingEvent) error {
			if err := sender.Send(ctx, ev); err != nil {
				logger.Warn("failed to send notification email", "booking_id", ev.BookingRef, "error", err.Error())
			}
			return nil
		}); err != nil && ctx.Err() == nil {
			logger.Error("consumer stopped", "error", err)
		}
	}()

	sweepTicker := time.NewTicker(cfg.Worker.SweepInterval)
	defer sweepTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("worker started", "sweep_interval", cfg.Worker.SweepInterval)

	for {
		select {
		case <-sweepTicker.C:
			count, err := bookingCommands.CompleteFinishedStays(ctx)
			if err != nil {
				logger.Error("completion sweep failed", "error", err.Error())
				continue
			}
			if count > 0 {
				logger.Info("completed finished stays", "count", count)
			}
		case s := <-sig:
			logger.Info("received signal, shutting down", "signal", s.String())
			return
		}
	}
}
