// Package worker contains background deliveries that run beside the HTTP
// server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/sebvsnk/Base-E-commerce/config"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase"

	"go.uber.org/fx"
)

// Orders abandoned mid-payment hold reserved stock; sweeping too often just
// burns queries, so the interval never drops below a minute.
const minSweepInterval = time.Minute

// SweeperParams holds dependencies for the stale order sweeper.
type SweeperParams struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

type orderSweeper struct {
	interval time.Duration
	orderUC  usecase.OrderUsecase
	logger   *slog.Logger
	stop     chan struct{}
}

// NewSweeper builds the delivery that periodically cancels and restocks
// PENDING orders whose payment never progressed.
func NewSweeper(params SweeperParams) (delivery.Delivery, error) {
	interval := minSweepInterval
	if params.Config.Orders != nil && params.Config.Orders.SweepInterval > minSweepInterval {
		interval = params.Config.Orders.SweepInterval
	}

	sweeper := &orderSweeper{
		interval: interval,
		orderUC:  params.OrderUC,
		logger:   params.Logger,
		stop:     make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			close(sweeper.stop)

			return nil
		},
	})

	return sweeper, nil
}

// Serve runs the sweep loop until the application stops.
func (s *orderSweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting order sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Orders abandoned before a restart would otherwise wait a full
	// interval to release their stock.
	firstRun := time.After(10 * time.Second)

	for {
		select {
		case <-firstRun:
			s.sweep(ctx)
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stop:
			s.logger.Info("Stopping order sweeper")

			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *orderSweeper) sweep(ctx context.Context) {
	result, err := s.orderUC.SweepStaleOrders(ctx)
	if err != nil {
		s.logger.Error("Order sweep failed", slog.Any("error", err))

		return
	}

	if result.Scanned > 0 {
		s.logger.Info("Order sweep finished",
			slog.Int("scanned", result.Scanned),
			slog.Int("cancelled", result.Cancelled))
	}
}
