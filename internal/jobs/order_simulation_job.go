package jobs

import (
	"context"
	"log/slog"
	"time"

	"harvesthub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderSimulationJob drives the fulfillment clock. Every second it issues an
// AdvanceOrdersCommand stamped with the current wall time, which moves kitchen
// timers, pickup readiness, and courier transit progress forward.
type OrderSimulationJob struct {
	handler commands.AdvanceOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderSimulationJob creates the once-per-second fulfillment tick.
func NewOrderSimulationJob(handler commands.AdvanceOrdersCommandHandler, logger *slog.Logger) *OrderSimulationJob {
	return &OrderSimulationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_simulation_job"),
	}
}

// Start begins the simulation tick, running every second.
func (j *OrderSimulationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewAdvanceOrdersCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order simulation tick could not be built", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order simulation tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order simulation job started (running every second)")
	return nil
}

// Stop stops the simulation tick.
func (j *OrderSimulationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order simulation job stopped")
}
