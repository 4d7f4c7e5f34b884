// Package sweep runs the periodic stale-purchase reconciliation job.
package sweep

import (
	"context"
	"log/slog"

	"academy/config"
	"academy/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const defaultSchedule = "@hourly"

// Sweeper periodically fails purchases stuck in pending, so a lost webhook
// cannot leave a purchase open forever.
type Sweeper struct {
	cron    *cron.Cron
	payment usecase.PaymentUsecase
	logger  *slog.Logger
}

// Params holds dependencies for the Sweeper, injected by Fx
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Payment usecase.PaymentUsecase
	Logger  *slog.Logger
}

// New creates the Sweeper and registers its start/stop lifecycle hooks.
// When the sweeper is disabled in config it registers nothing.
func New(params Params) (*Sweeper, error) {
	sweeper := &Sweeper{
		payment: params.Payment,
		logger:  params.Logger,
	}

	if params.Config.Sweeper == nil || !params.Config.Sweeper.Enabled {
		params.Logger.Info("purchase sweeper disabled")

		return sweeper, nil
	}

	schedule := params.Config.Sweeper.Schedule
	if schedule == "" {
		schedule = defaultSchedule
	}

	sweeper.cron = cron.New()
	if _, err := sweeper.cron.AddFunc(schedule, sweeper.run); err != nil {
		return nil, errors.Wrapf(err, "invalid sweeper schedule %q", schedule)
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			params.Logger.Info("purchase sweeper started", slog.String("schedule", schedule))
			sweeper.cron.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := sweeper.cron.Stop()
			select {
			case <-stopped.Done():
			case <-ctx.Done():
			}

			return nil
		},
	})

	return sweeper, nil
}

func (s *Sweeper) run() {
	swept, err := s.payment.ExpireStalePending(context.Background())
	if err != nil {
		s.logger.Error("stale purchase sweep failed", slog.Any("error", err))

		return
	}

	if swept > 0 {
		s.logger.Info("stale pending purchases failed", slog.Int64("count", swept))
	}
}
