package bootstrap

import (
	"context"
	"log/slog"

	"fleet-workflow/internal/job"
	"fleet-workflow/internal/pkg/clock"
	"fleet-workflow/internal/pkg/config"
	"fleet-workflow/internal/usecase/commands"

	"go.uber.org/fx"
)

var JobModule = fx.Module("job",
	fx.Provide(
		NewExpiryJob,
	),
	fx.Invoke(func(*job.ExpiryJob) {}),
)

func NewExpiryJob(lc fx.Lifecycle, cfg config.Config, cmds commands.WorkOrderCommands, clk clock.Clock, logger *slog.Logger) *job.ExpiryJob {
	j := job.NewExpiryJob(cmds, clk, cfg.Workflow.ExpiryInterval, logger)
	if !cfg.Workflow.ExpiryEnabled {
		logger.Info("expiry job disabled")
		return j
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			j.Start(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return j.Stop(ctx)
		},
	})

	return j
}
