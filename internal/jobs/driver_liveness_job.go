package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"loadmatrix/internal/core/application/usecases/commands"
)

// DriverLivenessJob sweeps silent drivers offline. A driver whose last
// position report is older than the threshold stops appearing available
// until the next report brings them back.
type DriverLivenessJob struct {
	handler   commands.SweepStaleDriversCommandHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDriverLivenessJob creates a job sweeping drivers silent for longer
// than the threshold.
func NewDriverLivenessJob(
	handler commands.SweepStaleDriversCommandHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *DriverLivenessJob {
	return &DriverLivenessJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "driver_liveness_job"),
	}
}

// Start begins the liveness sweep, running every minute.
func (j *DriverLivenessJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewSweepStaleDriversCommand(j.threshold)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Driver liveness sweep misconfigured", "error", cmdErr)
			return
		}

		swept, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Driver liveness sweep failed", "error", handleErr)
			return
		}

		if swept > 0 {
			j.logger.InfoContext(ctx, "Swept silent drivers offline", "count", swept)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver liveness job started")
	return nil
}

// Stop stops the liveness sweep.
func (j *DriverLivenessJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver liveness job stopped")
}
