// Package jobs provides the scheduled background tasks of the marketplace,
// built on github.com/robfig/cron/v3. The driver liveness sweep runs every
// minute; the reset token purge runs hourly. Both delegate to command
// handlers so the scheduling layer carries no business logic.
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"loadmatrix/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	driverLivenessJob *DriverLivenessJob
	tokenPurgeJob     *TokenPurgeJob
}

// NewJobManager creates a job manager wiring the command handlers into
// their schedules.
func NewJobManager(
	sweepHandler commands.SweepStaleDriversCommandHandler,
	purgeHandler commands.PurgeExpiredTokensCommandHandler,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		driverLivenessJob: NewDriverLivenessJob(sweepHandler, staleThreshold, logger),
		tokenPurgeJob:     NewTokenPurgeJob(purgeHandler, logger),
	}
}

// StartAll starts all scheduled jobs, stopping already started ones if a
// later one fails.
func (jm *JobManager) StartAll() error {
	if err := jm.driverLivenessJob.Start(); err != nil {
		return fmt.Errorf("failed to start driver liveness job: %w", err)
	}

	if err := jm.tokenPurgeJob.Start(); err != nil {
		jm.driverLivenessJob.Stop()
		return fmt.Errorf("failed to start token purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.tokenPurgeJob.Stop()
	jm.driverLivenessJob.Stop()
}
