package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"loadmatrix/internal/core/application/usecases/commands"
)

// TokenPurgeJob removes expired password-reset tokens. Redemption already
// rejects expired tokens, the purge just keeps the table from growing.
type TokenPurgeJob struct {
	handler commands.PurgeExpiredTokensCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTokenPurgeJob creates a job purging expired reset tokens.
func NewTokenPurgeJob(handler commands.PurgeExpiredTokensCommandHandler, logger *slog.Logger) *TokenPurgeJob {
	return &TokenPurgeJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "token_purge_job"),
	}
}

// Start begins the purge, running hourly.
func (j *TokenPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		purged, handleErr := j.handler.Handle(ctx, commands.NewPurgeExpiredTokensCommand())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Token purge failed", "error", handleErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged expired reset tokens", "count", purged)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Token purge job started")
	return nil
}

// Stop stops the purge job.
func (j *TokenPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Token purge job stopped")
}
