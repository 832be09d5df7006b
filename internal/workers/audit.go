package workers

import (
	"context"
	"errors"
	"time"

	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/service"
)

// AuditWorker re-hashes the stored revision PDFs on a fixed period.
type AuditWorker struct {
	audit    service.AuditService
	interval time.Duration
	logger   *logger.Logger
}

func NewAuditWorker(audit service.AuditService, interval time.Duration, logger *logger.Logger) *AuditWorker {
	return &AuditWorker{
		audit:    audit,
		interval: interval,
		logger:   logger,
	}
}

// Run performs one pass immediately and then one per interval until ctx is
// done.
func (a *AuditWorker) Run(ctx context.Context) {
	a.logger.Info().Dur("interval", a.interval).Msg("audit worker started")
	defer a.logger.Info().Msg("audit worker stopped")

	t := time.NewTicker(a.interval)
	defer t.Stop()

	for {
		a.pass(ctx)

		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

func (a *AuditWorker) pass(ctx context.Context) {
	start := time.Now()
	summary, err := a.audit.AuditPDFs(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		a.logger.Err(err).Msg("pdf audit failed")
		return
	}

	event := a.logger.Info()
	if summary.Missing > 0 || summary.Modified > 0 {
		event = a.logger.Warn()
	}
	event.
		Int("checked", summary.Checked).
		Int("missing", summary.Missing).
		Int("modified", summary.Modified).
		Dur("duration", time.Since(start)).
		Msg("pdf audit finished")
}
