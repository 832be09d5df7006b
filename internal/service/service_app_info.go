package service

import (
	"context"
	"time"

	"github.com/mep-tools/bracket-tool/internal/config"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/models"
)

const (
	DBStatusUp   = "up"
	DBStatusDown = "down"

	healthPingTimeout = 2 * time.Second
)

// Pinger reports whether the database answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type appInfoService struct {
	appVersion string
	db         Pinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, db Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		db:         db,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health always reports ok; a failed ping only marks the database down.
func (s *appInfoService) Health(ctx context.Context) models.HealthStatus {
	status := models.HealthStatus{OK: true, Version: s.appVersion, DB: DBStatusUp}
	if s.db == nil {
		status.DB = DBStatusDown
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("database ping failed")
		status.DB = DBStatusDown
	}
	return status
}
