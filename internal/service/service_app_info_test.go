package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mep-tools/bracket-tool/internal/config"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_RequiresVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, nil, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion(t *testing.T) {
	for _, version := range []string{"0.0.1", "3.1.4", "v1.2.3-beta+build.42"} {
		t.Run(version, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: version}, nil, logger.Nop())
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			assert.Equal(t, version, svc.GetAppVersion(ctx))
		})
	}
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealth_DatabaseUp(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "0.1.0"}, pingerFunc(func(context.Context) error { return nil }), logger.Nop())
	require.NoError(t, err)

	got := svc.Health(context.Background())

	assert.Equal(t, models.HealthStatus{OK: true, Version: "0.1.0", DB: DBStatusUp}, got)
}

func TestHealth_DatabaseDownStillOK(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "0.1.0"}, pingerFunc(func(context.Context) error {
		return errors.New("connection refused")
	}), logger.Nop())
	require.NoError(t, err)

	got := svc.Health(context.Background())

	assert.True(t, got.OK)
	assert.Equal(t, DBStatusDown, got.DB)
}

func TestHealth_PingHasDeadline(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "0.1.0"}, pingerFunc(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "ping must be bounded")
		return nil
	}), logger.Nop())
	require.NoError(t, err)

	svc.Health(context.Background())
}

func TestHealth_NoDatabase(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "0.1.0"}, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, DBStatusDown, svc.Health(context.Background()).DB)
}
