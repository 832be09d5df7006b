package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mep-tools/bracket-tool/internal/config"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/service"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name         string
		cfg          config.Server
		wantHTTP     bool
		wantFrontend bool
		wantErr      error
	}{
		{
			name:         "api and frontend",
			cfg:          config.Server{HTTPAddress: ":8000", FrontendAddress: ":3000", PublicAPIBase: "/api"},
			wantHTTP:     true,
			wantFrontend: true,
		},
		{
			name:     "api only",
			cfg:      config.Server{HTTPAddress: ":8000"},
			wantHTTP: true,
		},
		{
			name:         "frontend only",
			cfg:          config.Server{FrontendAddress: ":3000"},
			wantFrontend: true,
		},
		{
			name:    "nothing configured",
			cfg:     config.Server{},
			wantErr: errNoHandlersAreCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(&service.Services{}, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantFrontend, h.Frontend != nil)
		})
	}
}
