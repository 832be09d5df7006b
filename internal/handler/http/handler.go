package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mep-tools/bracket-tool/internal/app"
	"github.com/mep-tools/bracket-tool/internal/config"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/service"
	"github.com/mep-tools/bracket-tool/internal/utils"
)

// defaultMaxUploadBytes caps CSV uploads when no limit is configured.
const defaultMaxUploadBytes = 10 << 20

// maxJSONBodyBytes caps auth and project request bodies.
const maxJSONBodyBytes = 1 << 20

type Handler struct {
	services *service.Services

	corsOrigins    []string
	requestTimeout time.Duration
	maxUploadBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}

	return &Handler{
		services:       services,
		corsOrigins:    cfg.CORSOrigins,
		requestTimeout: cfg.RequestTimeout,
		maxUploadBytes: maxUpload,
		logger:         logger,
	}
}

// decodeJSON reads at most maxJSONBodyBytes of r's body into dst. On
// failure it writes the 400 or 413 reply and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	log := logger.FromRequest(r)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		log.Warn().Int64("limit", tooLarge.Limit).Msg("request body too large")
		utils.WriteDetail(w, app.MsgBodyTooLarge, http.StatusRequestEntityTooLarge)
		return false
	}

	log.Err(err).Msg("Invalid JSON was passed")
	utils.WriteDetail(w, app.MsgInvalidJSON, http.StatusBadRequest)
	return false
}
