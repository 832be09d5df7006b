package http

import (
	"fmt"
	"net/http"

	"github.com/mep-tools/bracket-tool/internal/app"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/utils"
	"github.com/mep-tools/bracket-tool/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{ID: user.UserID, Email: user.Email}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteDetail(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString, TokenType: models.TokenTypeBearer}, http.StatusOK)
}
