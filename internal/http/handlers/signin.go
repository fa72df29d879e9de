package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"kisansetu-backend/internal/service"
	"kisansetu-backend/pkg/models"
)

type SignInHandler struct {
	Service *service.SignIn
	Log     zerolog.Logger
}

type signInReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type signInResp struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
	Message string      `json:"message,omitempty"`
}

func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req signInReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "Username required"})
		return
	}

	user, persisted, err := h.Service.Record(r.Context(), req.Username, req.Email)
	if errors.Is(err, service.ErrUsernameRequired) {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "Username required"})
		return
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("sign-in failed")
		writeJSON(w, http.StatusInternalServerError, errorResp{Error: "Server error"})
		return
	}

	resp := signInResp{Success: true, User: user}
	if !persisted {
		resp.Message = "Demo mode - data not saved"
	}
	writeJSON(w, http.StatusOK, resp)
}
