package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/internal/service"
	"github.com/MoodyMakai/WebDevForum/internal/utils"
	"github.com/MoodyMakai/WebDevForum/models"
)

type registerRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.Register(ctx, request.Username, request.Password, request.DisplayName)
	if err != nil {
		log.Err(err).Msg("account registration failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, account.Summary(), http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	decision, err := h.services.AuthService.EvaluateLogin(ctx, request.Username, request.Password, r.RemoteAddr)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during login")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if !decision.Accepted {
		// Unknown username and wrong password produce a byte-identical
		// response so accounts cannot be enumerated.
		switch decision.Reason {
		case models.ReasonAccountLocked:
			http.Error(w, service.ErrAccountLocked.Error(), http.StatusLocked)
		default:
			http.Error(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
		}
		return
	}

	account := models.Account{AccountID: decision.Summary.AccountID}
	token, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", decision.Summary.AccountID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, decision.Summary, http.StatusOK)
}
