package handler

import (
	"errors"
	"net/http"

	"github.com/stridehq/stride/internal/repository"
	"github.com/stridehq/stride/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.authService.Register(req.Username, req.Password)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			writeMessage(w, http.StatusBadRequest, ve.Error())
		case errors.Is(err, service.ErrUsernameTaken):
			writeMessage(w, http.StatusConflict, "Username already taken. Please choose a different one.")
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Username: user.Username})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			writeMessage(w, http.StatusBadRequest, ve.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			// Identical response for unknown username and wrong password
			writeMessage(w, http.StatusUnauthorized, "Invalid username or password.")
		default:
			writeInternalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}

// Lookup resolves a username to its id for client-side recovery flows. The
// password digest never appears in the response.
func (h *AuthHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		writeMessage(w, http.StatusBadRequest, "Username query parameter is required.")
		return
	}

	user, err := h.authService.ByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found.")
			return
		}
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}
