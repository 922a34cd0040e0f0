package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lumapix/lumapix/internal/core/model"
	"github.com/lumapix/lumapix/internal/core/port"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User UserHeader `json:"user"`
}

type UserHeader struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "could not parse request body")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "username, email and password are required")
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.ErrorContext(ctx, "could not hash password", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, err := h.users.CreateUser(ctx, model.NewUser(req.Username, req.Email), passwordHash)
	if err != nil {
		if errors.Is(err, port.ErrAlreadyExists) {
			writeError(w, r, http.StatusConflict, "already_exists", "username or email already taken")
			return
		}

		slog.ErrorContext(ctx, "could not create user", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusCreated, RegisterResponse{
		User: UserHeader{
			ID:       string(user.ID()),
			Username: user.Username(),
			Email:    user.Email(),
		},
	})
}
