package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/patungan/patungan/internal/auth"
	"github.com/patungan/patungan/internal/models"
)

// AuthService handles registration and login.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
}

// NewAuthService creates an AuthService.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{authenticator: authenticator, jwtManager: jwtManager}
}

type registerRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

type userPayload struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// HandleRegister creates a new user and returns a signed token.
func (s *AuthService) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("email is required"))
		return
	}

	user, err := s.authenticator.Register(r.Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailExists), errors.Is(err, auth.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, err)
		default:
			slog.Error("Register failed", "email", req.Email, "error", err)
			writeError(w, http.StatusInternalServerError, fmt.Errorf("registration failed"))
		}
		return
	}

	s.respondWithToken(w, http.StatusCreated, user)
}

// HandleLogin verifies credentials and returns a signed token.
func (s *AuthService) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	user, err := s.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err)
			return
		}
		slog.Error("Authenticate failed", "email", req.Email, "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Errorf("login failed"))
		return
	}

	s.respondWithToken(w, http.StatusOK, user)
}

func (s *AuthService) respondWithToken(w http.ResponseWriter, status int, user *models.User) {
	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Token generation failed", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to issue token"))
		return
	}

	writeJSON(w, status, authResponse{
		Token: token,
		User: userPayload{
			ID:          user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
		},
	})
}
