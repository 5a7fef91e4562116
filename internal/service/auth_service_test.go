package service

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/patungan/patungan/internal/auth"
)

func setupAuthService(t *testing.T) *AuthService {
	t.Helper()

	_, store := setupBillService(t)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupAuthService(t)

	register := map[string]string{
		"email":       "andi@example.com",
		"displayName": "Andi",
		"password":    "correct-horse",
	}
	w := postJSON(t, svc.HandleRegister, "/api/v1/auth/register", register)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want %d; body: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var registered authResponse
	if err := json.NewDecoder(w.Body).Decode(&registered); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}
	if registered.Token == "" {
		t.Error("expected a token on registration")
	}
	if registered.User.Email != register["email"] {
		t.Errorf("user email = %q, want %q", registered.User.Email, register["email"])
	}

	t.Run("valid credentials", func(t *testing.T) {
		w := postJSON(t, svc.HandleLogin, "/api/v1/auth/login", map[string]string{
			"email":    "andi@example.com",
			"password": "correct-horse",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("login status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
		}

		var resp authResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode login response: %v", err)
		}
		if resp.User.ID != registered.User.ID {
			t.Errorf("user ID = %q, want %q", resp.User.ID, registered.User.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postJSON(t, svc.HandleLogin, "/api/v1/auth/login", map[string]string{
			"email":    "andi@example.com",
			"password": "wrong",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("login status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		w := postJSON(t, svc.HandleLogin, "/api/v1/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "correct-horse",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("login status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("duplicate registration", func(t *testing.T) {
		w := postJSON(t, svc.HandleRegister, "/api/v1/auth/register", register)
		if w.Code != http.StatusBadRequest {
			t.Errorf("register status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		w := postJSON(t, svc.HandleRegister, "/api/v1/auth/register", map[string]string{
			"email":       "budi@example.com",
			"displayName": "Budi",
			"password":    "short",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("register status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}
