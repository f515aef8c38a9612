package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Suchethan021/careerhub-platform/internal/httpserver"
	"github.com/Suchethan021/careerhub-platform/internal/models"
	"github.com/Suchethan021/careerhub-platform/internal/repo"
)

const resetTokenTTL = time.Hour

// SignupHandler registers a recruiter account and issues a confirmation
// token. The token is returned in the response for delivery via email; only
// its SHA-256 hash is stored.
// POST /auth/signup { "email": "...", "password": "..." }
func SignupHandler(r repo.Repo, sessionTTL time.Duration) http.HandlerFunc {
	type bodyT struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	return func(w http.ResponseWriter, req *http.Request) {
		var b bodyT
		if err := json.NewDecoder(req.Body).Decode(&b); err != nil || strings.TrimSpace(b.Email) == "" {
			httpserver.Error(w, http.StatusBadRequest, "bad json")
			return
		}
		if len(b.Password) < 8 {
			httpserver.Error(w, http.StatusBadRequest, "password must be at least 8 characters")
			return
		}
		phc, err := HashPassword(b.Password, defaultArgonParams())
		if err != nil {
			httpserver.Error(w, http.StatusInternalServerError, "hash error")
			return
		}
		u, err := r.CreateUser(req.Context(), strings.TrimSpace(b.Email), phc)
		if err != nil {
			if errors.Is(err, models.ErrEmailTaken) {
				httpserver.Error(w, http.StatusConflict, err.Error())
				return
			}
			httpserver.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		token, err := issueToken(req, r, u.ID, repo.TokenPurposeConfirm, 24*time.Hour)
		if err != nil {
			httpserver.Error(w, http.StatusInternalServerError, "server error")
			return
		}

		SetSessionCookie(w, models.Session{UserID: u.ID, Expiry: time.Now().Add(sessionTTL)})
		httpserver.JSON(w, http.StatusCreated, map[string]any{
			"user":               u,
			"confirmation_token": token,
		})
	}
}

// LoginHandler verifies the password and sets the session cookie.
// POST /auth/login { "email": "...", "password": "..." }
func LoginHandler(r repo.Repo, sessionTTL time.Duration) http.HandlerFunc {
	type bodyT struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	return func(w http.ResponseWriter, req *http.Request) {
		var b bodyT
		if err := json.NewDecoder(req.Body).Decode(&b); err != nil {
			httpserver.Error(w, http.StatusBadRequest, "bad json")
			return
		}
		lc, u, err := r.GetCredentialByEmail(req.Context(), b.Email)
		if err != nil {
			httpserver.Error(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
			return
		}
		ok, err := VerifyPassword(b.Password, lc.PasswordHash)
		if err != nil || !ok {
			httpserver.Error(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
			return
		}
		SetSessionCookie(w, models.Session{UserID: u.ID, Expiry: time.Now().Add(sessionTTL)})
		httpserver.JSON(w, http.StatusOK, map[string]any{"user": u})
	}
}

// LogoutHandler clears the session cookie.
// POST /auth/logout
func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ClearSessionCookie(w)
		httpserver.JSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

// MeHandler returns the authenticated user. Runs behind RequireAuth.
// GET /auth/me
func MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		u, ok := UserFromContext(req.Context())
		if !ok {
			httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		httpserver.JSON(w, http.StatusOK, map[string]any{"user": u})
	}
}

// ResetPasswordHandler issues a one-time reset token for the given email.
// Responds ok whether or not the email is registered.
// POST /auth/reset-password { "email": "..." }
func ResetPasswordHandler(r repo.Repo) http.HandlerFunc {
	type bodyT struct {
		Email string `json:"email"`
	}
	return func(w http.ResponseWriter, req *http.Request) {
		var b bodyT
		if err := json.NewDecoder(req.Body).Decode(&b); err != nil || strings.TrimSpace(b.Email) == "" {
			httpserver.Error(w, http.StatusBadRequest, "bad json")
			return
		}
		_, u, err := r.GetCredentialByEmail(req.Context(), b.Email)
		if err != nil {
			// No account enumeration: same response either way.
			httpserver.JSON(w, http.StatusOK, map[string]any{"ok": true})
			return
		}
		token, err := issueToken(req, r, u.ID, repo.TokenPurposeReset, resetTokenTTL)
		if err != nil {
			httpserver.Error(w, http.StatusInternalServerError, "server error")
			return
		}
		httpserver.JSON(w, http.StatusOK, map[string]any{"ok": true, "reset_token": token})
	}
}

// ConfirmResetHandler consumes a reset token and sets the new password.
// POST /auth/reset-password/confirm { "token": "...", "password": "...", "password_confirmation": "..." }
func ConfirmResetHandler(r repo.Repo) http.HandlerFunc {
	type bodyT struct {
		Token                string `json:"token"`
		Password             string `json:"password"`
		PasswordConfirmation string `json:"password_confirmation"`
	}
	return func(w http.ResponseWriter, req *http.Request) {
		var b bodyT
		if err := json.NewDecoder(req.Body).Decode(&b); err != nil || b.Token == "" {
			httpserver.Error(w, http.StatusBadRequest, "bad json")
			return
		}
		if len(b.Password) < 8 {
			httpserver.Error(w, http.StatusBadRequest, "password must be at least 8 characters")
			return
		}
		if b.PasswordConfirmation != "" && b.Password != b.PasswordConfirmation {
			httpserver.Error(w, http.StatusBadRequest, "passwords do not match")
			return
		}
		uid, err := r.ConsumeEmailToken(req.Context(), repo.TokenPurposeReset, hashToken(b.Token))
		if err != nil {
			httpserver.Error(w, http.StatusBadRequest, models.ErrTokenInvalid.Error())
			return
		}
		phc, err := HashPassword(b.Password, defaultArgonParams())
		if err != nil {
			httpserver.Error(w, http.StatusInternalServerError, "hash error")
			return
		}
		if err := r.UpdatePasswordHash(req.Context(), uid, phc); err != nil {
			httpserver.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpserver.JSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

// UpdatePasswordHandler sets a new password for the current session.
// Runs behind RequireAuth.
// POST /auth/update-password { "password": "...", "password_confirmation": "..." }
func UpdatePasswordHandler(r repo.Repo) http.HandlerFunc {
	type bodyT struct {
		Password             string `json:"password"`
		PasswordConfirmation string `json:"password_confirmation"`
	}
	return func(w http.ResponseWriter, req *http.Request) {
		u, ok := UserFromContext(req.Context())
		if !ok {
			httpserver.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		var b bodyT
		if err := json.NewDecoder(req.Body).Decode(&b); err != nil || len(b.Password) < 8 {
			httpserver.Error(w, http.StatusBadRequest, "bad json or weak password")
			return
		}
		if b.PasswordConfirmation != "" && b.Password != b.PasswordConfirmation {
			httpserver.Error(w, http.StatusBadRequest, "passwords do not match")
			return
		}
		phc, err := HashPassword(b.Password, defaultArgonParams())
		if err != nil {
			httpserver.Error(w, http.StatusInternalServerError, "hash error")
			return
		}
		if err := r.UpdatePasswordHash(req.Context(), u.ID, phc); err != nil {
			httpserver.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpserver.JSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

// ResendConfirmationHandler issues a fresh confirmation token.
// POST /auth/resend-confirmation { "email": "..." }
func ResendConfirmationHandler(r repo.Repo) http.HandlerFunc {
	type bodyT struct {
		Email string `json:"email"`
	}
	return func(w http.ResponseWriter, req *http.Request) {
		var b bodyT
		if err := json.NewDecoder(req.Body).Decode(&b); err != nil || strings.TrimSpace(b.Email) == "" {
			httpserver.Error(w, http.StatusBadRequest, "bad json")
			return
		}
		_, u, err := r.GetCredentialByEmail(req.Context(), b.Email)
		if err != nil {
			httpserver.JSON(w, http.StatusOK, map[string]any{"ok": true})
			return
		}
		if u.EmailConfirmedAt != nil {
			httpserver.Error(w, http.StatusBadRequest, "email already confirmed")
			return
		}
		token, err := issueToken(req, r, u.ID, repo.TokenPurposeConfirm, 24*time.Hour)
		if err != nil {
			httpserver.Error(w, http.StatusInternalServerError, "server error")
			return
		}
		httpserver.JSON(w, http.StatusOK, map[string]any{"ok": true, "confirmation_token": token})
	}
}

// ConfirmEmailHandler consumes a confirmation token.
// POST /auth/confirm-email { "token": "..." }
func ConfirmEmailHandler(r repo.Repo) http.HandlerFunc {
	type bodyT struct {
		Token string `json:"token"`
	}
	return func(w http.ResponseWriter, req *http.Request) {
		var b bodyT
		if err := json.NewDecoder(req.Body).Decode(&b); err != nil || b.Token == "" {
			httpserver.Error(w, http.StatusBadRequest, "bad json")
			return
		}
		uid, err := r.ConsumeEmailToken(req.Context(), repo.TokenPurposeConfirm, hashToken(b.Token))
		if err != nil {
			httpserver.Error(w, http.StatusBadRequest, models.ErrTokenInvalid.Error())
			return
		}
		u, err := r.ConfirmEmail(req.Context(), uid)
		if err != nil {
			httpserver.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpserver.JSON(w, http.StatusOK, map[string]any{"user": u})
	}
}

// issueToken generates a one-time token (plaintext returned for delivery)
// and stores its SHA-256 hash with an expiry.
func issueToken(req *http.Request, r repo.Repo, uid uuid.UUID, purpose string, ttl time.Duration) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)
	if err := r.CreateEmailToken(req.Context(), uid, purpose, hashToken(token), time.Now().Add(ttl)); err != nil {
		return "", err
	}
	return token, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
