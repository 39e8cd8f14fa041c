// Package identity issues anonymous user ids and keeps them in the session.
package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"

	"github.com/myrjola/fitfokus/internal/contexthelpers"
	"github.com/myrjola/fitfokus/internal/errors"
	"github.com/myrjola/fitfokus/internal/logging"
)

const userIDSessionKey = "user_id"

// UserStore creates users on first sight.
type UserStore interface {
	EnsureUser(ctx context.Context, userID string) error
}

type Handler struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	users          UserStore
}

func New(logger *slog.Logger, sessionManager *scs.SessionManager, users UserStore) *Handler {
	return &Handler{
		logger:         logger,
		sessionManager: sessionManager,
		users:          users,
	}
}

// Middleware authenticates the request as the user stored in the session. Sessions without a user get a fresh one.
// It must run inside [scs.SessionManager.LoadAndSave].
func (h *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := h.sessionManager.GetString(ctx, userIDSessionKey)

		if userID == "" {
			userID = uuid.NewString()
			if err := h.users.EnsureUser(ctx, userID); err != nil {
				h.logger.LogAttrs(ctx, slog.LevelError, "unable to create user",
					errors.SlogError(errors.Wrap(err, "ensure user", slog.String("user_id", userID))))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			h.sessionManager.Put(ctx, userIDSessionKey, userID)
			h.logger.LogAttrs(ctx, slog.LevelInfo, "issued user id", slog.String("user_id", userID))
		}
		r = contexthelpers.AuthenticateContext(r, userID)

		// Hash token with sha256 to avoid leaking it in logs.
		tokenHash := sha256.Sum256([]byte(h.sessionManager.Token(ctx)))
		ctx = logging.WithAttrs(r.Context(),
			slog.String("session_hash", hex.EncodeToString(tokenHash[:])),
			slog.String("user_id", userID),
		)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
