package route

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"evcal/src-server/model"
	"evcal/src-server/utils"

	"github.com/google/uuid"
)

type SessionCtxKeyType string

const (
	SessionCtxKey           SessionCtxKeyType = "session"
	SessionSecretCookieName string            = "session-secret"
)

const sessionMaxAge = time.Hour * 24 * 7

// SessionMiddleware guarantees the request carries a session row: an
// existing unexpired one looked up from the cookie, or a freshly minted
// one. The session's token is what the edit form embeds as its
// anti-forgery field.
func SessionMiddleware(as *utils.AppState, next func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var sessionModel *model.Session

		if cookie, err := r.Cookie(SessionSecretCookieName); err == nil && cookie.Value != "" {
			found := new(model.Session)
			err := as.BunDB.
				NewSelect().
				Model(found).
				Where("secret = ?", cookie.Value).
				Scan(r.Context())
			switch {
			case err != nil && !errors.Is(err, sql.ErrNoRows):
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't check if session exists in DB"))
				slog.Error("can't check if session exists in DB", "error", err)
				return
			case err == nil:
				if time.Unix(found.CreatedAtUnixUTC, 0).UTC().
					Add(sessionMaxAge).Before(time.Now()) {
					if _, err := as.BunDB.
						NewDelete().
						Model((*model.Session)(nil)).
						Where("secret = ?", found.Secret).
						Exec(r.Context()); err != nil {
						slog.Warn("can't delete expired session", "error", err)
					}
				} else {
					sessionModel = found
				}
			}
		}

		if sessionModel == nil {
			sessionModel = &model.Session{
				Secret:           uuid.NewString(),
				Token:            uuid.NewString(),
				CreatedAtUnixUTC: time.Now().UTC().Unix(),
			}
			if _, err := as.BunDB.
				NewInsert().
				Model(sessionModel).
				Exec(r.Context()); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't create session in DB"))
				slog.Error("can't create session in DB", "error", err)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     SessionSecretCookieName,
				Value:    sessionModel.Secret,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), SessionCtxKey, sessionModel)
		next(w, r.WithContext(ctx))
	}
}

func sessionFromContext(r *http.Request) (*model.Session, bool) {
	sessionModel, ok := r.Context().Value(SessionCtxKey).(*model.Session)
	return sessionModel, ok
}

// constant-time compare of the posted token against the session's
func verifyToken(sessionModel *model.Session, submitted string) bool {
	if sessionModel == nil || submitted == "" {
		return false
	}
	if len(submitted) != len(sessionModel.Token) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(sessionModel.Token)) == 1
}
