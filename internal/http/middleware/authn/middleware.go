package authn

import (
	"log/slog"
	"net/http"

	"github.com/lumapix/lumapix/internal/core/port"
	httpCtx "github.com/lumapix/lumapix/internal/http/context"
	"github.com/pkg/errors"
)

// Middleware authenticates requests carrying HTTP basic credentials
// against the user store. Requests without credentials pass through
// anonymously; downstream handlers decide whether an identity is
// required.
func Middleware(users port.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()

			user, err := users.Authenticate(ctx, email, password)
			if err != nil {
				if errors.Is(err, port.ErrNotAuthorized) || errors.Is(err, port.ErrNotFound) {
					w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
					http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
					return
				}

				slog.ErrorContext(ctx, "could not authenticate user", slog.Any("error", errors.WithStack(err)))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			ctx = httpCtx.SetUser(ctx, user)

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return fn
	}
}
