package identity

import (
	"log/slog"
	"net/http"
)

// RejectionObserver is notified whenever Middleware rejects a request.
type RejectionObserver func(r *http.Request, status int)

// Middleware runs ex before next. On success the ClientID is stored in the
// request context; on failure the request is answered with the rejection
// status and next is never called.
func Middleware(ex Extractor, log *slog.Logger, observers ...RejectionObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := ex.Extract(r)
			if err != nil {
				status := StatusOf(err)
				log.WarnContext(r.Context(), "client extraction rejected request",
					slog.String("path", r.URL.Path),
					slog.Int("status", status),
					slog.Any("err", err))

				for _, observe := range observers {
					observe(r, status)
				}

				http.Error(w, http.StatusText(status), status)
				return
			}

			log.DebugContext(r.Context(), "extracted client id", slog.String("client_id", id.String()))
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), id)))
		})
	}
}
