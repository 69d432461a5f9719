package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/pkg"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a 500 JSON error. http.ErrAbortHandler is
// re-raised so net/http can abort the response as intended.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				log.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Errorf("panic while handling request: %v\n%s", rec, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteErrorMessage(w, "internal server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
