package restapi

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"atlas.healthmap.org/internal/logging"
)

// NewRecoveryMiddleware catches panics escaping a handler. The panic is
// logged with its type, message and full stack trace, and the client gets
// the envelope-format 500 instead of a dropped connection. Startup data
// errors stay fatal; this only guards request handling.
func (api *RestAPI) NewRecoveryMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					logger := logging.FromContext(r.Context())
					logging.LogPanic(logger, recovered, debug.Stack())
					api.serverErrorResponse(w, r, fmt.Errorf("panic: %v", recovered))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
