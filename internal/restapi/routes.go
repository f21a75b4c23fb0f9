package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.Application.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers the API endpoints. Every endpoint goes through
// API-key validation; the rate limiter wraps them when configured.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	register := func(path string, handler handlerFunc) {
		wrapped := validateAPIKey(api, handler)
		if api.rateLimiter != nil {
			wrapped = api.rateLimiter(wrapped)
		}
		router.Handler(http.MethodGet, path, wrapped)
	}

	register("/api/atlas/meta.json", api.metaHandler)
	register("/api/atlas/years.json", api.yearsHandler)
	register("/api/atlas/indicators.json", api.indicatorsHandler)
	register("/api/atlas/countries.json", api.countriesHandler)
	register("/api/atlas/map.json", api.mapHandler)
	register("/api/atlas/snapshot/:key", api.snapshotHandler)
	register("/api/atlas/trend/:key", api.trendHandler)
	register("/api/atlas/compare.json", api.compareHandler)
	register("/api/atlas/locate.json", api.locateHandler)
}
