// Package restapi serves the dashboard's JSON API: the choropleth layer,
// per-country snapshots and trends, multi-country comparisons, and identity
// resolution for map clicks.
package restapi

import (
	"net/http"
	"time"

	"atlas.healthmap.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{
		Application: application,
		rateLimiter: NewRateLimitMiddleware(application.Config.RateLimit, time.Second),
	}
}
