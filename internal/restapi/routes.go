package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers the read API on router. Ids may carry a ".json" suffix.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/where/trip/:id", api.limit(validateAPIKey(api, api.tripHandler)))
	router.Handler(http.MethodGet, "/api/where/stop-times-for-trip/:id", api.limit(validateAPIKey(api, api.stopTimesForTripHandler)))

	router.NotFound = http.HandlerFunc(api.sendNotFound)
}

// Handler returns a router serving only the API, wrapped by WithMiddleware.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	return api.WithMiddleware(router)
}

// WithMiddleware applies compression, security headers and request logging,
// logging outermost.
func (api *RestAPI) WithMiddleware(handler http.Handler) http.Handler {
	handler = CompressionMiddleware(handler)
	handler = securityHeaders(handler)
	return NewRequestLoggingMiddleware(api.Logger)(handler)
}
