package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"gtfsmodel.onebusaway.org/internal/app"
	"gtfsmodel.onebusaway.org/internal/restapi"
	"gtfsmodel.onebusaway.org/internal/webui"
)

// newRouter serves the read API, the debug pages and Prometheus metrics from
// one router.
func newRouter(application *app.Application, api *restapi.RestAPI) http.Handler {
	router := httprouter.New()

	api.SetRoutes(router)
	(&webui.WebUI{Application: application}).SetWebUIRoutes(router)
	if application.Metrics != nil {
		router.Handler(http.MethodGet, "/metrics", application.Metrics.Handler())
	}

	return api.WithMiddleware(router)
}
