package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"gtfsmodel.onebusaway.org/internal/app"
)

// WebUI serves debug pages over the live feed.
type WebUI struct {
	*app.Application
}

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
	router.HandlerFunc(http.MethodGet, "/debug/trip/:id", webUI.debugTripHandler)
}
