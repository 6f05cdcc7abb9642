package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"gtfsmodel.onebusaway.org/model"
)

// jsonSuffix is the format extension OneBusAway clients append to ids, as in
// /api/where/trip/25_t_1.json.
const jsonSuffix = ".json"

// PathParam returns the named route parameter with a trailing ".json" removed.
// Dots elsewhere in the id are kept.
func PathParam(r *http.Request, name string) string {
	return strings.TrimSuffix(httprouter.ParamsFromContext(r.Context()).ByName(name), jsonSuffix)
}

// AgencyAndIDParam reads the named `{agency}_{id}` route parameter.
func AgencyAndIDParam(r *http.Request, name string) (model.AgencyAndID, error) {
	return ParseCombinedID(PathParam(r, name))
}
