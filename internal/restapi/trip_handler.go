package restapi

import (
	"net/http"

	"gtfsmodel.onebusaway.org/internal/models"
	"gtfsmodel.onebusaway.org/internal/utils"
	"gtfsmodel.onebusaway.org/model"
)

// parseTripID reads and validates the `{agency}_{id}` path parameter. It
// writes a 400 and returns false on failure.
func (api *RestAPI) parseTripID(w http.ResponseWriter, r *http.Request) (model.AgencyAndID, bool) {
	id, err := utils.AgencyAndIDParam(r, "id")
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return model.AgencyAndID{}, false
	}
	return id, true
}

func (api *RestAPI) tripHandler(w http.ResponseWriter, r *http.Request) {
	tripID, ok := api.parseTripID(w, r)
	if !ok {
		return
	}

	trip := api.GtfsManager.FindTrip(tripID)
	if trip == nil {
		api.sendNotFound(w, r)
		return
	}

	references := models.NewEmptyReferences()
	if route := trip.Route(); route != nil {
		references.AddRoute(models.NewRoute(route))
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewTrip(trip), references))
}
