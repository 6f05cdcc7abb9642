package restapi

import (
	"net/http"

	"gtfsmodel.onebusaway.org/internal/models"
)

func (api *RestAPI) stopTimesForTripHandler(w http.ResponseWriter, r *http.Request) {
	tripID, ok := api.parseTripID(w, r)
	if !ok {
		return
	}

	stopTimes, found := api.GtfsManager.StopTimesForTrip(tripID)
	if !found {
		api.sendNotFound(w, r)
		return
	}

	references := models.NewEmptyReferences()
	trip := api.GtfsManager.FindTrip(tripID)
	if trip != nil {
		references.Trips = append(references.Trips, models.NewTrip(trip))
		if route := trip.Route(); route != nil {
			references.AddRoute(models.NewRoute(route))
		}
	}
	for _, st := range stopTimes {
		if stop := st.Stop(); stop != nil {
			references.AddStop(models.NewStop(stop))
		}
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewStopTimes(tripID, stopTimes), references))
}
