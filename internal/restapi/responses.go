package restapi

import (
	"bytes"
	"encoding/json"
	"net/http"

	"gtfsmodel.onebusaway.org/internal/models"
)

// sendResponse encodes before writing so an encoding failure can still be
// reported as a server error.
func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(response); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	setJSONResponseType(&w)
	w.WriteHeader(response.Code)
	_, _ = w.Write(buf.Bytes())
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.writeJSON(w, r, http.StatusNotFound, models.NewErrorResponse(http.StatusNotFound, "resource not found"))
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
