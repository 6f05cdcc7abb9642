package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"gtfsmodel.onebusaway.org/internal/logging"
	"gtfsmodel.onebusaway.org/internal/models"
)

// invalidAPIKeyResponse sends a 401 Unauthorized response with the required format
// for invalid API key errors
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	// Version 1 here, unlike successful responses; clients depend on it.
	response := models.ResponseModel{
		Code:        http.StatusUnauthorized,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "permission denied",
		Version:     1,
	}
	api.writeJSON(w, r, http.StatusUnauthorized, response)
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(api.requestLogger(r), "request failed", err,
		slog.String("path", r.URL.Path))

	response := models.ResponseModel{
		Code:        http.StatusInternalServerError,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "internal server error",
		Version:     1,
	}
	api.writeJSON(w, r, http.StatusInternalServerError, response)
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		models.ResponseModel
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		ResponseModel: models.NewErrorResponse(http.StatusBadRequest, "invalid request"),
		FieldErrors:   fieldErrors,
	}
	api.writeJSON(w, r, http.StatusBadRequest, response)
}

func (api *RestAPI) writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	setJSONResponseType(&w)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.LogError(api.requestLogger(r), "failed to encode response", err,
			slog.Int("status", status))
	}
}

func (api *RestAPI) requestLogger(r *http.Request) *slog.Logger {
	if api.Logger != nil {
		return api.Logger
	}
	return logging.FromContext(r.Context())
}
