package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"gtfsmodel.onebusaway.org/internal/app"
	"gtfsmodel.onebusaway.org/internal/appconf"
	"gtfsmodel.onebusaway.org/internal/gtfs"
	"gtfsmodel.onebusaway.org/internal/gtfs/gtfstest"
	"gtfsmodel.onebusaway.org/internal/logging"
	"gtfsmodel.onebusaway.org/internal/models"
)

// createTestApi creates a new restAPI instance with a GTFS manager initialized for use in tests.
func createTestApi(t *testing.T, compact bool) *RestAPI {
	t.Helper()

	gtfsConfig := gtfs.Config{
		GtfsURL:          gtfstest.WriteFeed(t, nil),
		Env:              appconf.Test,
		CompactStopTimes: compact,
	}
	gtfsManager, err := gtfs.InitGTFSManager(gtfsConfig, nil, nil)
	require.NoError(t, err)
	t.Cleanup(gtfsManager.Shutdown)

	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.Test,
			ApiKeys:   []string{"TEST"},
			RateLimit: 1000,
		},
		GtfsConfig:  gtfsConfig,
		GtfsManager: gtfsManager,
	}

	api := NewRestAPI(application)
	t.Cleanup(api.Close)
	return api
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t, false)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}
