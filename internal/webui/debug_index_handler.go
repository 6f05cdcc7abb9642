package webui

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/davecgh/go-spew/spew"

	"gtfsmodel.onebusaway.org/internal/models"
	"gtfsmodel.onebusaway.org/internal/utils"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type debugData struct {
	Title string
	Pre   string
}

type feedStats struct {
	Source             string
	LastUpdated        time.Time
	Routes             int
	Stops              int
	Trips              int
	StopTimes          int
	Compacted          bool
	CompactedStopTimes int
	InternedStrings    int
}

// debugStopTime is one stop time as seen through its accessors, so rows
// backed by a packed table dump their effective values.
type debugStopTime struct {
	ID            int
	Sequence      int
	Stop          string
	Arrival       string
	Departure     string
	Headsign      string
	PickupType    int
	DropOffType   int
	ShapeDist     *float64
	Timepoint     int
	TableRowBound bool
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := debugTemplate.Execute(w, debugData{
		Title: title,
		Pre:   dumper.Sdump(data),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	feed := webUI.GtfsManager.Feed()
	if feed == nil {
		http.Error(w, "no feed loaded", http.StatusServiceUnavailable)
		return
	}

	var data interface{}
	var title string

	switch dataType {
	case "routes":
		routes := make([]models.Route, 0, feed.RouteCount())
		for _, route := range feed.Routes() {
			routes = append(routes, models.NewRoute(route))
		}
		data = routes
		title = "GTFS Static - Routes"
	case "stops":
		stops := make([]models.Stop, 0, feed.StopCount())
		for _, stop := range feed.Stops() {
			stops = append(stops, models.NewStop(stop))
		}
		data = stops
		title = "GTFS Static - Stops"
	case "trips":
		trips := make([]models.Trip, 0, feed.TripCount())
		for _, trip := range feed.Trips() {
			trips = append(trips, models.NewTrip(trip))
		}
		data = trips
		title = "GTFS Static - Trips"
	case "stats":
		stats := feedStats{
			Source:      webUI.GtfsConfig.GtfsURL,
			LastUpdated: webUI.GtfsManager.LastUpdated(),
			Routes:      feed.RouteCount(),
			Stops:       feed.StopCount(),
			Trips:       feed.TripCount(),
			StopTimes:   feed.StopTimeCount(),
		}
		if table := feed.Table(); table != nil {
			stats.Compacted = true
			stats.CompactedStopTimes = table.Len()
			stats.InternedStrings = table.InternedStrings()
		}
		data = stats
		title = "GTFS Static - Statistics"
	default:
		data = map[string]string{
			"error": "Please use one of the following: stats, routes, stops, trips.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}

func (webUI *WebUI) debugTripHandler(w http.ResponseWriter, r *http.Request) {
	tripID, err := utils.AgencyAndIDParam(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	trip := webUI.GtfsManager.FindTrip(tripID)
	if trip == nil {
		http.NotFound(w, r)
		return
	}

	stopTimes, _ := webUI.GtfsManager.StopTimesForTrip(tripID)
	rows := make([]debugStopTime, 0, len(stopTimes))
	for _, st := range stopTimes {
		row := debugStopTime{
			ID:            st.ID(),
			Sequence:      st.StopSequence(),
			Arrival:       utils.FormatServiceTime(st.ArrivalTime()),
			Departure:     utils.FormatServiceTime(st.DepartureTime()),
			Headsign:      st.StopHeadsign(),
			PickupType:    int(st.PickupType()),
			DropOffType:   int(st.DropOffType()),
			Timepoint:     st.Timepoint(),
			TableRowBound: st.Proxy() != nil,
		}
		if stop := st.Stop(); stop != nil {
			row.Stop = stop.Key.String() + " " + stop.Name
		}
		if st.IsShapeDistTraveledSet() {
			dist := st.ShapeDistTraveled()
			row.ShapeDist = &dist
		}
		rows = append(rows, row)
	}

	writeDebugData(w, "Trip "+tripID.String(), struct {
		Trip      models.Trip
		StopTimes []debugStopTime
	}{
		Trip:      models.NewTrip(trip),
		StopTimes: rows,
	})
}
