package gtfs

import (
	"slices"

	"gtfsmodel.onebusaway.org/compact"
	"gtfsmodel.onebusaway.org/model"
)

// Feed is the registry of entities built from one static GTFS feed. It owns the
// routes and stops that trips and stop times refer to.
//
// A Feed is written by a single goroutine while it is built and compacted, and
// is read-only once the Manager publishes it.
type Feed struct {
	routes          map[model.AgencyAndID]*model.Route
	stops           map[model.AgencyAndID]*model.Stop
	trips           map[model.AgencyAndID]*model.Trip
	tripOrder       []*model.Trip
	stopTimesByTrip map[model.AgencyAndID][]*model.StopTime
	stopTimeCount   int
	table           *compact.StopTimeTable
}

func NewFeed() *Feed {
	return &Feed{
		routes:          make(map[model.AgencyAndID]*model.Route),
		stops:           make(map[model.AgencyAndID]*model.Stop),
		trips:           make(map[model.AgencyAndID]*model.Trip),
		stopTimesByTrip: make(map[model.AgencyAndID][]*model.StopTime),
	}
}

func (f *Feed) AddRoute(route *model.Route) {
	f.routes[route.ID()] = route
}

func (f *Feed) AddStop(stop *model.Stop) {
	f.stops[stop.ID()] = stop
}

// AddTrip registers a trip. A trip with an id already present replaces the
// earlier one in lookups but keeps its listing position.
func (f *Feed) AddTrip(trip *model.Trip) {
	if _, exists := f.trips[trip.ID()]; !exists {
		f.tripOrder = append(f.tripOrder, trip)
	} else {
		for i, t := range f.tripOrder {
			if t.ID() == trip.ID() {
				f.tripOrder[i] = trip
				break
			}
		}
	}
	f.trips[trip.ID()] = trip
}

// AddStopTime appends st to its trip's sequence. Call SortStopTimes once all
// stop times are added.
func (f *Feed) AddStopTime(st *model.StopTime) {
	var tripID model.AgencyAndID
	if trip := st.Trip(); trip != nil {
		tripID = trip.ID()
	}
	f.stopTimesByTrip[tripID] = append(f.stopTimesByTrip[tripID], st)
	f.stopTimeCount++
}

// SortStopTimes orders every trip's stop times by stop sequence.
func (f *Feed) SortStopTimes() {
	for _, stopTimes := range f.stopTimesByTrip {
		model.SortStopTimes(stopTimes)
	}
}

func (f *Feed) Route(id model.AgencyAndID) *model.Route {
	return f.routes[id]
}

func (f *Feed) Stop(id model.AgencyAndID) *model.Stop {
	return f.stops[id]
}

func (f *Feed) Trip(id model.AgencyAndID) *model.Trip {
	return f.trips[id]
}

// Trips returns the trips in the order they were added.
func (f *Feed) Trips() []*model.Trip {
	out := make([]*model.Trip, len(f.tripOrder))
	copy(out, f.tripOrder)
	return out
}

// Routes returns every route ordered by id.
func (f *Feed) Routes() []*model.Route {
	return sortedValues(f.routes)
}

// Stops returns every stop ordered by id.
func (f *Feed) Stops() []*model.Stop {
	return sortedValues(f.stops)
}

// StopTimesForTrip returns the trip's stop times in sequence order.
func (f *Feed) StopTimesForTrip(id model.AgencyAndID) []*model.StopTime {
	stopTimes := f.stopTimesByTrip[id]
	out := make([]*model.StopTime, len(stopTimes))
	copy(out, stopTimes)
	return out
}

func (f *Feed) RouteCount() int    { return len(f.routes) }
func (f *Feed) StopCount() int     { return len(f.stops) }
func (f *Feed) TripCount() int     { return len(f.trips) }
func (f *Feed) StopTimeCount() int { return f.stopTimeCount }

// Table returns the packed stop time table, or nil if the feed was not compacted.
func (f *Feed) Table() *compact.StopTimeTable {
	return f.table
}

// Compact moves every stop time of the feed into one packed table. Stop times
// handed out before the call are bound to their rows, and the feed's own
// sequences are replaced with lightweight views of the same rows so the
// original records can be collected once nobody else holds them.
//
// A feed is compacted at most once; later calls return the existing table.
func (f *Feed) Compact() *compact.StopTimeTable {
	if f.table != nil {
		return f.table
	}

	tripIDs := f.stopTimeTripIDs()

	all := make([]*model.StopTime, 0, f.stopTimeCount)
	for _, tripID := range tripIDs {
		all = append(all, f.stopTimesByTrip[tripID]...)
	}

	table := compact.Compact(all)

	row := 0
	for _, tripID := range tripIDs {
		stopTimes := f.stopTimesByTrip[tripID]
		for j := range stopTimes {
			stopTimes[j] = table.StopTime(row)
			row++
		}
	}

	f.table = table
	return table
}

// stopTimeTripIDs lists the keys of stopTimesByTrip: known trips in listing
// order, then stop times whose trip is not registered, ordered by id.
func (f *Feed) stopTimeTripIDs() []model.AgencyAndID {
	ids := make([]model.AgencyAndID, 0, len(f.stopTimesByTrip))
	for _, trip := range f.tripOrder {
		if _, ok := f.stopTimesByTrip[trip.ID()]; ok {
			ids = append(ids, trip.ID())
		}
	}
	var orphans []model.AgencyAndID
	for tripID := range f.stopTimesByTrip {
		if _, known := f.trips[tripID]; !known {
			orphans = append(orphans, tripID)
		}
	}
	slices.SortFunc(orphans, model.CompareAgencyAndID)
	return append(ids, orphans...)
}

func sortedValues[T model.Identifiable[model.AgencyAndID]](m map[model.AgencyAndID]T) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b T) int {
		return model.CompareAgencyAndID(a.ID(), b.ID())
	})
	return out
}
