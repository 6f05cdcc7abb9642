package compact

import (
	"gtfsmodel.onebusaway.org/model"
)

// StopTimeTable stores stop times column by column. Row indexes are stable:
// rows are only ever appended.
//
// Like the model entities, a table is not safe for concurrent writes.
type StopTimeTable struct {
	ids               []int
	trips             []*model.Trip
	stops             []*model.Stop
	stopSequences     []int
	arrivalTimes      []int
	departureTimes    []int
	timepoints        []int
	stopHeadsigns     []uint32
	routeShortNames   []uint32
	pickupTypes       []model.PickupDropOffType
	dropOffTypes      []model.PickupDropOffType
	shapeDistTraveled []float64

	strings *stringTable
}

// NewStopTimeTable creates a table with room for capacity rows.
func NewStopTimeTable(capacity int) *StopTimeTable {
	return &StopTimeTable{
		ids:               make([]int, 0, capacity),
		trips:             make([]*model.Trip, 0, capacity),
		stops:             make([]*model.Stop, 0, capacity),
		stopSequences:     make([]int, 0, capacity),
		arrivalTimes:      make([]int, 0, capacity),
		departureTimes:    make([]int, 0, capacity),
		timepoints:        make([]int, 0, capacity),
		stopHeadsigns:     make([]uint32, 0, capacity),
		routeShortNames:   make([]uint32, 0, capacity),
		pickupTypes:       make([]model.PickupDropOffType, 0, capacity),
		dropOffTypes:      make([]model.PickupDropOffType, 0, capacity),
		shapeDistTraveled: make([]float64, 0, capacity),
		strings:           newStringTable(),
	}
}

// Len returns the number of rows.
func (t *StopTimeTable) Len() int {
	return len(t.ids)
}

// InternedStrings returns the number of distinct non-empty strings stored.
func (t *StopTimeTable) InternedStrings() int {
	return t.strings.len()
}

// Append copies the current values of st into a new row and returns its index.
// Values are read through st's accessors, so an already delegated stop time
// contributes its effective values.
func (t *StopTimeTable) Append(st *model.StopTime) int {
	t.ids = append(t.ids, st.ID())
	t.trips = append(t.trips, st.Trip())
	t.stops = append(t.stops, st.Stop())
	t.stopSequences = append(t.stopSequences, st.StopSequence())
	t.arrivalTimes = append(t.arrivalTimes, st.ArrivalTime())
	t.departureTimes = append(t.departureTimes, st.DepartureTime())
	t.timepoints = append(t.timepoints, st.Timepoint())
	t.stopHeadsigns = append(t.stopHeadsigns, t.strings.intern(st.StopHeadsign()))
	t.routeShortNames = append(t.routeShortNames, t.strings.intern(st.RouteShortName()))
	t.pickupTypes = append(t.pickupTypes, st.PickupType())
	t.dropOffTypes = append(t.dropOffTypes, st.DropOffType())
	t.shapeDistTraveled = append(t.shapeDistTraveled, st.ShapeDistTraveled())
	return len(t.ids) - 1
}

// Row returns a proxy view of row i. It panics if i is out of range.
func (t *StopTimeTable) Row(i int) *Row {
	if i < 0 || i >= t.Len() {
		panic("compact: row index out of range")
	}
	return &Row{table: t, index: i}
}

// StopTime returns a new stop time bound to row i. Its own fields are left at
// their defaults; every read and write goes to the table.
func (t *StopTimeTable) StopTime(i int) *model.StopTime {
	st := model.NewStopTime()
	st.SetProxy(t.Row(i))
	return st
}

// Compact appends every stop time to a new table and binds each one to its row.
// References held before the call keep reading and writing the same values.
func Compact(stopTimes []*model.StopTime) *StopTimeTable {
	table := NewStopTimeTable(len(stopTimes))
	for _, st := range stopTimes {
		i := table.Append(st)
		st.SetProxy(table.Row(i))
	}
	return table
}
