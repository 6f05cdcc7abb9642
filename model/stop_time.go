package model

import (
	"fmt"
	"slices"
)

// MissingValue marks an unset arrival time, departure time or shape distance.
// Valid times and distances are never negative.
const MissingValue = -999

// PickupDropOffType is the stop_times.txt pickup_type / drop_off_type code.
// Values outside the known set are stored verbatim.
type PickupDropOffType int

const (
	PickupDropOffRegular PickupDropOffType = iota
	PickupDropOffNone
	PickupDropOffPhoneAgency
	PickupDropOffCoordinateWithDriver
)

const (
	// TimepointApproximate marks an interpolated time.
	TimepointApproximate = 0
	// TimepointExact marks a time the vehicle is scheduled to hold to.
	TimepointExact = 1
)

// StopTime is one scheduled visit of a trip at a stop.
//
// Use NewStopTime rather than the zero value: a zero StopTime reads arrival and
// departure 00:00:00 as set. When a proxy is attached every accessor and mutator
// is routed to it and the fields below are left untouched.
type StopTime struct {
	id                int
	trip              *Trip
	stop              *Stop
	arrivalTime       int
	departureTime     int
	timepoint         int
	stopSequence      int
	stopHeadsign      string
	routeShortName    string
	pickupType        PickupDropOffType
	dropOffType       PickupDropOffType
	shapeDistTraveled float64

	proxy StopTimeProxy
}

// NewStopTime returns a stop time with no arrival, departure or shape distance.
func NewStopTime() *StopTime {
	return &StopTime{
		arrivalTime:       MissingValue,
		departureTime:     MissingValue,
		shapeDistTraveled: MissingValue,
	}
}

// NewStopTimeFrom copies the raw fields of st. The proxy is neither copied nor
// consulted, so the result is always a plain stop time holding st's own values.
func NewStopTimeFrom(st *StopTime) *StopTime {
	return &StopTime{
		id:                st.id,
		trip:              st.trip,
		stop:              st.stop,
		arrivalTime:       st.arrivalTime,
		departureTime:     st.departureTime,
		timepoint:         st.timepoint,
		stopSequence:      st.stopSequence,
		stopHeadsign:      st.stopHeadsign,
		routeShortName:    st.routeShortName,
		pickupType:        st.pickupType,
		dropOffType:       st.dropOffType,
		shapeDistTraveled: st.shapeDistTraveled,
	}
}

func (st *StopTime) ID() int {
	if st.proxy != nil {
		return st.proxy.ID()
	}
	return st.id
}

func (st *StopTime) SetID(id int) {
	if st.proxy != nil {
		st.proxy.SetID(id)
		return
	}
	st.id = id
}

func (st *StopTime) Trip() *Trip {
	if st.proxy != nil {
		return st.proxy.Trip()
	}
	return st.trip
}

func (st *StopTime) SetTrip(trip *Trip) {
	if st.proxy != nil {
		st.proxy.SetTrip(trip)
		return
	}
	st.trip = trip
}

func (st *StopTime) Stop() *Stop {
	if st.proxy != nil {
		return st.proxy.Stop()
	}
	return st.stop
}

func (st *StopTime) SetStop(stop *Stop) {
	if st.proxy != nil {
		st.proxy.SetStop(stop)
		return
	}
	st.stop = stop
}

func (st *StopTime) StopSequence() int {
	if st.proxy != nil {
		return st.proxy.StopSequence()
	}
	return st.stopSequence
}

func (st *StopTime) SetStopSequence(stopSequence int) {
	if st.proxy != nil {
		st.proxy.SetStopSequence(stopSequence)
		return
	}
	st.stopSequence = stopSequence
}

func (st *StopTime) IsArrivalTimeSet() bool {
	if st.proxy != nil {
		return st.proxy.IsArrivalTimeSet()
	}
	return st.arrivalTime != MissingValue
}

// ArrivalTime returns seconds since midnight, or MissingValue when unset.
func (st *StopTime) ArrivalTime() int {
	if st.proxy != nil {
		return st.proxy.ArrivalTime()
	}
	return st.arrivalTime
}

func (st *StopTime) SetArrivalTime(arrivalTime int) {
	if st.proxy != nil {
		st.proxy.SetArrivalTime(arrivalTime)
		return
	}
	st.arrivalTime = arrivalTime
}

func (st *StopTime) ClearArrivalTime() {
	if st.proxy != nil {
		st.proxy.ClearArrivalTime()
		return
	}
	st.arrivalTime = MissingValue
}

func (st *StopTime) IsDepartureTimeSet() bool {
	if st.proxy != nil {
		return st.proxy.IsDepartureTimeSet()
	}
	return st.departureTime != MissingValue
}

// DepartureTime returns seconds since midnight, or MissingValue when unset.
func (st *StopTime) DepartureTime() int {
	if st.proxy != nil {
		return st.proxy.DepartureTime()
	}
	return st.departureTime
}

func (st *StopTime) SetDepartureTime(departureTime int) {
	if st.proxy != nil {
		st.proxy.SetDepartureTime(departureTime)
		return
	}
	st.departureTime = departureTime
}

func (st *StopTime) ClearDepartureTime() {
	if st.proxy != nil {
		st.proxy.ClearDepartureTime()
		return
	}
	st.departureTime = MissingValue
}

// Timepoint returns TimepointExact if the stop time is a timepoint location.
func (st *StopTime) Timepoint() int {
	if st.proxy != nil {
		return st.proxy.Timepoint()
	}
	return st.timepoint
}

func (st *StopTime) SetTimepoint(timepoint int) {
	if st.proxy != nil {
		st.proxy.SetTimepoint(timepoint)
		return
	}
	st.timepoint = timepoint
}

func (st *StopTime) StopHeadsign() string {
	if st.proxy != nil {
		return st.proxy.StopHeadsign()
	}
	return st.stopHeadsign
}

func (st *StopTime) SetStopHeadsign(headsign string) {
	if st.proxy != nil {
		st.proxy.SetStopHeadsign(headsign)
		return
	}
	st.stopHeadsign = headsign
}

// RouteShortName overrides the route's short name at this stop, for routes
// that branch within one trip.
func (st *StopTime) RouteShortName() string {
	if st.proxy != nil {
		return st.proxy.RouteShortName()
	}
	return st.routeShortName
}

func (st *StopTime) SetRouteShortName(routeShortName string) {
	if st.proxy != nil {
		st.proxy.SetRouteShortName(routeShortName)
		return
	}
	st.routeShortName = routeShortName
}

func (st *StopTime) PickupType() PickupDropOffType {
	if st.proxy != nil {
		return st.proxy.PickupType()
	}
	return st.pickupType
}

func (st *StopTime) SetPickupType(pickupType PickupDropOffType) {
	if st.proxy != nil {
		st.proxy.SetPickupType(pickupType)
		return
	}
	st.pickupType = pickupType
}

func (st *StopTime) DropOffType() PickupDropOffType {
	if st.proxy != nil {
		return st.proxy.DropOffType()
	}
	return st.dropOffType
}

func (st *StopTime) SetDropOffType(dropOffType PickupDropOffType) {
	if st.proxy != nil {
		st.proxy.SetDropOffType(dropOffType)
		return
	}
	st.dropOffType = dropOffType
}

func (st *StopTime) IsShapeDistTraveledSet() bool {
	if st.proxy != nil {
		return st.proxy.IsShapeDistTraveledSet()
	}
	return st.shapeDistTraveled != MissingValue
}

func (st *StopTime) ShapeDistTraveled() float64 {
	if st.proxy != nil {
		return st.proxy.ShapeDistTraveled()
	}
	return st.shapeDistTraveled
}

func (st *StopTime) SetShapeDistTraveled(shapeDistTraveled float64) {
	if st.proxy != nil {
		st.proxy.SetShapeDistTraveled(shapeDistTraveled)
		return
	}
	st.shapeDistTraveled = shapeDistTraveled
}

func (st *StopTime) ClearShapeDistTraveled() {
	if st.proxy != nil {
		st.proxy.ClearShapeDistTraveled()
		return
	}
	st.shapeDistTraveled = MissingValue
}

// SetProxy redirects all interactions with this stop time through proxy.
// Passing nil restores direct field access.
func (st *StopTime) SetProxy(proxy StopTimeProxy) {
	st.proxy = proxy
}

// Proxy returns the attached proxy, or nil.
func (st *StopTime) Proxy() StopTimeProxy {
	return st.proxy
}

// CompareTo orders stop times by stop sequence. Equal sequences compare as 0.
func (st *StopTime) CompareTo(o *StopTime) int {
	return st.StopSequence() - o.StopSequence()
}

// CompareStopTimes is CompareTo in the form expected by the slices package.
func CompareStopTimes(a, b *StopTime) int {
	return a.CompareTo(b)
}

// SortStopTimes sorts stop times by stop sequence. The sort is stable, so stop
// times sharing a sequence keep their order in the slice.
func SortStopTimes(stopTimes []*StopTime) {
	slices.SortStableFunc(stopTimes, CompareStopTimes)
}

func (st *StopTime) String() string {
	stopID := "<nil>"
	if stop := st.Stop(); stop != nil {
		stopID = stop.ID().String()
	}
	tripID := "<nil>"
	if trip := st.Trip(); trip != nil {
		tripID = trip.ID().String()
	}
	return fmt.Sprintf("StopTime(seq=%d stop=%s trip=%s times=%d-%d)",
		st.StopSequence(), stopID, tripID, st.ArrivalTime(), st.DepartureTime())
}
