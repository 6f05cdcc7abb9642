package compact

import (
	"gtfsmodel.onebusaway.org/model"
)

// Row is a view of one StopTimeTable row. It implements model.StopTimeProxy.
type Row struct {
	table *StopTimeTable
	index int
}

var _ model.StopTimeProxy = (*Row)(nil)

// Index returns the row's position in its table.
func (r *Row) Index() int {
	return r.index
}

func (r *Row) ID() int {
	return r.table.ids[r.index]
}

func (r *Row) SetID(id int) {
	r.table.ids[r.index] = id
}

func (r *Row) Trip() *model.Trip {
	return r.table.trips[r.index]
}

func (r *Row) SetTrip(trip *model.Trip) {
	r.table.trips[r.index] = trip
}

func (r *Row) Stop() *model.Stop {
	return r.table.stops[r.index]
}

func (r *Row) SetStop(stop *model.Stop) {
	r.table.stops[r.index] = stop
}

func (r *Row) StopSequence() int {
	return r.table.stopSequences[r.index]
}

func (r *Row) SetStopSequence(stopSequence int) {
	r.table.stopSequences[r.index] = stopSequence
}

func (r *Row) IsArrivalTimeSet() bool {
	return r.table.arrivalTimes[r.index] != model.MissingValue
}

func (r *Row) ArrivalTime() int {
	return r.table.arrivalTimes[r.index]
}

func (r *Row) SetArrivalTime(arrivalTime int) {
	r.table.arrivalTimes[r.index] = arrivalTime
}

func (r *Row) ClearArrivalTime() {
	r.table.arrivalTimes[r.index] = model.MissingValue
}

func (r *Row) IsDepartureTimeSet() bool {
	return r.table.departureTimes[r.index] != model.MissingValue
}

func (r *Row) DepartureTime() int {
	return r.table.departureTimes[r.index]
}

func (r *Row) SetDepartureTime(departureTime int) {
	r.table.departureTimes[r.index] = departureTime
}

func (r *Row) ClearDepartureTime() {
	r.table.departureTimes[r.index] = model.MissingValue
}

func (r *Row) Timepoint() int {
	return r.table.timepoints[r.index]
}

func (r *Row) SetTimepoint(timepoint int) {
	r.table.timepoints[r.index] = timepoint
}

func (r *Row) StopHeadsign() string {
	return r.table.strings.get(r.table.stopHeadsigns[r.index])
}

func (r *Row) SetStopHeadsign(headsign string) {
	r.table.stopHeadsigns[r.index] = r.table.strings.intern(headsign)
}

func (r *Row) RouteShortName() string {
	return r.table.strings.get(r.table.routeShortNames[r.index])
}

func (r *Row) SetRouteShortName(routeShortName string) {
	r.table.routeShortNames[r.index] = r.table.strings.intern(routeShortName)
}

func (r *Row) PickupType() model.PickupDropOffType {
	return r.table.pickupTypes[r.index]
}

func (r *Row) SetPickupType(pickupType model.PickupDropOffType) {
	r.table.pickupTypes[r.index] = pickupType
}

func (r *Row) DropOffType() model.PickupDropOffType {
	return r.table.dropOffTypes[r.index]
}

func (r *Row) SetDropOffType(dropOffType model.PickupDropOffType) {
	r.table.dropOffTypes[r.index] = dropOffType
}

func (r *Row) IsShapeDistTraveledSet() bool {
	return r.table.shapeDistTraveled[r.index] != model.MissingValue
}

func (r *Row) ShapeDistTraveled() float64 {
	return r.table.shapeDistTraveled[r.index]
}

func (r *Row) SetShapeDistTraveled(shapeDistTraveled float64) {
	r.table.shapeDistTraveled[r.index] = shapeDistTraveled
}

func (r *Row) ClearShapeDistTraveled() {
	r.table.shapeDistTraveled[r.index] = model.MissingValue
}
