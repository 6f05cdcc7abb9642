package model

// StopTimeProxy is the full read/write surface of a stop time. A StopTime with
// an attached proxy forwards every call to it, which lets a compaction pass move
// the record's storage elsewhere while existing *StopTime references keep
// working.
type StopTimeProxy interface {
	Identifiable[int]
	SetID(id int)

	Trip() *Trip
	SetTrip(trip *Trip)

	Stop() *Stop
	SetStop(stop *Stop)

	StopSequence() int
	SetStopSequence(stopSequence int)

	IsArrivalTimeSet() bool
	ArrivalTime() int
	SetArrivalTime(arrivalTime int)
	ClearArrivalTime()

	IsDepartureTimeSet() bool
	DepartureTime() int
	SetDepartureTime(departureTime int)
	ClearDepartureTime()

	Timepoint() int
	SetTimepoint(timepoint int)

	StopHeadsign() string
	SetStopHeadsign(headsign string)

	RouteShortName() string
	SetRouteShortName(routeShortName string)

	PickupType() PickupDropOffType
	SetPickupType(pickupType PickupDropOffType)

	DropOffType() PickupDropOffType
	SetDropOffType(dropOffType PickupDropOffType)

	IsShapeDistTraveledSet() bool
	ShapeDistTraveled() float64
	SetShapeDistTraveled(shapeDistTraveled float64)
	ClearShapeDistTraveled()
}

var _ StopTimeProxy = (*StopTime)(nil)
