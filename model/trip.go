package model

// WheelchairAccessibility is the trips.txt wheelchair_accessible code.
type WheelchairAccessibility int

const (
	WheelchairAccessibilityUnknown WheelchairAccessibility = iota
	WheelchairAccessibilityPossible
	WheelchairAccessibilityNotPossible
)

// BikeAccess is the trips.txt bikes_allowed code.
type BikeAccess int

const (
	BikeAccessUnknown BikeAccess = iota
	BikeAccessAllowed
	BikeAccessNotAllowed
)

// Trip is one scheduled vehicle run along a route.
//
// The route is a non-owning reference into the feed registry. Service and shape
// are referenced by id only.
type Trip struct {
	id                   AgencyAndID
	route                *Route
	serviceID            AgencyAndID
	tripShortName        string
	tripHeadsign         string
	routeShortName       string
	directionID          string
	blockID              string
	shapeID              AgencyAndID
	wheelchairAccessible WheelchairAccessibility
	tripBikesAllowed     BikeAccess
	bikesAllowed         BikeAccess
}

// NewTrip returns an empty trip.
func NewTrip() *Trip {
	return &Trip{}
}

// NewTripFrom returns an independent copy of every field of t.
func NewTripFrom(t *Trip) *Trip {
	return &Trip{
		id:                   t.id,
		route:                t.route,
		serviceID:            t.serviceID,
		tripShortName:        t.tripShortName,
		tripHeadsign:         t.tripHeadsign,
		routeShortName:       t.routeShortName,
		directionID:          t.directionID,
		blockID:              t.blockID,
		shapeID:              t.shapeID,
		wheelchairAccessible: t.wheelchairAccessible,
		tripBikesAllowed:     t.tripBikesAllowed,
		bikesAllowed:         t.bikesAllowed,
	}
}

func (t *Trip) ID() AgencyAndID {
	return t.id
}

func (t *Trip) SetID(id AgencyAndID) {
	t.id = id
}

func (t *Trip) Route() *Route {
	return t.route
}

func (t *Trip) SetRoute(route *Route) {
	t.route = route
}

func (t *Trip) ServiceID() AgencyAndID {
	return t.serviceID
}

func (t *Trip) SetServiceID(serviceID AgencyAndID) {
	t.serviceID = serviceID
}

func (t *Trip) TripShortName() string {
	return t.tripShortName
}

func (t *Trip) SetTripShortName(tripShortName string) {
	t.tripShortName = tripShortName
}

func (t *Trip) TripHeadsign() string {
	return t.tripHeadsign
}

func (t *Trip) SetTripHeadsign(tripHeadsign string) {
	t.tripHeadsign = tripHeadsign
}

func (t *Trip) RouteShortName() string {
	return t.routeShortName
}

func (t *Trip) SetRouteShortName(routeShortName string) {
	t.routeShortName = routeShortName
}

func (t *Trip) DirectionID() string {
	return t.directionID
}

func (t *Trip) SetDirectionID(directionID string) {
	t.directionID = directionID
}

func (t *Trip) BlockID() string {
	return t.blockID
}

func (t *Trip) SetBlockID(blockID string) {
	t.blockID = blockID
}

func (t *Trip) ShapeID() AgencyAndID {
	return t.shapeID
}

func (t *Trip) SetShapeID(shapeID AgencyAndID) {
	t.shapeID = shapeID
}

func (t *Trip) WheelchairAccessible() WheelchairAccessibility {
	return t.wheelchairAccessible
}

func (t *Trip) SetWheelchairAccessible(wheelchairAccessible WheelchairAccessibility) {
	t.wheelchairAccessible = wheelchairAccessible
}

// TripBikesAllowed returns the legacy bikes field.
//
// Deprecated: use BikesAllowed. The two fields are stored independently.
func (t *Trip) TripBikesAllowed() BikeAccess {
	return t.tripBikesAllowed
}

// SetTripBikesAllowed sets the legacy bikes field without touching BikesAllowed.
//
// Deprecated: use SetBikesAllowed.
func (t *Trip) SetTripBikesAllowed(tripBikesAllowed BikeAccess) {
	t.tripBikesAllowed = tripBikesAllowed
}

// BikesAllowed returns 0 = unknown / unspecified, 1 = bikes allowed, 2 = bikes NOT allowed.
func (t *Trip) BikesAllowed() BikeAccess {
	return t.bikesAllowed
}

func (t *Trip) SetBikesAllowed(bikesAllowed BikeAccess) {
	t.bikesAllowed = bikesAllowed
}

func (t *Trip) String() string {
	return "<Trip " + t.ID().String() + ">"
}
