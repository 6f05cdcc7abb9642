package model

// RouteType is the GTFS route_type code, stored verbatim.
type RouteType int

// Route is the part of a route entity that trips refer to. The full route
// record is owned by the feed registry.
type Route struct {
	Key       AgencyAndID
	ShortName string
	LongName  string
	Type      RouteType
}

func (r *Route) ID() AgencyAndID {
	return r.Key
}
