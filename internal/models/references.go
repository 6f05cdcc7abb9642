package models

// ReferencesModel References model for related data
type ReferencesModel struct {
	Routes []Route `json:"routes"`
	Stops  []Stop  `json:"stops"`
	Trips  []Trip  `json:"trips"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Routes: []Route{},
		Stops:  []Stop{},
		Trips:  []Trip{},
	}
}

// AddRoute appends route unless a route with the same id is already referenced.
func (r *ReferencesModel) AddRoute(route Route) {
	for _, existing := range r.Routes {
		if existing.ID == route.ID {
			return
		}
	}
	r.Routes = append(r.Routes, route)
}

// AddStop appends stop unless a stop with the same id is already referenced.
func (r *ReferencesModel) AddStop(stop Stop) {
	for _, existing := range r.Stops {
		if existing.ID == stop.ID {
			return
		}
	}
	r.Stops = append(r.Stops, stop)
}
