package models

import "gtfsmodel.onebusaway.org/model"

type Trip struct {
	BlockID              string `json:"blockId"`
	DirectionID          string `json:"directionId"`
	ID                   string `json:"id"`
	RouteID              string `json:"routeId"`
	RouteShortName       string `json:"routeShortName"`
	ServiceID            string `json:"serviceId"`
	ShapeID              string `json:"shapeId"`
	TripHeadsign         string `json:"tripHeadsign"`
	TripShortName        string `json:"tripShortName"`
	WheelchairAccessible int    `json:"wheelchairAccessible"`
	BikesAllowed         int    `json:"bikesAllowed"`
}

// NewTrip renders a trip. Block ids are namespaced by the trip's agency.
func NewTrip(trip *model.Trip) Trip {
	t := Trip{
		DirectionID:          trip.DirectionID(),
		ID:                   trip.ID().String(),
		RouteShortName:       trip.RouteShortName(),
		ServiceID:            trip.ServiceID().String(),
		ShapeID:              trip.ShapeID().String(),
		TripHeadsign:         trip.TripHeadsign(),
		TripShortName:        trip.TripShortName(),
		WheelchairAccessible: int(trip.WheelchairAccessible()),
		BikesAllowed:         int(trip.BikesAllowed()),
	}
	if trip.BlockID() != "" {
		t.BlockID = model.NewAgencyAndID(trip.ID().AgencyID, trip.BlockID()).String()
	}
	if route := trip.Route(); route != nil {
		t.RouteID = route.Key.String()
		if t.RouteShortName == "" {
			t.RouteShortName = route.ShortName
		}
	}
	return t
}
