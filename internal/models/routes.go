package models

import "gtfsmodel.onebusaway.org/model"

type Route struct {
	ID        string `json:"id"`
	AgencyID  string `json:"agencyId"`
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
	Type      int    `json:"type"`
}

func NewRoute(route *model.Route) Route {
	return Route{
		ID:        route.Key.String(),
		AgencyID:  route.Key.AgencyID,
		ShortName: route.ShortName,
		LongName:  route.LongName,
		Type:      int(route.Type),
	}
}
