package models

import "gtfsmodel.onebusaway.org/model"

type Stop struct {
	ID   string   `json:"id"`
	Code string   `json:"code"`
	Name string   `json:"name"`
	Lat  *float64 `json:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty"`
}

func NewStop(stop *model.Stop) Stop {
	return Stop{
		ID:   stop.Key.String(),
		Code: stop.Code,
		Name: stop.Name,
		Lat:  stop.Lat,
		Lon:  stop.Lon,
	}
}
