package models

import "gtfsmodel.onebusaway.org/model"

type StopTimes struct {
	TripID    string     `json:"tripId"`
	StopTimes []StopTime `json:"stopTimes"`
}

// StopTime is the wire form of a stop time. Unset times and distances are
// omitted rather than rendered as the missing-value sentinel.
type StopTime struct {
	ID                int      `json:"id"`
	StopID            string   `json:"stopId"`
	StopSequence      int      `json:"stopSequence"`
	ArrivalTime       *int     `json:"arrivalTime,omitempty"`
	DepartureTime     *int     `json:"departureTime,omitempty"`
	Timepoint         int      `json:"timepoint"`
	StopHeadsign      string   `json:"stopHeadsign,omitempty"`
	RouteShortName    string   `json:"routeShortName,omitempty"`
	PickupType        int      `json:"pickupType"`
	DropOffType       int      `json:"dropOffType"`
	DistanceAlongTrip *float64 `json:"distanceAlongTrip,omitempty"`
}

func NewStopTime(st *model.StopTime) StopTime {
	out := StopTime{
		ID:             st.ID(),
		StopSequence:   st.StopSequence(),
		Timepoint:      st.Timepoint(),
		StopHeadsign:   st.StopHeadsign(),
		RouteShortName: st.RouteShortName(),
		PickupType:     int(st.PickupType()),
		DropOffType:    int(st.DropOffType()),
	}
	if stop := st.Stop(); stop != nil {
		out.StopID = stop.Key.String()
	}
	if st.IsArrivalTimeSet() {
		arrival := st.ArrivalTime()
		out.ArrivalTime = &arrival
	}
	if st.IsDepartureTimeSet() {
		departure := st.DepartureTime()
		out.DepartureTime = &departure
	}
	if st.IsShapeDistTraveledSet() {
		dist := st.ShapeDistTraveled()
		out.DistanceAlongTrip = &dist
	}
	return out
}

func NewStopTimes(tripID model.AgencyAndID, stopTimes []*model.StopTime) StopTimes {
	out := StopTimes{
		TripID:    tripID.String(),
		StopTimes: make([]StopTime, 0, len(stopTimes)),
	}
	for _, st := range stopTimes {
		out.StopTimes = append(out.StopTimes, NewStopTime(st))
	}
	return out
}
