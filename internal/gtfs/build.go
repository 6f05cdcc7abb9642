package gtfs

import (
	"time"

	"github.com/jamespfennell/gtfs"
	"github.com/sourcegraph/conc/iter"

	"gtfsmodel.onebusaway.org/model"
)

type tripInput struct {
	trip        *gtfs.ScheduledTrip
	firstStopID int
}

type builtTrip struct {
	trip      *model.Trip
	stopTimes []*model.StopTime
}

// BuildFeed converts a parsed static feed into model entities.
//
// Ids are namespaced by the trip's route agency, falling back to the first
// agency in the feed. Stop times get feed-local ids counting from 1 in feed
// order. Trips are converted in parallel; each trip and its stop times are
// built by exactly one goroutine and only added to the Feed afterwards.
func BuildFeed(static *gtfs.Static) *Feed {
	feed := NewFeed()

	defaultAgency := ""
	if len(static.Agencies) > 0 {
		defaultAgency = static.Agencies[0].Id
	}

	for i := range static.Routes {
		route := &static.Routes[i]
		feed.AddRoute(&model.Route{
			Key:       model.NewAgencyAndID(routeAgency(route, defaultAgency), route.Id),
			ShortName: route.ShortName,
			LongName:  route.LongName,
			Type:      model.RouteType(route.Type),
		})
	}

	stopsByRawID := make(map[string]*model.Stop, len(static.Stops))
	for i := range static.Stops {
		stop := &static.Stops[i]
		s := &model.Stop{
			Key:  model.NewAgencyAndID(defaultAgency, stop.Id),
			Code: stop.Code,
			Name: stop.Name,
			Lat:  stop.Latitude,
			Lon:  stop.Longitude,
		}
		stopsByRawID[stop.Id] = s
		feed.AddStop(s)
	}

	inputs := make([]tripInput, len(static.Trips))
	nextID := 1
	for i := range static.Trips {
		inputs[i] = tripInput{trip: &static.Trips[i], firstStopID: nextID}
		nextID += len(static.Trips[i].StopTimes)
	}

	built := iter.Map(inputs, func(in *tripInput) builtTrip {
		return buildTrip(in, feed, stopsByRawID, defaultAgency)
	})

	for _, b := range built {
		feed.AddTrip(b.trip)
		for _, st := range b.stopTimes {
			feed.AddStopTime(st)
		}
	}
	feed.SortStopTimes()

	return feed
}

// buildTrip only reads from feed and stopsByRawID.
func buildTrip(in *tripInput, feed *Feed, stopsByRawID map[string]*model.Stop, defaultAgency string) builtTrip {
	raw := in.trip
	agencyID := defaultAgency

	trip := model.NewTrip()
	if raw.Route != nil {
		agencyID = routeAgency(raw.Route, defaultAgency)
		trip.SetRoute(feed.Route(model.NewAgencyAndID(agencyID, raw.Route.Id)))
	}
	trip.SetID(model.NewAgencyAndID(agencyID, raw.ID))
	if raw.Service != nil {
		trip.SetServiceID(model.NewAgencyAndID(agencyID, raw.Service.Id))
	}
	if raw.Shape != nil {
		trip.SetShapeID(model.NewAgencyAndID(agencyID, raw.Shape.ID))
	}
	trip.SetTripShortName(raw.ShortName)
	trip.SetTripHeadsign(raw.Headsign)
	trip.SetDirectionID(directionID(raw.DirectionId))
	trip.SetBlockID(raw.BlockID)
	trip.SetWheelchairAccessible(model.WheelchairAccessibility(raw.WheelchairAccessible))
	trip.SetBikesAllowed(model.BikeAccess(raw.BikesAllowed))

	stopTimes := make([]*model.StopTime, 0, len(raw.StopTimes))
	for i := range raw.StopTimes {
		rawStopTime := &raw.StopTimes[i]

		st := model.NewStopTime()
		st.SetID(in.firstStopID + i)
		st.SetTrip(trip)
		if rawStopTime.Stop != nil {
			st.SetStop(stopsByRawID[rawStopTime.Stop.Id])
		}
		st.SetStopSequence(rawStopTime.StopSequence)
		st.SetArrivalTime(toSeconds(rawStopTime.ArrivalTime))
		st.SetDepartureTime(toSeconds(rawStopTime.DepartureTime))
		st.SetStopHeadsign(rawStopTime.Headsign)
		st.SetPickupType(model.PickupDropOffType(rawStopTime.PickupType))
		st.SetDropOffType(model.PickupDropOffType(rawStopTime.DropOffType))
		if rawStopTime.ShapeDistanceTraveled != nil {
			st.SetShapeDistTraveled(*rawStopTime.ShapeDistanceTraveled)
		}
		if rawStopTime.ExactTimes {
			st.SetTimepoint(model.TimepointExact)
		} else {
			st.SetTimepoint(model.TimepointApproximate)
		}
		stopTimes = append(stopTimes, st)
	}

	return builtTrip{trip: trip, stopTimes: stopTimes}
}

func routeAgency(route *gtfs.Route, defaultAgency string) string {
	if route.Agency != nil && route.Agency.Id != "" {
		return route.Agency.Id
	}
	return defaultAgency
}

// directionID maps the parser's direction enum back to the trips.txt value.
func directionID(d gtfs.DirectionID) string {
	switch d {
	case gtfs.DirectionID_True:
		return "1"
	case gtfs.DirectionID_False:
		return "0"
	default:
		return ""
	}
}

func toSeconds(d time.Duration) int {
	return int(d / time.Second)
}
