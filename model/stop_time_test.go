package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingProxy is backed by a plain stop time and records mutator calls.
type recordingProxy struct {
	*StopTime
	calls []string
}

func newRecordingProxy() *recordingProxy {
	return &recordingProxy{StopTime: NewStopTime()}
}

func (p *recordingProxy) SetStopSequence(stopSequence int) {
	p.calls = append(p.calls, "SetStopSequence")
	p.StopTime.SetStopSequence(stopSequence)
}

func (p *recordingProxy) SetPickupType(pickupType PickupDropOffType) {
	p.calls = append(p.calls, "SetPickupType")
	p.StopTime.SetPickupType(pickupType)
}

func (p *recordingProxy) ClearArrivalTime() {
	p.calls = append(p.calls, "ClearArrivalTime")
	p.StopTime.ClearArrivalTime()
}

func testTripAndStop() (*Trip, *Stop) {
	trip := NewTrip()
	trip.SetID(NewAgencyAndID("1", "trip-a"))
	stop := &Stop{Key: NewAgencyAndID("1", "stop-a"), Name: "Main St"}
	return trip, stop
}

func TestNewStopTimeDefaults(t *testing.T) {
	st := NewStopTime()

	assert.False(t, st.IsArrivalTimeSet())
	assert.False(t, st.IsDepartureTimeSet())
	assert.False(t, st.IsShapeDistTraveledSet())
	assert.Equal(t, MissingValue, st.ArrivalTime())
	assert.Equal(t, MissingValue, st.DepartureTime())
	assert.Equal(t, float64(MissingValue), st.ShapeDistTraveled())
	assert.Equal(t, TimepointApproximate, st.Timepoint())
	assert.Nil(t, st.Proxy())
}

func TestStopTimeSentinelFields(t *testing.T) {
	t.Run("arrival time set and clear", func(t *testing.T) {
		st := NewStopTime()
		for _, v := range []int{0, 1, 86399, 90000} {
			st.SetArrivalTime(v)
			assert.True(t, st.IsArrivalTimeSet(), "value %d", v)
			assert.Equal(t, v, st.ArrivalTime())
		}
		st.ClearArrivalTime()
		assert.False(t, st.IsArrivalTimeSet())
		assert.Equal(t, MissingValue, st.ArrivalTime())
	})

	t.Run("departure time set and clear", func(t *testing.T) {
		st := NewStopTime()
		st.SetDepartureTime(25 * 3600)
		assert.True(t, st.IsDepartureTimeSet())
		assert.Equal(t, 90000, st.DepartureTime())
		st.ClearDepartureTime()
		assert.False(t, st.IsDepartureTimeSet())
	})

	t.Run("shape distance set and clear", func(t *testing.T) {
		st := NewStopTime()
		st.SetShapeDistTraveled(0)
		assert.True(t, st.IsShapeDistTraveledSet())
		st.SetShapeDistTraveled(1523.5)
		assert.Equal(t, 1523.5, st.ShapeDistTraveled())
		st.ClearShapeDistTraveled()
		assert.False(t, st.IsShapeDistTraveledSet())
	})

	t.Run("setting the sentinel reads as unset", func(t *testing.T) {
		st := NewStopTime()
		st.SetArrivalTime(3600)
		st.SetArrivalTime(MissingValue)
		assert.False(t, st.IsArrivalTimeSet())

		st.SetDepartureTime(MissingValue)
		assert.False(t, st.IsDepartureTimeSet())

		st.SetShapeDistTraveled(MissingValue)
		assert.False(t, st.IsShapeDistTraveledSet())
	})
}

func TestStopTimeOutOfDomainValuesStoredVerbatim(t *testing.T) {
	st := NewStopTime()
	st.SetPickupType(PickupDropOffType(17))
	st.SetDropOffType(PickupDropOffType(-4))
	st.SetTimepoint(9)

	assert.Equal(t, PickupDropOffType(17), st.PickupType())
	assert.Equal(t, PickupDropOffType(-4), st.DropOffType())
	assert.Equal(t, 9, st.Timepoint())
}

func TestStopTimeCompareTo(t *testing.T) {
	a := NewStopTime()
	a.SetStopSequence(3)
	b := NewStopTime()
	b.SetStopSequence(7)

	assert.Less(t, a.CompareTo(b), 0)
	assert.Greater(t, b.CompareTo(a), 0)
	assert.Less(t, CompareStopTimes(a, b), 0)

	b.SetStopSequence(3)
	assert.Equal(t, 0, a.CompareTo(b))
	assert.Equal(t, 0, CompareStopTimes(b, a))
}

func TestSortStopTimes(t *testing.T) {
	trip, stop := testTripAndStop()

	var stopTimes []*StopTime
	for i, seq := range []int{10, 20, 15} {
		st := NewStopTime()
		st.SetID(i + 1)
		st.SetTrip(trip)
		st.SetStop(stop)
		st.SetStopSequence(seq)
		stopTimes = append(stopTimes, st)
	}

	SortStopTimes(stopTimes)

	var sequences []int
	for _, st := range stopTimes {
		sequences = append(sequences, st.StopSequence())
	}
	assert.Equal(t, []int{10, 15, 20}, sequences)
}

func TestSortStopTimesKeepsInsertionOrderForTies(t *testing.T) {
	first := NewStopTime()
	first.SetID(1)
	first.SetStopSequence(5)
	second := NewStopTime()
	second.SetID(2)
	second.SetStopSequence(5)
	earlier := NewStopTime()
	earlier.SetID(3)
	earlier.SetStopSequence(1)

	stopTimes := []*StopTime{first, second, earlier}
	SortStopTimes(stopTimes)

	assert.Equal(t, []int{3, 1, 2}, []int{stopTimes[0].ID(), stopTimes[1].ID(), stopTimes[2].ID()})
}

func TestStopTimeSortUsesDelegatedSequence(t *testing.T) {
	plain := NewStopTime()
	plain.SetStopSequence(2)

	delegated := NewStopTime()
	delegated.SetStopSequence(100)
	proxy := NewStopTime()
	proxy.SetStopSequence(1)
	delegated.SetProxy(proxy)

	stopTimes := []*StopTime{plain, delegated}
	SortStopTimes(stopTimes)

	assert.Same(t, delegated, stopTimes[0])
	assert.Same(t, plain, stopTimes[1])
}

func TestStopTimeProxyRedirectsWrites(t *testing.T) {
	st := NewStopTime()
	st.SetStopSequence(7)
	st.SetPickupType(PickupDropOffNone)

	proxy := newRecordingProxy()
	st.SetProxy(proxy)

	st.SetStopSequence(42)

	assert.Equal(t, 42, proxy.StopSequence())
	assert.Equal(t, 42, st.StopSequence())
	assert.Equal(t, 7, st.stopSequence, "own field must stay untouched")
	assert.Equal(t, []string{"SetStopSequence"}, proxy.calls)

	st.SetPickupType(PickupDropOffPhoneAgency)
	assert.Equal(t, PickupDropOffPhoneAgency, proxy.PickupType())
	assert.Equal(t, PickupDropOffNone, st.pickupType, "own field must stay untouched")
}

func TestStopTimeProxyRedirectsEveryAccessor(t *testing.T) {
	trip, stop := testTripAndStop()
	otherTrip := NewTrip()
	otherTrip.SetID(NewAgencyAndID("2", "trip-b"))

	st := NewStopTime()
	st.SetID(1)
	st.SetTrip(otherTrip)

	proxy := NewStopTime()
	st.SetProxy(proxy)

	st.SetID(99)
	st.SetTrip(trip)
	st.SetStop(stop)
	st.SetStopSequence(4)
	st.SetArrivalTime(3600)
	st.SetDepartureTime(3660)
	st.SetTimepoint(TimepointExact)
	st.SetStopHeadsign("Downtown")
	st.SetRouteShortName("7X")
	st.SetPickupType(PickupDropOffCoordinateWithDriver)
	st.SetDropOffType(PickupDropOffNone)
	st.SetShapeDistTraveled(812.25)

	// Every value lives in the proxy.
	assert.Equal(t, 99, proxy.ID())
	assert.Same(t, trip, proxy.Trip())
	assert.Same(t, stop, proxy.Stop())
	assert.Equal(t, 4, proxy.StopSequence())
	assert.Equal(t, 3600, proxy.ArrivalTime())
	assert.Equal(t, 3660, proxy.DepartureTime())
	assert.Equal(t, TimepointExact, proxy.Timepoint())
	assert.Equal(t, "Downtown", proxy.StopHeadsign())
	assert.Equal(t, "7X", proxy.RouteShortName())
	assert.Equal(t, PickupDropOffCoordinateWithDriver, proxy.PickupType())
	assert.Equal(t, PickupDropOffNone, proxy.DropOffType())
	assert.Equal(t, 812.25, proxy.ShapeDistTraveled())

	// And reads come back out of it.
	assert.Equal(t, 99, st.ID())
	assert.Same(t, trip, st.Trip())
	assert.True(t, st.IsArrivalTimeSet())
	assert.True(t, st.IsDepartureTimeSet())
	assert.True(t, st.IsShapeDistTraveledSet())
	assert.Equal(t, "Downtown", st.StopHeadsign())

	// The entity's own fields were never written.
	assert.Equal(t, 1, st.id)
	assert.Same(t, otherTrip, st.trip)
	assert.Nil(t, st.stop)
	assert.Equal(t, MissingValue, st.arrivalTime)
	assert.Equal(t, MissingValue, st.departureTime)
	assert.Equal(t, "", st.stopHeadsign)
	assert.Equal(t, "", st.routeShortName)
	assert.Equal(t, PickupDropOffRegular, st.pickupType)
	assert.Equal(t, float64(MissingValue), st.shapeDistTraveled)

	st.ClearArrivalTime()
	st.ClearDepartureTime()
	st.ClearShapeDistTraveled()
	assert.False(t, proxy.IsArrivalTimeSet())
	assert.False(t, proxy.IsDepartureTimeSet())
	assert.False(t, proxy.IsShapeDistTraveledSet())
}

func TestStopTimeProxyDetach(t *testing.T) {
	st := NewStopTime()
	st.SetStopSequence(1)

	proxy := NewStopTime()
	proxy.SetStopSequence(2)
	st.SetProxy(proxy)
	assert.Equal(t, 2, st.StopSequence())

	st.SetProxy(nil)
	assert.Nil(t, st.Proxy())
	assert.Equal(t, 1, st.StopSequence())
}

func TestStopTimeProxyGetterIsNotRedirected(t *testing.T) {
	inner := NewStopTime()
	middle := NewStopTime()
	middle.SetProxy(inner)

	st := NewStopTime()
	st.SetProxy(middle)

	assert.Same(t, middle, st.Proxy())
}

func TestNewStopTimeFromCopiesRawFieldsOnly(t *testing.T) {
	trip, stop := testTripAndStop()

	st := NewStopTime()
	st.SetID(5)
	st.SetTrip(trip)
	st.SetStop(stop)
	st.SetStopSequence(3)
	st.SetArrivalTime(100)
	st.SetDepartureTime(200)
	st.SetStopHeadsign("raw")
	st.SetShapeDistTraveled(10)

	proxy := NewStopTime()
	proxy.SetID(6)
	proxy.SetStopSequence(30)
	proxy.SetArrivalTime(1000)
	proxy.SetStopHeadsign("delegated")
	st.SetProxy(proxy)

	cp := NewStopTimeFrom(st)

	require.NotNil(t, cp)
	assert.Nil(t, cp.Proxy())
	assert.Equal(t, 5, cp.ID())
	assert.Same(t, trip, cp.Trip())
	assert.Same(t, stop, cp.Stop())
	assert.Equal(t, 3, cp.StopSequence())
	assert.Equal(t, 100, cp.ArrivalTime())
	assert.Equal(t, 200, cp.DepartureTime())
	assert.Equal(t, "raw", cp.StopHeadsign())
	assert.Equal(t, 10.0, cp.ShapeDistTraveled())

	// The source still reads through its proxy.
	assert.Equal(t, 30, st.StopSequence())

	cp.SetStopSequence(4)
	assert.Equal(t, 3, st.stopSequence)
}

func TestStopTimeString(t *testing.T) {
	trip, stop := testTripAndStop()

	st := NewStopTime()
	st.SetTrip(trip)
	st.SetStop(stop)
	st.SetStopSequence(2)
	st.SetArrivalTime(3600)
	st.SetDepartureTime(3630)

	assert.Equal(t, "StopTime(seq=2 stop=1_stop-a trip=1_trip-a times=3600-3630)", st.String())

	proxy := NewStopTimeFrom(st)
	proxy.SetStopSequence(9)
	proxy.SetArrivalTime(7200)
	st.SetProxy(proxy)

	assert.Equal(t, "StopTime(seq=9 stop=1_stop-a trip=1_trip-a times=7200-3630)", st.String())
}

func TestStopTimeStringWithoutReferences(t *testing.T) {
	st := NewStopTime()
	assert.Equal(t, "StopTime(seq=0 stop=<nil> trip=<nil> times=-999--999)", st.String())
}
