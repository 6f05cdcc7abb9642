package model

// Stop is the part of a stop entity that stop times refer to.
// Lat and Lon are nil when the feed omits them.
type Stop struct {
	Key  AgencyAndID
	Code string
	Name string
	Lat  *float64
	Lon  *float64
}

func (s *Stop) ID() AgencyAndID {
	return s.Key
}
