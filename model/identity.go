package model

// Identifiable is implemented by every entity and exposes its key.
type Identifiable[K comparable] interface {
	ID() K
}

var (
	_ Identifiable[AgencyAndID] = (*Trip)(nil)
	_ Identifiable[AgencyAndID] = (*Route)(nil)
	_ Identifiable[AgencyAndID] = (*Stop)(nil)
	_ Identifiable[int]         = (*StopTime)(nil)
)
