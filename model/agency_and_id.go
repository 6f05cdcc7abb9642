package model

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAgencyAndID is returned when a combined id has no `_` separator.
var ErrInvalidAgencyAndID = errors.New("invalid agency and id")

// AgencyAndID is a composite identifier: an agency namespace plus an id that is
// unique within that agency. It disambiguates entities merged from several feeds.
type AgencyAndID struct {
	AgencyID string
	ID       string
}

// NewAgencyAndID creates a new AgencyAndID with the provided values
func NewAgencyAndID(agencyID, id string) AgencyAndID {
	return AgencyAndID{AgencyID: agencyID, ID: id}
}

// ParseAgencyAndID parses a combined id in the format `{agency_id}_{id}`.
// Only the first `_` separates the parts, so the local id may contain more.
func ParseAgencyAndID(combinedID string) (AgencyAndID, error) {
	parts := strings.SplitN(combinedID, "_", 2)
	if len(parts) != 2 {
		return AgencyAndID{}, fmt.Errorf("%w: %q", ErrInvalidAgencyAndID, combinedID)
	}
	return AgencyAndID{AgencyID: parts[0], ID: parts[1]}, nil
}

// IsZero reports whether neither part is set.
func (a AgencyAndID) IsZero() bool {
	return a.AgencyID == "" && a.ID == ""
}

// HasValues reports whether both parts are set.
func (a AgencyAndID) HasValues() bool {
	return a.AgencyID != "" && a.ID != ""
}

func (a AgencyAndID) String() string {
	if a.IsZero() {
		return ""
	}
	return a.AgencyID + "_" + a.ID
}

// CompareAgencyAndID orders ids by agency, then by local id.
func CompareAgencyAndID(a, b AgencyAndID) int {
	if c := cmp.Compare(a.AgencyID, b.AgencyID); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
