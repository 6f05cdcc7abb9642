package utils

import (
	"errors"
	"regexp"

	"gtfsmodel.onebusaway.org/model"
)

// Allow alphanumeric, underscore, hyphen, dot - common in transit IDs
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ParseCombinedID validates an `{agency_id}_{id}` path parameter and splits it.
func ParseCombinedID(combinedID string) (model.AgencyAndID, error) {
	if err := ValidateID(combinedID); err != nil {
		return model.AgencyAndID{}, err
	}
	return model.ParseAgencyAndID(combinedID)
}
