package utils

import (
	"errors"
	"regexp"
)

// Row keys are ISO3 codes or proxy labels; labels may carry spaces,
// parentheses and the odd apostrophe, nothing else.
var validKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9 _.()&',-]+$`)

// ValidateKey validates that a country key or label is safe and within
// reasonable limits.
func ValidateKey(key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if len(key) > 100 {
		return errors.New("key too long (max 100 characters)")
	}

	if !validKeyPattern.MatchString(key) {
		return errors.New("key contains invalid characters")
	}

	return nil
}

// ValidateLatitude validates latitude values
func ValidateLatitude(lat float64) error {
	if lat < -90.0 || lat > 90.0 {
		return errors.New("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude validates longitude values
func ValidateLongitude(lon float64) error {
	if lon < -180.0 || lon > 180.0 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// ValidateCoordinateParams validates a lat/lon pair, collecting field
// errors.
func ValidateCoordinateParams(lat, lon float64) map[string][]string {
	fieldErrors := make(map[string][]string)

	if err := ValidateLatitude(lat); err != nil {
		fieldErrors["lat"] = append(fieldErrors["lat"], err.Error())
	}

	if err := ValidateLongitude(lon); err != nil {
		fieldErrors["lon"] = append(fieldErrors["lon"], err.Error())
	}

	return fieldErrors
}
