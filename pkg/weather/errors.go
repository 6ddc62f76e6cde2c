package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrWeatherFetch matches every failure of Provider.Fetch.
	ErrWeatherFetch = errors.New("weather: fetch failed")
	// ErrLocation matches every failure of Locator.Locate.
	ErrLocation = errors.New("weather: location unavailable")
)

// NetworkError is a transport failure or a non-success response.
type NetworkError struct {
	StatusCode int // zero for transport failures
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("weather: service returned %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("weather: network: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrWeatherFetch }

// ParseError means the response could not be normalized into a Snapshot.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("weather: parse response: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrWeatherFetch }

// LocationReason classifies a LocationError.
type LocationReason string

const (
	LocationDenied      LocationReason = "denied"
	LocationUnsupported LocationReason = "unsupported"
	LocationFailed      LocationReason = "failed"
)

// LocationError is returned by a Locator that cannot produce coordinates.
type LocationError struct {
	Reason LocationReason
	Err    error
}

func (e *LocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("weather: location %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("weather: location %s", e.Reason)
}

func (e *LocationError) Unwrap() error { return e.Err }

func (e *LocationError) Is(target error) bool { return target == ErrLocation }

// Message is the banner text shown to the user for a weather or location
// failure.
func Message(err error) string {
	var le *LocationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &le):
		switch le.Reason {
		case LocationUnsupported:
			return "Location is not configured. Set location.lat and location.lon, or location.mode: ip."
		case LocationDenied:
			return "Location services are turned off; entries will be saved without weather."
		default:
			return "Failed to get your location. Entries will be saved without weather."
		}
	case errors.Is(err, ErrWeatherFetch):
		return "Failed to fetch weather data."
	default:
		return err.Error()
	}
}
