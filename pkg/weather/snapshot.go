// Package weather fetches the ambient conditions attached to new entries.
package weather

import (
	"fmt"
	"strconv"
)

// Snapshot is a point-in-time reading. It is copied into an entry when the
// entry is created and never refreshed afterwards.
type Snapshot struct {
	Temperature float64 `json:"temperature"` // Celsius
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Location    string  `json:"location"`
}

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}

// FormatTemperature renders a Celsius value with the shortest decimal form,
// e.g. 21.5°C or 20°C.
func FormatTemperature(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "°C"
}

// String renders "Clear, 21.5°C in Berlin".
func (s Snapshot) String() string {
	line := fmt.Sprintf("%s, %s", s.Condition, FormatTemperature(s.Temperature))
	if s.Location != "" {
		line += " in " + s.Location
	}
	return line
}
