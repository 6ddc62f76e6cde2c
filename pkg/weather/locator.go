package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// DefaultIPLookupURL answers with the caller's approximate coordinates.
const DefaultIPLookupURL = "http://ip-api.com/json"

// Locator is the one-shot geolocation collaborator.
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// StaticLocator always answers with the configured coordinates.
type StaticLocator struct {
	At Coordinates
}

func (s StaticLocator) Locate(context.Context) (Coordinates, error) {
	return s.At, nil
}

// NoLocator always fails with the given reason.
type NoLocator struct {
	Reason LocationReason
}

func (n NoLocator) Locate(context.Context) (Coordinates, error) {
	return Coordinates{}, &LocationError{Reason: n.Reason}
}

// IPLocator derives coordinates from the public IP address.
type IPLocator struct {
	URL    string
	Client *http.Client
}

type ipLookup struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

func (l IPLocator) Locate(ctx context.Context) (Coordinates, error) {
	u := l.URL
	if u == "" {
		u = DefaultIPLookupURL
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Coordinates{}, &LocationError{Reason: LocationFailed, Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return Coordinates{}, &LocationError{Reason: LocationFailed, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, &LocationError{Reason: LocationFailed, Err: fmt.Errorf("lookup returned %d", resp.StatusCode)}
	}
	var body ipLookup
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Coordinates{}, &LocationError{Reason: LocationFailed, Err: err}
	}
	if body.Status != "" && body.Status != "success" {
		return Coordinates{}, &LocationError{Reason: LocationFailed, Err: errors.New(body.Message)}
	}
	if body.Lat == nil || body.Lon == nil {
		return Coordinates{}, &LocationError{Reason: LocationFailed, Err: errors.New("lookup returned no coordinates")}
	}
	return Coordinates{Lat: *body.Lat, Lon: *body.Lon}, nil
}

// Lookup locates and then fetches. When locating fails the provider is not
// called.
func Lookup(ctx context.Context, l Locator, p Provider) (Snapshot, error) {
	if l == nil {
		return Snapshot{}, &LocationError{Reason: LocationUnsupported}
	}
	at, err := l.Locate(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	if p == nil {
		return Snapshot{}, &NetworkError{Err: errors.New("no weather provider configured")}
	}
	return p.Fetch(ctx, at)
}
