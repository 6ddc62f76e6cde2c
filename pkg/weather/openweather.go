package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the OpenWeatherMap API root.
const DefaultBaseURL = "https://api.openweathermap.org"

// Provider produces a Snapshot for a location.
type Provider interface {
	Fetch(ctx context.Context, at Coordinates) (Snapshot, error)
}

// OpenWeather queries the OpenWeatherMap current weather endpoint with
// metric units.
type OpenWeather struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

var _ Provider = (*OpenWeather)(nil)

// NewOpenWeather returns a provider for the given key. An empty baseURL
// selects DefaultBaseURL.
func NewOpenWeather(apiKey, baseURL string, client *http.Client) *OpenWeather {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OpenWeather{APIKey: apiKey, BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

type owmResponse struct {
	Name string `json:"name"`
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// Fetch performs a single request. There are no retries; callers bound the
// call through ctx.
func (o *OpenWeather) Fetch(ctx context.Context, at Coordinates) (Snapshot, error) {
	if o.APIKey == "" {
		return Snapshot{}, &NetworkError{Err: errors.New("no API key configured")}
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	q.Set("units", "metric")
	q.Set("appid", o.APIKey)
	endpoint := o.BaseURL + "/data/2.5/weather?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Snapshot{}, &NetworkError{Err: err}
	}
	resp, err := o.Client.Do(req)
	if err != nil {
		return Snapshot{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Snapshot{}, &NetworkError{StatusCode: resp.StatusCode, Err: errors.New("weather data not available")}
	}

	return decodeOpenWeather(resp.Body)
}

func decodeOpenWeather(r io.Reader) (Snapshot, error) {
	var body owmResponse
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return Snapshot{}, &ParseError{Err: err}
	}
	if body.Main == nil || body.Main.Temp == nil {
		return Snapshot{}, &ParseError{Err: errors.New("missing main.temp")}
	}
	if len(body.Weather) == 0 {
		return Snapshot{}, &ParseError{Err: fmt.Errorf("missing weather conditions")}
	}
	w := body.Weather[0]
	return Snapshot{
		Temperature: *body.Main.Temp,
		Condition:   w.Main,
		Description: w.Description,
		Icon:        w.Icon,
		Location:    body.Name,
	}, nil
}
