package app

import (
	"go.uber.org/zap"

	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/weather"
)

// New opens the store described by cfg and builds the weather lookup from
// its location and weather settings. A nil cfg loads the default
// configuration.
func New(cfg *store.Settings, log *zap.Logger) (*Service, error) {
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	p, err := store.Open(cfg, log)
	if err != nil {
		return nil, err
	}
	return &Service{
		Persistence: p,
		Locator:     LocatorFor(cfg),
		Provider:    weather.NewOpenWeather(cfg.WeatherAPIKey, cfg.WeatherBaseURL, nil),
		Logger:      log,
		DateLayout:  cfg.DateLayout,
	}, nil
}

// LocatorFor picks the geolocation source for the configured mode.
func LocatorFor(cfg *store.Settings) weather.Locator {
	switch cfg.LocationMode {
	case store.LocationOff:
		return weather.NoLocator{Reason: weather.LocationDenied}
	case store.LocationIP:
		return weather.IPLocator{URL: cfg.LookupURL}
	default:
		if !cfg.HasCoordinates() {
			return weather.NoLocator{Reason: weather.LocationUnsupported}
		}
		return weather.StaticLocator{At: weather.Coordinates{Lat: *cfg.Lat, Lon: *cfg.Lon}}
	}
}
