package store

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the journal on disk.
type Config interface {
	BasePath() string
}

// Location modes understood by Settings.LocationMode.
const (
	LocationConfig = "config"
	LocationIP     = "ip"
	LocationOff    = "off"
)

// Settings is the resolved configuration for a mood invocation.
type Settings struct {
	Path string `json:"path"`

	WeatherAPIKey  string        `json:"-"`
	WeatherBaseURL string        `json:"weatherBaseURL"`
	WeatherTimeout time.Duration `json:"weatherTimeout"`

	LocationMode string   `json:"locationMode"`
	Lat          *float64 `json:"lat,omitempty"`
	Lon          *float64 `json:"lon,omitempty"`
	LookupURL    string   `json:"lookupURL,omitempty"`

	DateLayout string `json:"dateLayout"`

	// ConfigFile is the config file that was read, if any.
	ConfigFile string `json:"configFile,omitempty"`
}

func (s *Settings) BasePath() string {
	return s.Path
}

// HasCoordinates reports whether both lat and lon are configured.
func (s *Settings) HasCoordinates() bool {
	return s.Lat != nil && s.Lon != nil
}

// LoadConfig reads .mood.yaml from $MOOD_CONFIG_PATH, the working directory
// or $HOME, overlaid by MOOD_* environment variables. A .env file in the
// working directory is loaded into the environment first.
func LoadConfig() (*Settings, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("path", "~/.mood.db")
	v.SetDefault("weather.base_url", "https://api.openweathermap.org")
	v.SetDefault("weather.timeout", "10s")
	v.SetDefault("location.mode", LocationConfig)
	v.SetDefault("export.date_layout", "1/2/2006")
	v.SetConfigName(".mood") // .yaml is implicit
	v.SetEnvPrefix("MOOD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("weather.api_key", "MOOD_WEATHER_API_KEY", "OPENWEATHER_API_KEY", "VITE_REACT_APP_WEATHER_API_KEY")

	if override := os.Getenv("MOOD_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	s := &Settings{
		Path:           path,
		WeatherAPIKey:  v.GetString("weather.api_key"),
		WeatherBaseURL: v.GetString("weather.base_url"),
		WeatherTimeout: v.GetDuration("weather.timeout"),
		LocationMode:   strings.ToLower(v.GetString("location.mode")),
		LookupURL:      v.GetString("location.lookup_url"),
		DateLayout:     v.GetString("export.date_layout"),
		ConfigFile:     v.ConfigFileUsed(),
	}
	if v.IsSet("location.lat") && v.IsSet("location.lon") {
		lat, lon := v.GetFloat64("location.lat"), v.GetFloat64("location.lon")
		s.Lat, s.Lon = &lat, &lon
	}
	return s, nil
}
