// internal/adapters/weather/client.go
package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/domain"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client fetches current conditions from OpenWeather. The lookup sits on the
// critical path of an interactive request, so every call is bounded by the
// client timeout, and any failure degrades to an unknown snapshot instead of
// propagating. An empty API key disables the upstream call entirely.
type Client struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base, key string, timeout time.Duration, rps int) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: base,
		key:  key,
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// openweather response, only the fields we read
type owResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

func unknownSnapshot(city string) domain.WeatherSnapshot {
	return domain.WeatherSnapshot{City: city, Condition: "unknown"}
}

// Current returns the conditions for city, or an unknown snapshot when the
// credential is missing or the upstream call fails in any way.
func (c *Client) Current(ctx context.Context, city string) domain.WeatherSnapshot {
	if c.key == "" {
		return unknownSnapshot(city)
	}
	if err := c.rl.Wait(ctx); err != nil {
		return unknownSnapshot(city)
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.key)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"?"+q.Encode(), nil)
	if err != nil {
		return unknownSnapshot(city)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("openweather", "current", 0, time.Since(start))
		log.Warn().Err(err).Str("city", city).Msg("weather fetch failed")
		return unknownSnapshot(city)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("openweather", "current", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("city", city).Msg("weather fetch non-200")
		return unknownSnapshot(city)
	}

	var body owResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Warn().Err(err).Str("city", city).Msg("weather decode failed")
		return unknownSnapshot(city)
	}

	snap := domain.WeatherSnapshot{
		City:       city,
		TempC:      body.Main.Temp,
		FeelsLikeC: body.Main.FeelsLike,
		Condition:  "unknown",
	}
	if body.Name != "" {
		snap.City = body.Name
	}
	if len(body.Weather) > 0 && body.Weather[0].Description != "" {
		snap.Condition = body.Weather[0].Description
	}
	return snap
}
