package domain

type TripType string

const (
	TripLeisure   TripType = "Leisure"
	TripAdventure TripType = "Adventure"
	TripFamily    TripType = "Family"
	TripRomantic  TripType = "Romantic"
	TripBusiness  TripType = "Business"
)

type TripRequest struct {
	Origin      string   `json:"origin" validate:"required"`
	Destination string   `json:"destination" validate:"required"`
	Days        int      `json:"days" validate:"min=1"`
	TotalBudget int      `json:"total_budget" validate:"gt=0"`
	TripType    TripType `json:"trip_type" validate:"oneof=Leisure Adventure Family Romantic Business"`
	Preferences string   `json:"preferences"`
	// Free-form request text forwarded verbatim to the composer.
	Request string `json:"request"`
}

// Allocation is derived per request and never persisted: it depends only on
// the request's budget and day count. The ~10% of the budget not covered by
// the two ceilings is an advisory residual for places and incidentals; no
// ceiling is derived for it.
type Allocation struct {
	FlightCeiling int `json:"flight_ceiling"`
	HotelPerNight int `json:"hotel_ceiling_per_night"`
}

// WeatherSnapshot is the typed result of a best-effort lookup. An unknown
// temperature is a valid state, not an error.
type WeatherSnapshot struct {
	City       string   `json:"city"`
	TempC      *float64 `json:"temp_c"`
	FeelsLikeC *float64 `json:"feels_like_c"`
	Condition  string   `json:"condition"`
}

func (s WeatherSnapshot) Known() bool { return s.TempC != nil }
