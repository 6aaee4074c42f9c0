package app

import (
	"fmt"
	"strings"

	"trip_planner/internal/domain"
)

// Option listings are rendered as plain text for the composer. An empty
// category renders an explicit "none found" line so the composer can reason
// about infeasibility instead of receiving silently empty input. Missing
// display fields degrade to placeholders, never to an error.

func formatFlightLine(f domain.FlightOffer) string {
	price := "price unknown"
	if f.Price != nil {
		price = fmt.Sprintf("price %.0f", *f.Price)
	}
	return fmt.Sprintf("%s: %s %s -> %s, %s -> %s, %s",
		f.ID, f.Airline, f.From, f.To, f.DepartureTime, f.ArrivalTime, price)
}

func formatHotelLine(h domain.HotelOffer) string {
	stars := "unrated"
	if h.Stars != nil {
		stars = fmt.Sprintf("%.1f★", *h.Stars)
	}
	price := "price/night unknown"
	if h.PricePerNight != nil {
		price = fmt.Sprintf("price/night %.0f", *h.PricePerNight)
	}
	return fmt.Sprintf("%s: %s (%s) in %s, %s, amenities=%s",
		h.ID, h.Name, stars, h.City, price, strings.Join(h.Amenities, ","))
}

func formatPlaceLine(p domain.PlaceOffer) string {
	rating := "N/A"
	if p.Rating != nil {
		rating = fmt.Sprintf("%.1f", *p.Rating)
	}
	fee := 0.0
	if p.EntryFee != nil {
		fee = *p.EntryFee
	}
	return fmt.Sprintf("%s: %s (%s), Rating: %s, Entry: %.0f, Typical stay: 2h",
		p.ID, p.Name, p.Type, rating, fee)
}

func formatOptions[T any](title string, rows []T, line func(T) string) string {
	if len(rows) == 0 {
		return title + ": none found (check budget/availability).\n"
	}
	out := make([]string, 0, len(rows)+1)
	out = append(out, title+":")
	for _, r := range rows {
		out = append(out, line(r))
	}
	return strings.Join(out, "\n") + "\n"
}

// WeatherLine renders a one-line weather summary, degrading to a defined
// placeholder when the snapshot carries no temperature.
func WeatherLine(s domain.WeatherSnapshot) string {
	if !s.Known() {
		return "Weather information unavailable."
	}
	return fmt.Sprintf("Weather in %s: %.1f°C, %s.", s.City, *s.TempC, s.Condition)
}

// BuildPlannerInput assembles the single structured text block handed to the
// composer: the free-form request, trip parameters, the weather line, and the
// three option listings.
func BuildPlannerInput(req domain.TripRequest, weather domain.WeatherSnapshot,
	flights []domain.FlightOffer, hotels []domain.HotelOffer, places []domain.PlaceOffer) string {

	var b strings.Builder
	fmt.Fprintf(&b, "User request:\n%s\n\n", req.Request)
	fmt.Fprintf(&b, "Origin: %s\nDestination: %s\n", req.Origin, req.Destination)
	fmt.Fprintf(&b, "Days: %d\nTotal budget: %d INR\n", req.Days, req.TotalBudget)
	fmt.Fprintf(&b, "Trip type: %s\n", req.TripType)
	if req.Preferences != "" {
		fmt.Fprintf(&b, "Preferences: %s\n", req.Preferences)
	}
	b.WriteString(WeatherLine(weather))
	b.WriteString("\n\n")
	b.WriteString(formatOptions("Flight options", flights, formatFlightLine))
	b.WriteString("\n")
	b.WriteString(formatOptions("Hotel options", hotels, formatHotelLine))
	b.WriteString("\n")
	b.WriteString(formatOptions("Place options", places, formatPlaceLine))
	b.WriteString("\nNow choose the best flight, hotel, and plan each day using these options.")
	return b.String()
}
