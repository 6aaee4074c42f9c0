package domain

// Catalog records are read-only reference data, loaded once per process run.
// Optional fields are pointers; a nil pointer means the source had no value,
// and every consumer's fallback is spelled out at the point of use.

type FlightOffer struct {
	ID            string
	From          string
	To            string
	Airline       string
	DepartureTime string
	ArrivalTime   string
	Price         *float64 // nil: unknown price
}

type HotelOffer struct {
	ID            string
	City          string
	Name          string
	Stars         *float64 // 0–5; nil treated as 0 by the rating floor
	PricePerNight *float64 // nil fails any price ceiling (treated as very high)
	Amenities     []string
}

type PlaceOffer struct {
	ID       string
	City     string
	Name     string
	Type     string
	EntryFee *float64 // nil treated as 0
	Rating   *float64 // nil displays as N/A
}
