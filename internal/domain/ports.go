package domain

import "context"

// CatalogSource is the persistent medium behind the catalog store. It must be
// deterministic: repeated loads within one process run return the same records
// in the same order.
type CatalogSource interface {
	LoadFlights(ctx context.Context) ([]FlightOffer, error)
	LoadHotels(ctx context.Context) ([]HotelOffer, error)
	LoadPlaces(ctx context.Context) ([]PlaceOffer, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// WeatherService never fails: any upstream problem degrades to a snapshot
// with unknown temperature and condition.
type WeatherService interface {
	Current(ctx context.Context, city string) WeatherSnapshot
}

// Composer turns the assembled planner input into final itinerary text. Its
// output is opaque and displayed verbatim.
type Composer interface {
	Compose(ctx context.Context, plannerInput string) (string, error)
}
