package app

import (
	"context"
	"strings"

	"trip_planner/internal/catalog"
	"trip_planner/internal/domain"
)

// sentinel nightly price for hotels with no price in the catalog: high enough
// that any configured ceiling excludes them
const missingNightlyPrice = 99999

// SearchService narrows the read-only catalogs with hard filters. City matches
// are case-insensitive and exact, catalog order is preserved, and zero matches
// is a normal outcome, never an error.
type SearchService struct {
	store *catalog.Store
}

func NewSearchService(st *catalog.Store) *SearchService { return &SearchService{store: st} }

// SearchFlights returns flights from fromCity to toCity. When maxPrice is set,
// offers priced strictly above it are excluded, and offers with an unknown
// price are excluded too (an unknown price must never pass a ceiling check).
// Without a ceiling, unknown-price offers are kept.
func (s *SearchService) SearchFlights(ctx context.Context, fromCity, toCity string, maxPrice *float64) ([]domain.FlightOffer, error) {
	flights, err := s.store.Flights(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.FlightOffer, 0, len(flights))
	for _, f := range flights {
		if !strings.EqualFold(f.From, fromCity) || !strings.EqualFold(f.To, toCity) {
			continue
		}
		if maxPrice != nil {
			if f.Price == nil || *f.Price > *maxPrice {
				continue
			}
		}
		out = append(out, f)
	}
	return out, nil
}

// SearchHotels returns hotels in city under the nightly price ceiling and at
// or above the rating floor. A missing nightly price counts as a very high
// sentinel, so any ceiling excludes it; missing stars count as 0.
//
// tripType is accepted for interface stability but exerts no filtering
// effect: the hotel catalog carries no trip-type field, so an intent cannot
// be recovered from the data. Callers should not expect it to narrow results
// until the catalog schema grows such a field.
func (s *SearchService) SearchHotels(ctx context.Context, city string, maxPerNight *float64, minRating float64, tripType domain.TripType) ([]domain.HotelOffer, error) {
	_ = tripType

	hotels, err := s.store.Hotels(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.HotelOffer, 0, len(hotels))
	for _, h := range hotels {
		if !strings.EqualFold(h.City, city) {
			continue
		}
		if maxPerNight != nil {
			price := float64(missingNightlyPrice)
			if h.PricePerNight != nil {
				price = *h.PricePerNight
			}
			if price > *maxPerNight {
				continue
			}
		}
		stars := 0.0
		if h.Stars != nil {
			stars = *h.Stars
		}
		if stars < minRating {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

// SearchPlaces returns places in city. The category filter is a
// case-insensitive substring match on the place's type label ("beach"
// matches "Beach Resort"). A missing entry fee counts as 0.
func (s *SearchService) SearchPlaces(ctx context.Context, city string, category *string, maxEntryFee *float64) ([]domain.PlaceOffer, error) {
	places, err := s.store.Places(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PlaceOffer, 0, len(places))
	for _, p := range places {
		if !strings.EqualFold(p.City, city) {
			continue
		}
		if category != nil && *category != "" &&
			!strings.Contains(strings.ToLower(p.Type), strings.ToLower(*category)) {
			continue
		}
		if maxEntryFee != nil {
			fee := 0.0
			if p.EntryFee != nil {
				fee = *p.EntryFee
			}
			if fee > *maxEntryFee {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}
