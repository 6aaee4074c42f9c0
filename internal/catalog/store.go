package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/domain"
)

// Store caches each catalog kind for the process lifetime. The first access
// per kind loads from the source exactly once, even under concurrent warm-up;
// later calls return the identical cached slice. A failed load is not cached,
// so a transiently unreadable source can recover on the next request.
type Store struct {
	src domain.CatalogSource

	g  singleflight.Group
	mu sync.RWMutex

	flights []domain.FlightOffer
	hotels  []domain.HotelOffer
	places  []domain.PlaceOffer

	flightsOK bool
	hotelsOK  bool
	placesOK  bool
}

func NewStore(src domain.CatalogSource) *Store { return &Store{src: src} }

func (s *Store) Flights(ctx context.Context) ([]domain.FlightOffer, error) {
	s.mu.RLock()
	if s.flightsOK {
		defer s.mu.RUnlock()
		return s.flights, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.g.Do("flights", func() (any, error) {
		out, err := s.src.LoadFlights(ctx)
		if err != nil {
			observability.ObserveCatalogLoad("flights", "error")
			return nil, err
		}
		observability.ObserveCatalogLoad("flights", "ok")
		s.mu.Lock()
		s.flights, s.flightsOK = out, true
		s.mu.Unlock()
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.FlightOffer), nil
}

func (s *Store) Hotels(ctx context.Context) ([]domain.HotelOffer, error) {
	s.mu.RLock()
	if s.hotelsOK {
		defer s.mu.RUnlock()
		return s.hotels, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.g.Do("hotels", func() (any, error) {
		out, err := s.src.LoadHotels(ctx)
		if err != nil {
			observability.ObserveCatalogLoad("hotels", "error")
			return nil, err
		}
		observability.ObserveCatalogLoad("hotels", "ok")
		s.mu.Lock()
		s.hotels, s.hotelsOK = out, true
		s.mu.Unlock()
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.HotelOffer), nil
}

func (s *Store) Places(ctx context.Context) ([]domain.PlaceOffer, error) {
	s.mu.RLock()
	if s.placesOK {
		defer s.mu.RUnlock()
		return s.places, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.g.Do("places", func() (any, error) {
		out, err := s.src.LoadPlaces(ctx)
		if err != nil {
			observability.ObserveCatalogLoad("places", "error")
			return nil, err
		}
		observability.ObserveCatalogLoad("places", "ok")
		s.mu.Lock()
		s.places, s.placesOK = out, true
		s.mu.Unlock()
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.PlaceOffer), nil
}
