package catalog_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"trip_planner/internal/catalog"
	"trip_planner/internal/domain"
)

type countingSource struct {
	flightLoads int32
	hotelLoads  int32
	placeLoads  int32
	failFlights bool
}

func (c *countingSource) LoadFlights(ctx context.Context) ([]domain.FlightOffer, error) {
	atomic.AddInt32(&c.flightLoads, 1)
	if c.failFlights {
		return nil, domain.ErrCatalogUnavailable
	}
	return []domain.FlightOffer{
		{ID: "F1", From: "Mumbai", To: "Goa"},
		{ID: "F2", From: "Delhi", To: "Goa"},
	}, nil
}

func (c *countingSource) LoadHotels(ctx context.Context) ([]domain.HotelOffer, error) {
	atomic.AddInt32(&c.hotelLoads, 1)
	return []domain.HotelOffer{{ID: "H1", City: "Goa"}}, nil
}

func (c *countingSource) LoadPlaces(ctx context.Context) ([]domain.PlaceOffer, error) {
	atomic.AddInt32(&c.placeLoads, 1)
	return []domain.PlaceOffer{{ID: "P1", City: "Goa"}}, nil
}

func TestStore_LoadsOnceAndReturnsSameSequence(t *testing.T) {
	src := &countingSource{}
	st := catalog.NewStore(src)
	ctx := context.Background()

	first, err := st.Flights(ctx)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	second, err := st.Flights(ctx)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("length drift: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("order drift at %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
	if n := atomic.LoadInt32(&src.flightLoads); n != 1 {
		t.Fatalf("expected a single load, got %d", n)
	}
}

func TestStore_ConcurrentFirstAccessLoadsOnce(t *testing.T) {
	src := &countingSource{}
	st := catalog.NewStore(src)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := st.Hotels(context.Background()); err != nil {
				t.Errorf("err: %v", err)
			}
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt32(&src.hotelLoads); n != 1 {
		t.Fatalf("expected a single load under concurrency, got %d", n)
	}
}

func TestStore_FailedLoadIsNotCached(t *testing.T) {
	src := &countingSource{failFlights: true}
	st := catalog.NewStore(src)

	if _, err := st.Flights(context.Background()); !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}

	src.failFlights = false
	if _, err := st.Flights(context.Background()); err != nil {
		t.Fatalf("expected recovery after source heals, got %v", err)
	}
	if n := atomic.LoadInt32(&src.flightLoads); n != 2 {
		t.Fatalf("expected 2 load attempts, got %d", n)
	}
}

func TestStore_KindsAreIndependent(t *testing.T) {
	src := &countingSource{}
	st := catalog.NewStore(src)
	ctx := context.Background()

	if _, err := st.Places(ctx); err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, err := st.Places(ctx); err != nil {
		t.Fatalf("err: %v", err)
	}
	if atomic.LoadInt32(&src.flightLoads) != 0 || atomic.LoadInt32(&src.hotelLoads) != 0 {
		t.Fatalf("loading places must not touch other kinds")
	}
	if atomic.LoadInt32(&src.placeLoads) != 1 {
		t.Fatalf("expected a single place load")
	}
}
