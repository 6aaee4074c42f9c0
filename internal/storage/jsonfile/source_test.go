package jsonfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"trip_planner/internal/domain"
	"trip_planner/internal/storage/jsonfile"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFlights_TolerantDecoding(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "flights.json", `[
		{"flight_id":"F1","airline":"IndiGo","from":"Mumbai","to":"Goa",
		 "departure_time":"06:00","arrival_time":"07:15","price":4500},
		{"flight_id":"F2","airline":"Vistara","from":"Mumbai","to":"Goa","price":"N/A"},
		{"flight_id":"F3","from":"Delhi","to":"Goa","price":"5200"}
	]`)

	got, err := jsonfile.New(dir).LoadFlights(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 flights, got %d", len(got))
	}
	if got[0].Price == nil || *got[0].Price != 4500 {
		t.Fatalf("numeric price lost: %+v", got[0])
	}
	if got[1].Price != nil {
		t.Fatalf("non-numeric price must map to unknown, got %v", *got[1].Price)
	}
	if got[2].Price == nil || *got[2].Price != 5200 {
		t.Fatalf("numeric string price lost: %+v", got[2])
	}
}

func TestLoadHotels_MissingOptionalFields(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "hotels.json", `[
		{"hotel_id":"H1","name":"Beach Stay","city":"Goa","stars":4,
		 "price_per_night":2500,"amenities":["wifi","pool"]},
		{"hotel_id":"H2","name":"Mystery Inn","city":"Goa"}
	]`)

	got, err := jsonfile.New(dir).LoadHotels(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 hotels, got %d", len(got))
	}
	if got[0].Stars == nil || *got[0].Stars != 4 || len(got[0].Amenities) != 2 {
		t.Fatalf("unexpected hotel: %+v", got[0])
	}
	if got[1].Stars != nil || got[1].PricePerNight != nil || got[1].Amenities != nil {
		t.Fatalf("missing fields must stay nil: %+v", got[1])
	}
}

func TestLoadPlaces_MissingFeeAndRating(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "places.json", `[
		{"place_id":"P1","name":"Baga Beach","city":"Goa","type":"Beach"},
		{"place_id":"P2","name":"Fort Aguada","city":"Goa","type":"Fort","entry_fee":50,"rating":4.3}
	]`)

	got, err := jsonfile.New(dir).LoadPlaces(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got[0].EntryFee != nil || got[0].Rating != nil {
		t.Fatalf("missing fee/rating must stay nil: %+v", got[0])
	}
	if got[1].EntryFee == nil || *got[1].EntryFee != 50 {
		t.Fatalf("fee lost: %+v", got[1])
	}
}

func TestLoad_MissingFileIsCatalogUnavailable(t *testing.T) {
	dir := t.TempDir()
	_, err := jsonfile.New(dir).LoadFlights(context.Background())
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestLoad_MalformedJSONIsCatalogUnavailable(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "hotels.json", `{"not":"an array"`)
	_, err := jsonfile.New(dir).LoadHotels(context.Background())
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}
