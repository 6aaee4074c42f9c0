// Package jsonfile loads the catalogs from flights.json, hotels.json and
// places.json in a data directory. Records are decoded tolerantly: a missing
// or non-numeric field maps to a nil optional, never to a load failure. Only
// an unreadable file or malformed JSON is fatal (CatalogUnavailable).
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"trip_planner/internal/domain"
)

type Source struct{ dir string }

func New(dir string) *Source { return &Source{dir: dir} }

func (s *Source) readRecords(name string) ([]map[string]any, error) {
	path := filepath.Join(s.dir, name)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrCatalogUnavailable, path, err)
	}
	var recs []map[string]any
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrCatalogUnavailable, path, err)
	}
	return recs, nil
}

func (s *Source) LoadFlights(ctx context.Context) ([]domain.FlightOffer, error) {
	recs, err := s.readRecords("flights.json")
	if err != nil {
		return nil, err
	}
	out := make([]domain.FlightOffer, 0, len(recs))
	for _, r := range recs {
		out = append(out, domain.FlightOffer{
			ID:            str(r, "flight_id"),
			From:          str(r, "from"),
			To:            str(r, "to"),
			Airline:       str(r, "airline"),
			DepartureTime: str(r, "departure_time"),
			ArrivalTime:   str(r, "arrival_time"),
			Price:         num(r, "price"),
		})
	}
	return out, nil
}

func (s *Source) LoadHotels(ctx context.Context) ([]domain.HotelOffer, error) {
	recs, err := s.readRecords("hotels.json")
	if err != nil {
		return nil, err
	}
	out := make([]domain.HotelOffer, 0, len(recs))
	for _, r := range recs {
		out = append(out, domain.HotelOffer{
			ID:            str(r, "hotel_id"),
			City:          str(r, "city"),
			Name:          str(r, "name"),
			Stars:         num(r, "stars"),
			PricePerNight: num(r, "price_per_night"),
			Amenities:     strSlice(r, "amenities"),
		})
	}
	return out, nil
}

func (s *Source) LoadPlaces(ctx context.Context) ([]domain.PlaceOffer, error) {
	recs, err := s.readRecords("places.json")
	if err != nil {
		return nil, err
	}
	out := make([]domain.PlaceOffer, 0, len(recs))
	for _, r := range recs {
		out = append(out, domain.PlaceOffer{
			ID:       str(r, "place_id"),
			City:     str(r, "city"),
			Name:     str(r, "name"),
			Type:     str(r, "type"),
			EntryFee: num(r, "entry_fee"),
			Rating:   num(r, "rating"),
		})
	}
	return out, nil
}

// ---- record coercion ----

func str(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// num coerces numbers and numeric strings; anything else is an unknown value.
func num(m map[string]any, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		f := v
		return &f
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
	}
	return nil
}

func strSlice(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, it := range raw {
		if s, ok := it.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
