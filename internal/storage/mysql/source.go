package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"trip_planner/internal/domain"
)

// Source loads the catalogs from MySQL tables for deployments that keep the
// reference data in a database instead of JSON files. Reads only; the tables
// are treated as an immutable snapshot per process run.
type Source struct{ db *sql.DB }

func New(db *sql.DB) *Source { return &Source{db: db} }

func unavailable(kind string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrCatalogUnavailable, kind, err)
}

func fptr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func sval(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func (s *Source) LoadFlights(ctx context.Context) ([]domain.FlightOffer, error) {
	rows, err := s.db.QueryContext(ctx, selectFlightsSQL)
	if err != nil {
		return nil, unavailable("flights", err)
	}
	defer rows.Close()

	var out []domain.FlightOffer
	for rows.Next() {
		var f domain.FlightOffer
		var airline, dep, arr sql.NullString
		var price sql.NullFloat64
		if err := rows.Scan(&f.ID, &f.From, &f.To, &airline, &dep, &arr, &price); err != nil {
			return nil, unavailable("flights", err)
		}
		f.Airline = sval(airline)
		f.DepartureTime = sval(dep)
		f.ArrivalTime = sval(arr)
		f.Price = fptr(price)
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("flights", err)
	}
	return out, nil
}

func (s *Source) LoadHotels(ctx context.Context) ([]domain.HotelOffer, error) {
	rows, err := s.db.QueryContext(ctx, selectHotelsSQL)
	if err != nil {
		return nil, unavailable("hotels", err)
	}
	defer rows.Close()

	var out []domain.HotelOffer
	for rows.Next() {
		var h domain.HotelOffer
		var stars, price sql.NullFloat64
		var amenitiesJSON []byte
		if err := rows.Scan(&h.ID, &h.City, &h.Name, &stars, &price, &amenitiesJSON); err != nil {
			return nil, unavailable("hotels", err)
		}
		h.Stars = fptr(stars)
		h.PricePerNight = fptr(price)
		if len(amenitiesJSON) > 0 {
			_ = json.Unmarshal(amenitiesJSON, &h.Amenities)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("hotels", err)
	}
	return out, nil
}

func (s *Source) LoadPlaces(ctx context.Context) ([]domain.PlaceOffer, error) {
	rows, err := s.db.QueryContext(ctx, selectPlacesSQL)
	if err != nil {
		return nil, unavailable("places", err)
	}
	defer rows.Close()

	var out []domain.PlaceOffer
	for rows.Next() {
		var p domain.PlaceOffer
		var typ sql.NullString
		var fee, rating sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.City, &p.Name, &typ, &fee, &rating); err != nil {
			return nil, unavailable("places", err)
		}
		p.Type = sval(typ)
		p.EntryFee = fptr(fee)
		p.Rating = fptr(rating)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("places", err)
	}
	return out, nil
}
