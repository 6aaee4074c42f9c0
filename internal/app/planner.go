package app

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"trip_planner/internal/domain"
)

// defaultMinHotelRating keeps 3-star hotels in play for the planning flow.
const defaultMinHotelRating = 3.0

// PlannerService runs the full flow: derive ceilings, narrow the three
// catalogs and fetch weather concurrently, assemble the composer payload, and
// (when a composer is configured) obtain the final itinerary text.
type PlannerService struct {
	search   *SearchService
	weather  domain.WeatherService
	composer domain.Composer // nil: composition disabled, payload still built
	validate *validator.Validate
}

func NewPlannerService(s *SearchService, w domain.WeatherService, c domain.Composer) *PlannerService {
	return &PlannerService{
		search:   s,
		weather:  w,
		composer: c,
		validate: validator.New(),
	}
}

type PlanResult struct {
	ID           string
	Allocation   domain.Allocation
	Flights      []domain.FlightOffer
	Hotels       []domain.HotelOffer
	Places       []domain.PlaceOffer
	Weather      domain.WeatherSnapshot
	PlannerInput string
	// Itinerary is the composer's output, verbatim. Empty when no composer
	// is configured.
	Itinerary string
}

func (s *PlannerService) Composes() bool { return s.composer != nil }

// Plan validates the request and produces a PlanResult. Only a catalog
// failure (or a composer failure, which has no degraded substitute) aborts;
// empty option sets and weather problems are carried as degraded-but-valid
// data for the composer.
func (s *PlannerService) Plan(ctx context.Context, req domain.TripRequest) (PlanResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return PlanResult{}, fmt.Errorf("invalid trip request: %w", err)
	}

	alloc := Allocate(req.TotalBudget, req.Days)
	flightCeil := float64(alloc.FlightCeiling)
	hotelCeil := float64(alloc.HotelPerNight)

	res := PlanResult{ID: uuid.NewString(), Allocation: alloc}

	// The selectors and the weather lookup share no mutable state; fan out.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		res.Flights, err = s.search.SearchFlights(gctx, req.Origin, req.Destination, &flightCeil)
		return err
	})
	g.Go(func() error {
		var err error
		res.Hotels, err = s.search.SearchHotels(gctx, req.Destination, &hotelCeil, defaultMinHotelRating, req.TripType)
		return err
	})
	g.Go(func() error {
		var err error
		res.Places, err = s.search.SearchPlaces(gctx, req.Destination, nil, nil)
		return err
	})
	g.Go(func() error {
		res.Weather = s.weather.Current(gctx, req.Destination)
		return nil
	})
	if err := g.Wait(); err != nil {
		return PlanResult{}, err
	}

	res.PlannerInput = BuildPlannerInput(req, res.Weather, res.Flights, res.Hotels, res.Places)

	if s.composer == nil {
		log.Debug().Str("plan", res.ID).Msg("composer disabled, returning payload only")
		return res, nil
	}
	text, err := s.composer.Compose(ctx, res.PlannerInput)
	if err != nil {
		return PlanResult{}, fmt.Errorf("compose itinerary: %w", err)
	}
	res.Itinerary = text
	return res, nil
}
