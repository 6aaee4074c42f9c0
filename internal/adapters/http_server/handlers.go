// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"trip_planner/internal/app"
	"trip_planner/internal/domain"
)

type Handlers struct {
	Search  *app.SearchService
	Planner *app.PlannerService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/flights", h.searchFlights)
	s.mux.Get("/v1/hotels", h.searchHotels)
	s.mux.Get("/v1/places", h.searchPlaces)
	s.mux.Post("/v1/plan", h.plan)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSONWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// optFloat parses an optional numeric query parameter; nil means absent.
func optFloat(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.New(name + " must be a number")
	}
	return &f, nil
}

// searchResponse always carries an explicit count so an empty result is
// visibly "zero matches", not a missing section.
type searchResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func listResponse[T any](items []T) searchResponse[T] {
	if items == nil {
		items = []T{}
	}
	return searchResponse[T]{Items: items, Count: len(items)}
}

func (h *Handlers) searchFlights(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "from and to are required")
		return
	}
	maxPrice, err := optFloat(r, "max_price")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}

	items, ferr := h.Search.SearchFlights(r.Context(), from, to, maxPrice)
	if ferr != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Catalog Unavailable", "flight catalog could not be loaded")
		return
	}
	writeJSONWithETag(w, r, listResponse(items))
}

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "city is required")
		return
	}
	maxPerNight, err := optFloat(r, "max_price_per_night")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	minRating := 0.0
	mr, err := optFloat(r, "min_rating")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	if mr != nil {
		minRating = *mr
	}
	// accepted for interface stability; currently non-filtering
	tripType := domain.TripType(r.URL.Query().Get("trip_type"))

	items, herr := h.Search.SearchHotels(r.Context(), city, maxPerNight, minRating, tripType)
	if herr != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Catalog Unavailable", "hotel catalog could not be loaded")
		return
	}
	writeJSONWithETag(w, r, listResponse(items))
}

func (h *Handlers) searchPlaces(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "city is required")
		return
	}
	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = &c
	}
	maxFee, err := optFloat(r, "max_entry_fee")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}

	items, perr := h.Search.SearchPlaces(r.Context(), city, category, maxFee)
	if perr != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Catalog Unavailable", "place catalog could not be loaded")
		return
	}
	writeJSONWithETag(w, r, listResponse(items))
}

type planResponse struct {
	PlanID       string                 `json:"plan_id"`
	Allocation   domain.Allocation      `json:"allocation"`
	Weather      string                 `json:"weather"`
	Snapshot     domain.WeatherSnapshot `json:"weather_snapshot"`
	OptionCounts map[string]int         `json:"option_counts"`
	Itinerary    string                 `json:"itinerary,omitempty"`
	Composer     string                 `json:"composer"`
	PlannerInput string                 `json:"planner_input,omitempty"`
}

func (h *Handlers) plan(w http.ResponseWriter, r *http.Request) {
	var req domain.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "request body must be JSON")
		return
	}

	res, err := h.Planner.Plan(r.Context(), req)
	if err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			writeProblem(w, http.StatusUnprocessableEntity, "Invalid trip request", verrs.Error())
		case errors.Is(err, domain.ErrCatalogUnavailable):
			writeProblem(w, http.StatusServiceUnavailable, "Catalog Unavailable", "reference data could not be loaded")
		default:
			writeProblem(w, http.StatusBadGateway, "Planning failed", err.Error())
		}
		return
	}

	out := planResponse{
		PlanID:     res.ID,
		Allocation: res.Allocation,
		Weather:    app.WeatherLine(res.Weather),
		Snapshot:   res.Weather,
		OptionCounts: map[string]int{
			"flights": len(res.Flights),
			"hotels":  len(res.Hotels),
			"places":  len(res.Places),
		},
		Itinerary: res.Itinerary,
		Composer:  "openai",
	}
	// with no composer configured the payload itself is the useful output
	if !h.Planner.Composes() {
		out.Composer = "disabled"
		out.PlannerInput = res.PlannerInput
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Error().Err(err).Msg("failed to write plan response")
	}
}
