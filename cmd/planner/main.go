// planner runs a single planning request from the command line and prints
// the itinerary (or the assembled composer payload when no OPENAI_API_KEY is
// configured).
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	composerad "trip_planner/internal/adapters/composer"
	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/adapters/weather"
	"trip_planner/internal/app"
	"trip_planner/internal/catalog"
	"trip_planner/internal/domain"
	"trip_planner/internal/shared"
	"trip_planner/internal/storage/jsonfile"
	mysqlsrc "trip_planner/internal/storage/mysql"
)

func main() {
	var (
		origin      string
		destination string
		days        int
		budget      int
		tripType    string
		preferences string
		request     string
	)

	root := &cobra.Command{
		Use:   "planner",
		Short: "Plan a day-wise trip itinerary from the option catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := shared.Load()
			log.Logger = observability.NewLogger(cfg.AppEnv)

			var src domain.CatalogSource
			switch cfg.CatalogBackend {
			case "mysql":
				db, err := sql.Open("mysql", cfg.MySQLDSN)
				if err != nil {
					return err
				}
				if err := db.Ping(); err != nil {
					return err
				}
				defer db.Close()
				src = mysqlsrc.New(db)
			default:
				src = jsonfile.New(cfg.DataDir)
			}

			search := app.NewSearchService(catalog.NewStore(src))
			wc := weather.New(cfg.WeatherBase, cfg.WeatherKey, cfg.WeatherTimeout, cfg.WeatherRPS)

			var comp domain.Composer
			if cfg.OpenAIKey != "" {
				c, err := composerad.New(cfg.OpenAIKey, cfg.OpenAIModel)
				if err != nil {
					return err
				}
				comp = c
			}
			planner := app.NewPlannerService(search, wc, comp)

			res, err := planner.Plan(context.Background(), domain.TripRequest{
				Origin:      origin,
				Destination: destination,
				Days:        days,
				TotalBudget: budget,
				TripType:    domain.TripType(tripType),
				Preferences: preferences,
				Request:     request,
			})
			if err != nil {
				return err
			}

			log.Info().
				Str("plan", res.ID).
				Int("flight_ceiling", res.Allocation.FlightCeiling).
				Int("hotel_per_night", res.Allocation.HotelPerNight).
				Int("flights", len(res.Flights)).
				Int("hotels", len(res.Hotels)).
				Int("places", len(res.Places)).
				Msg("plan built")

			if res.Itinerary != "" {
				fmt.Println(res.Itinerary)
				return nil
			}
			fmt.Println("Composer disabled (OPENAI_API_KEY not set); planner input:")
			fmt.Println()
			fmt.Println(res.PlannerInput)
			return nil
		},
	}

	root.Flags().StringVar(&origin, "origin", "Mumbai", "origin city")
	root.Flags().StringVar(&destination, "destination", "Goa", "destination city")
	root.Flags().IntVar(&days, "days", 3, "number of days (min 1)")
	root.Flags().IntVar(&budget, "budget", 20000, "total budget in INR")
	root.Flags().StringVar(&tripType, "trip-type", "Leisure", "Leisure|Adventure|Family|Romantic|Business")
	root.Flags().StringVar(&preferences, "preferences", "", "free-text preferences (food, pace, ...)")
	root.Flags().StringVar(&request, "request", "Plan my trip.", "free-form request forwarded to the composer")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
