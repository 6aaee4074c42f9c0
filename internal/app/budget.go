package app

import "trip_planner/internal/domain"

// Allocate derives the per-category spending ceilings from the total budget:
// 50% for the flight, 40% spread over the nights, both floored. The remaining
// 10% is an advisory residual for places and incidentals; no ceiling is
// derived for it. A day count below 1 is clamped to 1.
func Allocate(totalBudget, days int) domain.Allocation {
	if days < 1 {
		days = 1
	}
	return domain.Allocation{
		FlightCeiling: totalBudget / 2,
		// floor(total*0.40/days); integer math keeps the floor exact
		HotelPerNight: totalBudget * 2 / 5 / days,
	}
}
