package router

import (
	"airline/internal/handlers/booking"
	"airline/internal/handlers/flight"
	"airline/internal/handlers/pilot"
	"airline/internal/handlers/plane"
	"airline/internal/handlers/report"
	"airline/internal/handlers/technician"
	"airline/shared/prompt"
	"context"
)

// Operation is one menu entry. It owns the prompts it needs and returns
// only errors that abandon it.
type Operation func(ctx context.Context, p *prompt.Prompter) error

type Route struct {
	Choice int
	Name   string
	Label  string
	Run    Operation
}

type DomainHandlers struct {
	Plane      plane.Handler
	Pilot      pilot.Handler
	Flight     flight.Handler
	Technician technician.Handler
	Booking    booking.Handler
	Report     report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

// Routes lists the menu entries in the order they are numbered.
func (r *Router) Routes() []Route {
	handlers := &r.DomainHandlers

	return []Route{
		{Choice: 1, Name: "add_plane", Label: "Add Plane", Run: handlers.Plane.AddPlane},
		{Choice: 2, Name: "add_pilot", Label: "Add Pilot", Run: handlers.Pilot.AddPilot},
		{Choice: 3, Name: "add_flight", Label: "Add Flight", Run: handlers.Flight.AddFlight},
		{Choice: 4, Name: "add_technician", Label: "Add Technician", Run: handlers.Technician.AddTechnician},
		{Choice: 5, Name: "book_flight", Label: "Book Flight", Run: handlers.Booking.BookFlight},
		{Choice: 6, Name: "list_available_seats", Label: "List number of available seats for a given flight.", Run: handlers.Report.ListAvailableSeats},
		{Choice: 7, Name: "list_repairs_per_plane", Label: "List total number of repairs per plane in descending order", Run: handlers.Report.ListRepairsPerPlane},
		{Choice: 8, Name: "list_repairs_per_year", Label: "List total number of repairs per year in ascending order", Run: handlers.Report.ListRepairsPerYear},
		{Choice: 9, Name: "find_passengers_with_status", Label: "Find total number of passengers with a given status", Run: handlers.Report.FindPassengersWithStatus},
	}
}
