//go:build wireinject
// +build wireinject

package di

import (
	"airline/config"
	"airline/infras/otel"
	"airline/infras/postgres"
	"airline/shared/prompt"
	"airline/shared/repository"
	"airline/transport/console"
	"airline/transport/console/router"

	bookingRepository "airline/internal/domains/booking/repository"
	bookingService "airline/internal/domains/booking/service"
	customerRepository "airline/internal/domains/customer/repository"
	customerService "airline/internal/domains/customer/service"
	flightRepository "airline/internal/domains/flight/repository"
	flightService "airline/internal/domains/flight/service"
	pilotRepository "airline/internal/domains/pilot/repository"
	pilotService "airline/internal/domains/pilot/service"
	planeRepository "airline/internal/domains/plane/repository"
	planeService "airline/internal/domains/plane/service"
	reportRepository "airline/internal/domains/report/repository"
	reportService "airline/internal/domains/report/service"
	technicianRepository "airline/internal/domains/technician/repository"
	technicianService "airline/internal/domains/technician/service"

	bookingHandler "airline/internal/handlers/booking"
	flightHandler "airline/internal/handlers/flight"
	pilotHandler "airline/internal/handlers/pilot"
	planeHandler "airline/internal/handlers/plane"
	reportHandler "airline/internal/handlers/report"
	technicianHandler "airline/internal/handlers/technician"

	"github.com/google/wire"
)

var infrastructures = wire.NewSet(
	otel.New,
	prompt.New,
)

var sharedHelpers = wire.NewSet(
	repository.NewGateway,
)

var planeDomain = wire.NewSet(
	planeRepository.New,
	planeService.New,
)

var pilotDomain = wire.NewSet(
	pilotRepository.New,
	pilotService.New,
)

var flightDomain = wire.NewSet(
	flightRepository.New,
	flightService.New,
)

var technicianDomain = wire.NewSet(
	technicianRepository.New,
	technicianService.New,
)

var bookingDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
	bookingRepository.New,
	bookingService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var domains = wire.NewSet(
	planeDomain,
	pilotDomain,
	flightDomain,
	technicianDomain,
	bookingDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	planeHandler.New,
	pilotHandler.New,
	flightHandler.New,
	technicianHandler.New,
	bookingHandler.New,
	reportHandler.New,
	router.New,
)

// InitializeConsole builds the menu over an open connection. The caller owns
// the connection and closes it.
func InitializeConsole(cfg *config.Config, conn *postgres.Connection, streams prompt.Streams) *console.Console {
	wire.Build(
		infrastructures,
		sharedHelpers,
		domains,
		routing,
		console.New,
	)

	return nil
}
