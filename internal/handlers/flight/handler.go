package flight

import (
	"airline/infras/otel"
	"airline/internal/domains/flight/model"
	"airline/internal/domains/flight/model/dto"
	"airline/internal/domains/flight/service"
	pilotModel "airline/internal/domains/pilot/model"
	pilotService "airline/internal/domains/pilot/service"
	planeModel "airline/internal/domains/plane/model"
	planeService "airline/internal/domains/plane/service"
	"airline/shared"
	"airline/shared/constant"
	"airline/shared/failure"
	"airline/shared/prompt"
	"airline/shared/validator"
	"context"
	"time"
)

type Handler struct {
	service      service.Flight
	planeService planeService.Plane
	pilotService pilotService.Pilot
	otel         otel.Otel
}

func New(service service.Flight, planeService planeService.Plane, pilotService pilotService.Pilot, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		planeService: planeService,
		pilotService: pilotService,
		otel:         otel,
	}
}

// AddFlight asks for a new flight together with the plane and pilot operating it.
func (handler *Handler) AddFlight(ctx context.Context, p *prompt.Prompter) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddFlight")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p.Println("\n--- Add Flight ---")

	var req dto.CreateFlightRequest

	if req.FNum, err = prompt.Ask(p, "Flight number: ", shared.NewID(ctx, "flight number", model.EntityName, handler.service.Exists)); err != nil {
		return err
	}

	if req.Cost, err = prompt.Ask(p, "Flight cost: ", validator.Field("cost", validator.PositiveNumber)); err != nil {
		return err
	}

	if req.NumSold, err = prompt.Ask(p, "Number of seats sold: ", validator.Field("seats sold", validator.Number)); err != nil {
		return err
	}

	if req.NumStops, err = prompt.Ask(p, "Number of stops: ", validator.Field("number of stops", validator.Number)); err != nil {
		return err
	}

	if req.DepartureDate, err = prompt.Ask(p, "Departure date (YYYY-MM-DD): ", validator.Field("departure date", validator.Date)); err != nil {
		return err
	}

	if req.ArrivalDate, err = prompt.Ask(p, "Arrival date (YYYY-MM-DD): ", arrivalDate(req.DepartureDate)); err != nil {
		return err
	}

	if req.ArrivalAirport, err = prompt.Ask(p, "Arrival airport code: ", validator.Field("arrival airport", validator.AirportCode)); err != nil {
		return err
	}

	if req.DepartureAirport, err = prompt.Ask(p, "Departure airport code: ", validator.Field("departure airport", validator.AirportCode)); err != nil {
		return err
	}

	if req.PlaneID, err = prompt.Ask(p, "Plane ID: ", shared.ExistingID(ctx, "plane ID", planeModel.EntityName, handler.planeService.Exists)); err != nil {
		return err
	}

	if req.PilotID, err = prompt.Ask(p, "Pilot ID: ", shared.ExistingID(ctx, "pilot ID", pilotModel.EntityName, handler.pilotService.Exists)); err != nil {
		return err
	}

	if err = handler.service.Create(ctx, req); err != nil {
		return err //nolint:wrapcheck
	}

	p.Printf("Flight %d added.\n", req.FNum)

	return nil
}

func arrivalDate(departure time.Time) func(string) (time.Time, error) {
	return func(raw string) (time.Time, error) {
		arrival, err := validator.Date("arrival date", raw)
		if err != nil {
			return arrival, err
		}

		if arrival.Before(departure) {
			return time.Time{}, failure.BadRequestFromString("arrival date must not be before the departure date " + departure.Format(constant.DateFormat)) //nolint:wrapcheck
		}

		return arrival, nil
	}
}
