package plane

import (
	"airline/infras/otel"
	"airline/internal/domains/plane/model"
	"airline/internal/domains/plane/model/dto"
	"airline/internal/domains/plane/service"
	"airline/shared"
	"airline/shared/constant"
	"airline/shared/prompt"
	"airline/shared/validator"
	"context"
)

type Handler struct {
	service service.Plane
	otel    otel.Otel
}

func New(service service.Plane, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// AddPlane asks for a new plane and stores it.
func (handler *Handler) AddPlane(ctx context.Context, p *prompt.Prompter) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddPlane")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p.Println("\n--- Add Plane ---")

	var req dto.CreatePlaneRequest

	if req.ID, err = prompt.Ask(p, "Plane ID: ", shared.NewID(ctx, "plane ID", model.EntityName, handler.service.Exists)); err != nil {
		return err
	}

	if req.Make, err = prompt.Ask(p, "Plane make: ", validator.Field("make", validator.MaxText(constant.MaxPlaneMakeLength))); err != nil {
		return err
	}

	if req.Model, err = prompt.Ask(p, "Plane model: ", validator.Field("model", validator.MaxText(constant.MaxPlaneModelLength))); err != nil {
		return err
	}

	if req.Age, err = prompt.Ask(p, "Plane age: ", validator.Field("age", validator.Number)); err != nil {
		return err
	}

	if req.Seats, err = prompt.Ask(p, "Number of seats: ", validator.Field("seats", validator.Range("gte=1,lt=500"))); err != nil {
		return err
	}

	if err = handler.service.Create(ctx, req); err != nil {
		return err //nolint:wrapcheck
	}

	p.Printf("Plane %d added.\n", req.ID)

	return nil
}
