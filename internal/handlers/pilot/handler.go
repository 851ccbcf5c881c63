package pilot

import (
	"airline/infras/otel"
	"airline/internal/domains/pilot/model"
	"airline/internal/domains/pilot/model/dto"
	"airline/internal/domains/pilot/service"
	"airline/shared"
	"airline/shared/constant"
	"airline/shared/prompt"
	"airline/shared/validator"
	"context"
)

type Handler struct {
	service service.Pilot
	otel    otel.Otel
}

func New(service service.Pilot, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// AddPilot asks for a new pilot and stores it. Name and nationality may be left blank.
func (handler *Handler) AddPilot(ctx context.Context, p *prompt.Prompter) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddPilot")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p.Println("\n--- Add Pilot ---")

	var req dto.CreatePilotRequest

	if req.ID, err = prompt.Ask(p, "Pilot ID: ", shared.NewID(ctx, "pilot ID", model.EntityName, handler.service.Exists)); err != nil {
		return err
	}

	if req.Fullname, err = prompt.Ask(p, "Pilot fullname: ", validator.Field("fullname", validator.OptionalMaxText(constant.MaxPersonNameLength))); err != nil {
		return err
	}

	if req.Nationality, err = prompt.Ask(p, "Pilot nationality: ", validator.Field("nationality", validator.OptionalMaxText(constant.MaxNationalityLength))); err != nil {
		return err
	}

	if err = handler.service.Create(ctx, req); err != nil {
		return err //nolint:wrapcheck
	}

	p.Printf("Pilot %d added.\n", req.ID)

	return nil
}
