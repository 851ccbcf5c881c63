package technician

import (
	"airline/infras/otel"
	"airline/internal/domains/technician/model"
	"airline/internal/domains/technician/model/dto"
	"airline/internal/domains/technician/service"
	"airline/shared"
	"airline/shared/constant"
	"airline/shared/prompt"
	"airline/shared/validator"
	"context"
)

type Handler struct {
	service service.Technician
	otel    otel.Otel
}

func New(service service.Technician, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AddTechnician(ctx context.Context, p *prompt.Prompter) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddTechnician")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p.Println("\n--- Add Technician ---")

	var req dto.CreateTechnicianRequest

	if req.ID, err = prompt.Ask(p, "Technician ID: ", shared.NewID(ctx, "technician ID", model.EntityName, handler.service.Exists)); err != nil {
		return err
	}

	if req.FullName, err = prompt.Ask(p, "Technician full name: ", validator.Field("full name", validator.MaxText(constant.MaxPersonNameLength))); err != nil {
		return err
	}

	if err = handler.service.Create(ctx, req); err != nil {
		return err //nolint:wrapcheck
	}

	p.Printf("Technician %d added.\n", req.ID)

	return nil
}
