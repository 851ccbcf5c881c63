package report

import (
	"airline/infras/otel"
	"airline/internal/domains/report/service"
	"airline/shared/constant"
	"airline/shared/prompt"
	gRepo "airline/shared/repository"
	"airline/shared/validator"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) ListAvailableSeats(ctx context.Context, p *prompt.Prompter) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListAvailableSeats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p.Println("\n--- Available Seats ---")

	fnum, err := prompt.Ask(p, "Flight number: ", validator.Field("flight number", validator.Number))
	if err != nil {
		return err
	}

	departure, err := prompt.Ask(p, "Departure date (YYYY-MM-DD): ", validator.Field("departure date", validator.Date))
	if err != nil {
		return err
	}

	table, err := handler.service.AvailableSeats(ctx, fnum, departure)
	if err != nil {
		return err //nolint:wrapcheck
	}

	p.Printf("Seats available on flight %d departing %s:\n", fnum, departure.Format(constant.DateFormat))

	return Print(p.Output(), table)
}

func (handler *Handler) ListRepairsPerPlane(ctx context.Context, p *prompt.Prompter) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListRepairsPerPlane")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p.Println("\n--- Repairs Per Plane ---")

	table, err := handler.service.RepairsPerPlane(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return Print(p.Output(), table)
}

func (handler *Handler) ListRepairsPerYear(ctx context.Context, p *prompt.Prompter) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListRepairsPerYear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p.Println("\n--- Repairs Per Year ---")

	table, err := handler.service.RepairsPerYear(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return Print(p.Output(), table)
}

func (handler *Handler) FindPassengersWithStatus(ctx context.Context, p *prompt.Prompter) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FindPassengersWithStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	p.Println("\n--- Passengers With Status ---")

	fnum, err := prompt.Ask(p, "Flight number: ", validator.Field("flight number", validator.Number))
	if err != nil {
		return err
	}

	status, err := prompt.Ask(p, "Status (W = waitlisted, R = reserved, C = confirmed): ", validator.Status)
	if err != nil {
		return err
	}

	table, err := handler.service.PassengersWithStatus(ctx, fnum, status)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return Print(p.Output(), table)
}

// Print writes table as tab-aligned columns under a header row, followed by the row count.
func Print(w io.Writer, table gRepo.Table) error {
	if len(table.Rows) == 0 {
		_, err := fmt.Fprintln(w, "no rows")

		return err //nolint:wrapcheck
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(table.Columns, "\t"))

	for _, row := range table.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to print table: %w", err)
	}

	_, err := fmt.Fprintf(w, "total row(s): %d\n", len(table.Rows))

	return err //nolint:wrapcheck
}
