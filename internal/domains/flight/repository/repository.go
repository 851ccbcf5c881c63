package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"airline/infras/otel"
	"airline/infras/postgres"
	"airline/internal/domains/flight/model"
	"airline/shared/constant"
	gDto "airline/shared/dto"
	"airline/shared/failure"
	gRepo "airline/shared/repository"
	"context"
	"fmt"
	"strconv"
)

const (
	queryFlightSeats = "SELECT p.seats, f.num_sold FROM flight f " +
		"JOIN flightinfo fi ON fi.flight_id = f.fnum " +
		"JOIN plane p ON p.id = fi.plane_id " +
		"WHERE f.fnum = $1 LIMIT 1"

	argOldNumSold = "old_num_sold"
)

type Flight interface {
	Insert(ctx context.Context, model model.Flight) error
	InsertInfo(ctx context.Context, info model.FlightInfo) error
	Exists(ctx context.Context, fnum int) (bool, error)
	Seats(ctx context.Context, fnum int) (model.Seats, error)
	UpdateSold(ctx context.Context, fnum, oldSold, newSold int) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Flight]
	info    gRepo.Repository[model.FlightInfo]
	gateway gRepo.Gateway
	otel    otel.Otel
}

func New(db *postgres.Connection, gateway gRepo.Gateway, otel otel.Otel) Flight {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Flight](model.EntityName, model.TableName, model.FieldFNum, db, otel),
		info:       gRepo.NewRepository[model.FlightInfo](model.InfoEntityName, model.InfoTableName, model.FieldInfoID, db, otel),
		gateway:    gateway,
		otel:       otel,
	}
}

func (r *repositoryImpl) InsertInfo(ctx context.Context, info model.FlightInfo) error {
	return r.info.Insert(ctx, info) //nolint:wrapcheck
}

func (r *repositoryImpl) Exists(ctx context.Context, fnum int) (bool, error) {
	return r.gateway.Exists(ctx, model.TableName, model.FieldFNum, fnum) //nolint:wrapcheck
}

// Seats reads the plane capacity and the seats sold for fnum. The gateway
// hands both back as text, so a value that is not a whole number is reported
// instead of being read as zero.
func (r *repositoryImpl) Seats(ctx context.Context, fnum int) (model.Seats, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".flight.Seats")
	defer scope.End()

	var seats model.Seats

	table, err := r.gateway.Query(ctx, queryFlightSeats, fnum)
	if err != nil {
		return seats, fmt.Errorf("failed to read seats of flight %d: %w", fnum, err)
	}

	if len(table.Rows) == 0 {
		return seats, failure.NotFound(fmt.Sprintf("flight %d does not exist or has no plane assigned", fnum)) //nolint:wrapcheck
	}

	row := table.Rows[0]
	if len(row) < 2 {
		return seats, fmt.Errorf("unexpected seats row for flight %d: %v", fnum, row)
	}

	if seats.Capacity, err = strconv.Atoi(row[0]); err != nil {
		scope.TraceError(err)

		return seats, fmt.Errorf("invalid seat capacity %q for flight %d: %w", row[0], fnum, err)
	}

	if seats.Sold, err = strconv.Atoi(row[1]); err != nil {
		scope.TraceError(err)

		return seats, fmt.Errorf("invalid seats sold %q for flight %d: %w", row[1], fnum, err)
	}

	return seats, nil
}

// UpdateSold moves num_sold from oldSold to newSold and reports false when
// num_sold no longer holds oldSold.
func (r *repositoryImpl) UpdateSold(ctx context.Context, fnum, oldSold, newSold int) (bool, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldFNum, Value: fnum, Operator: gDto.FilterOperatorEq},
			gDto.Filter{ArgName: argOldNumSold, Field: model.FieldNumSold, Value: oldSold, Operator: gDto.FilterOperatorEq},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	affected, err := r.Update(ctx, map[string]any{model.FieldNumSold: newSold}, filter)
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return affected == 1, nil
}
