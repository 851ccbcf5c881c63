package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"airline/shared/constant"
	gRepo "airline/shared/repository"
	"context"
	"fmt"
	"time"
)

const (
	queryAvailableSeats = "SELECT (p.seats - f.num_sold) AS seats_available " +
		"FROM flight f " +
		"JOIN flightinfo fi ON fi.flight_id = f.fnum " +
		"JOIN plane p ON p.id = fi.plane_id " +
		"WHERE f.fnum = $1 AND f.actual_departure_date = $2"

	queryRepairsPerPlane = "SELECT p.id AS plane_id, p.make, p.model, COUNT(r.rid) AS total_repairs " +
		"FROM plane p " +
		"LEFT JOIN repairs r ON r.plane_id = p.id " +
		"GROUP BY p.id, p.make, p.model " +
		"ORDER BY total_repairs DESC, p.id ASC"

	queryRepairsPerYear = "SELECT EXTRACT(YEAR FROM r.repair_date)::int AS repair_year, COUNT(*) AS total_repairs " +
		"FROM repairs r " +
		"GROUP BY repair_year " +
		"ORDER BY repair_year ASC"

	queryPassengersWithStatus = "SELECT COUNT(*) AS passengers " +
		"FROM reservation " +
		"WHERE fid = $1 AND status = $2"
)

// Report runs the fixed reporting queries. Results come back as text tables.
type Report interface {
	AvailableSeats(ctx context.Context, fnum int, departure time.Time) (gRepo.Table, error)
	RepairsPerPlane(ctx context.Context) (gRepo.Table, error)
	RepairsPerYear(ctx context.Context) (gRepo.Table, error)
	PassengersWithStatus(ctx context.Context, fnum int, status string) (gRepo.Table, error)
}

type repositoryImpl struct {
	gateway gRepo.Gateway
}

func New(gateway gRepo.Gateway) Report {
	return &repositoryImpl{
		gateway: gateway,
	}
}

func (r *repositoryImpl) AvailableSeats(ctx context.Context, fnum int, departure time.Time) (gRepo.Table, error) {
	return r.query(ctx, "available seats", queryAvailableSeats, fnum, departure.Format(constant.DateFormat))
}

func (r *repositoryImpl) RepairsPerPlane(ctx context.Context) (gRepo.Table, error) {
	return r.query(ctx, "repairs per plane", queryRepairsPerPlane)
}

func (r *repositoryImpl) RepairsPerYear(ctx context.Context) (gRepo.Table, error) {
	return r.query(ctx, "repairs per year", queryRepairsPerYear)
}

func (r *repositoryImpl) PassengersWithStatus(ctx context.Context, fnum int, status string) (gRepo.Table, error) {
	return r.query(ctx, "passengers with status", queryPassengersWithStatus, fnum, status)
}

func (r *repositoryImpl) query(ctx context.Context, name, statement string, args ...any) (gRepo.Table, error) {
	table, err := r.gateway.Query(ctx, statement, args...)
	if err != nil {
		return table, fmt.Errorf("failed to list %s: %w", name, err)
	}

	return table, nil
}
