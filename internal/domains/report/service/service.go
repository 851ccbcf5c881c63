package service

import (
	"airline/infras/otel"
	"airline/internal/domains/report/repository"
	"airline/shared/constant"
	gRepo "airline/shared/repository"
	"airline/shared/validator"
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type Report interface {
	AvailableSeats(ctx context.Context, fnum int, departure time.Time) (gRepo.Table, error)
	RepairsPerPlane(ctx context.Context) (gRepo.Table, error)
	RepairsPerYear(ctx context.Context) (gRepo.Table, error)
	PassengersWithStatus(ctx context.Context, fnum int, status string) (gRepo.Table, error)
}

type serviceImpl struct {
	repo repository.Report
	otel otel.Otel
}

func New(repo repository.Report, otel otel.Otel) Report {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) AvailableSeats(ctx context.Context, fnum int, departure time.Time) (res gRepo.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.AvailableSeats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.AvailableSeats(ctx, fnum, departure)
	if err != nil {
		log.Error().Err(err).Int("fnum", fnum).Msg("failed to list available seats")

		return res, err //nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) RepairsPerPlane(ctx context.Context) (res gRepo.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.RepairsPerPlane")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.RepairsPerPlane(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list repairs per plane")

		return res, err //nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) RepairsPerYear(ctx context.Context) (res gRepo.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.RepairsPerYear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.RepairsPerYear(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list repairs per year")

		return res, err //nolint:wrapcheck
	}

	return res, nil
}

// PassengersWithStatus accepts the status as a single letter or its long
// name and counts reservations of fnum holding it.
func (s *serviceImpl) PassengersWithStatus(ctx context.Context, fnum int, status string) (res gRepo.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.PassengersWithStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if status, err = validator.Status(status); err != nil {
		return res, err
	}

	res, err = s.repo.PassengersWithStatus(ctx, fnum, status)
	if err != nil {
		log.Error().Err(err).Int("fnum", fnum).Str("status", status).Msg("failed to count passengers")

		return res, err //nolint:wrapcheck
	}

	return res, nil
}
