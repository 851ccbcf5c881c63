package service

import (
	"airline/infras/otel"
	"airline/internal/domains/flight/model"
	"airline/internal/domains/flight/model/dto"
	"airline/internal/domains/flight/repository"
	pilotRepo "airline/internal/domains/pilot/repository"
	planeRepo "airline/internal/domains/plane/repository"
	"airline/shared/constant"
	"airline/shared/failure"
	"airline/shared/validator"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Flight interface {
	Create(ctx context.Context, req dto.CreateFlightRequest) error
	Exists(ctx context.Context, fnum int) (bool, error)
}

type serviceImpl struct {
	repo      repository.Flight
	planeRepo planeRepo.Plane
	pilotRepo pilotRepo.Pilot
	otel      otel.Otel
}

func New(repo repository.Flight, planeRepo planeRepo.Plane, pilotRepo pilotRepo.Pilot, otel otel.Otel) Flight {
	return &serviceImpl{
		repo:      repo,
		planeRepo: planeRepo,
		pilotRepo: pilotRepo,
		otel:      otel,
	}
}

// Create stores the flight and then the plane and pilot assignment that the
// seat queries join through.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFlightRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	exist, err := s.repo.Exists(ctx, req.FNum)
	if err != nil {
		log.Error().Err(err).Int("fnum", req.FNum).Msg("failed to check if flight exists")

		return fmt.Errorf("failed to check if flight exists: %w", err)
	}

	if exist {
		return failure.Conflict(fmt.Sprintf("%s %d already exists", model.EntityName, req.FNum)) //nolint:wrapcheck
	}

	if err = s.checkReferences(ctx, req); err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to insert flight")

		return fmt.Errorf("failed to insert flight: %w", err)
	}

	if err = s.repo.InsertInfo(ctx, req.ToInfoModel()); err != nil {
		log.Error().Err(err).Int("fnum", req.FNum).Msg("flight stored without plane and pilot assignment")

		return fmt.Errorf("failed to insert flight info: %w", err)
	}

	log.Info().Int("fnum", req.FNum).Int("plane_id", req.PlaneID).Int("pilot_id", req.PilotID).Msg("flight added")

	return nil
}

func (s *serviceImpl) checkReferences(ctx context.Context, req dto.CreateFlightRequest) error {
	exist, err := s.planeRepo.Exists(ctx, req.PlaneID)
	if err != nil {
		return fmt.Errorf("failed to check if plane exists: %w", err)
	}

	if !exist {
		return failure.NotFound(fmt.Sprintf("plane %d does not exist", req.PlaneID)) //nolint:wrapcheck
	}

	exist, err = s.pilotRepo.Exists(ctx, req.PilotID)
	if err != nil {
		return fmt.Errorf("failed to check if pilot exists: %w", err)
	}

	if !exist {
		return failure.NotFound(fmt.Sprintf("pilot %d does not exist", req.PilotID)) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Exists(ctx context.Context, fnum int) (bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.Exists")
	defer scope.End()

	exist, err := s.repo.Exists(ctx, fnum)
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check if flight exists: %w", err)
	}

	return exist, nil
}
