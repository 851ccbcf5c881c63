package service

import (
	"airline/infras/otel"
	"airline/internal/domains/pilot/model"
	"airline/internal/domains/pilot/model/dto"
	"airline/internal/domains/pilot/repository"
	"airline/shared/constant"
	"airline/shared/failure"
	"airline/shared/validator"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Pilot interface {
	Create(ctx context.Context, req dto.CreatePilotRequest) error
	Exists(ctx context.Context, id int) (bool, error)
}

type serviceImpl struct {
	repo repository.Pilot
	otel otel.Otel
}

func New(repo repository.Pilot, otel otel.Otel) Pilot {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePilotRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pilot.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	exist, err := s.repo.Exists(ctx, req.ID)
	if err != nil {
		log.Error().Err(err).Int("id", req.ID).Msg("failed to check if pilot exists")

		return fmt.Errorf("failed to check if pilot exists: %w", err)
	}

	if exist {
		return failure.Conflict(fmt.Sprintf("%s %d already exists", model.EntityName, req.ID)) //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to insert pilot")

		return fmt.Errorf("failed to insert pilot: %w", err)
	}

	log.Info().Int("id", req.ID).Msg("pilot added")

	return nil
}

func (s *serviceImpl) Exists(ctx context.Context, id int) (bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pilot.Exists")
	defer scope.End()

	exist, err := s.repo.Exists(ctx, id)
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check if pilot exists: %w", err)
	}

	return exist, nil
}
