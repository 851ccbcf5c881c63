package service

import (
	"airline/infras/otel"
	"airline/internal/domains/technician/model"
	"airline/internal/domains/technician/model/dto"
	"airline/internal/domains/technician/repository"
	"airline/shared/constant"
	"airline/shared/failure"
	"airline/shared/validator"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Technician interface {
	Create(ctx context.Context, req dto.CreateTechnicianRequest) error
	Exists(ctx context.Context, id int) (bool, error)
}

type serviceImpl struct {
	repo repository.Technician
	otel otel.Otel
}

func New(repo repository.Technician, otel otel.Otel) Technician {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTechnicianRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".technician.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	exist, err := s.repo.Exists(ctx, req.ID)
	if err != nil {
		log.Error().Err(err).Int("id", req.ID).Msg("failed to check if technician exists")

		return fmt.Errorf("failed to check if technician exists: %w", err)
	}

	if exist {
		return failure.Conflict(fmt.Sprintf("%s %d already exists", model.EntityName, req.ID)) //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to insert technician")

		return fmt.Errorf("failed to insert technician: %w", err)
	}

	log.Info().Int("id", req.ID).Msg("technician added")

	return nil
}

func (s *serviceImpl) Exists(ctx context.Context, id int) (bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".technician.Exists")
	defer scope.End()

	exist, err := s.repo.Exists(ctx, id)
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check if technician exists: %w", err)
	}

	return exist, nil
}
