package service

import (
	"airline/infras/otel"
	"airline/internal/domains/customer/repository"
	"airline/shared/constant"
	"context"
	"fmt"
)

// Customer answers profile lookups for the booking prompts. Customers are
// written by the booking service together with their reservation.
type Customer interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type serviceImpl struct {
	repo repository.Customer
	otel otel.Otel
}

func New(repo repository.Customer, otel otel.Otel) Customer {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Exists(ctx context.Context, id int) (bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Exists")
	defer scope.End()

	exist, err := s.repo.Exists(ctx, id)
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check if customer exists: %w", err)
	}

	return exist, nil
}
