package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"airline/infras/otel"
	"airline/infras/postgres"
	"airline/internal/domains/booking/model"
	gRepo "airline/shared/repository"
	"context"
)

type Booking interface {
	// Insert stores the reservation and returns the number the database assigned to it.
	Insert(ctx context.Context, model model.Reservation) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldRNum, db, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, model model.Reservation) (int, error) {
	var rnum int

	if err := r.InsertReturning(ctx, model, &rnum); err != nil {
		return 0, err //nolint:wrapcheck
	}

	return rnum, nil
}
