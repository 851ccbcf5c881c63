package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"airline/infras/otel"
	"airline/infras/postgres"
	"airline/internal/domains/technician/model"
	gRepo "airline/shared/repository"
	"context"
)

type Technician interface {
	Insert(ctx context.Context, model model.Technician) error
	Exists(ctx context.Context, id int) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Technician]
	gateway gRepo.Gateway
}

func New(db *postgres.Connection, gateway gRepo.Gateway, otel otel.Otel) Technician {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Technician](model.EntityName, model.TableName, model.FieldID, db, otel),
		gateway:    gateway,
	}
}

func (r *repositoryImpl) Exists(ctx context.Context, id int) (bool, error) {
	return r.gateway.Exists(ctx, model.TableName, model.FieldID, id) //nolint:wrapcheck
}
