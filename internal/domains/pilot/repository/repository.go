package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"airline/infras/otel"
	"airline/infras/postgres"
	"airline/internal/domains/pilot/model"
	gRepo "airline/shared/repository"
	"context"
)

type Pilot interface {
	Insert(ctx context.Context, model model.Pilot) error
	Exists(ctx context.Context, id int) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Pilot]
	gateway gRepo.Gateway
}

func New(db *postgres.Connection, gateway gRepo.Gateway, otel otel.Otel) Pilot {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Pilot](model.EntityName, model.TableName, model.FieldID, db, otel),
		gateway:    gateway,
	}
}

func (r *repositoryImpl) Exists(ctx context.Context, id int) (bool, error) {
	return r.gateway.Exists(ctx, model.TableName, model.FieldID, id) //nolint:wrapcheck
}
