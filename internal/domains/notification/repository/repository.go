package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"staywise/infras/otel"
	"staywise/infras/postgres"
	"staywise/internal/domains/notification/model"
	gDto "staywise/shared/dto"
	gRepo "staywise/shared/repository"
)

type Notification interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Notification, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Notification]
}

func New(db *postgres.Connection, otel otel.Otel) Notification {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Notification](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
