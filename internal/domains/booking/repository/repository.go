package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"staywise/infras/otel"
	"staywise/infras/postgres"
	"staywise/internal/domains/booking/model"
	gDto "staywise/shared/dto"
	gRepo "staywise/shared/repository"
)

type Booking interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error)
}

type Payment interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Payment, error)
}

type Maintenance interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.MaintenanceRequest, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

type paymentRepositoryImpl struct {
	gRepo.Repository[model.Payment]
}

func NewPayment(db *postgres.Connection, otel otel.Otel) Payment {
	return &paymentRepositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.PaymentEntity, model.PaymentTableName, model.FieldID, db, otel),
	}
}

type maintenanceRepositoryImpl struct {
	gRepo.Repository[model.MaintenanceRequest]
}

func NewMaintenance(db *postgres.Connection, otel otel.Otel) Maintenance {
	return &maintenanceRepositoryImpl{
		Repository: gRepo.NewRepository[model.MaintenanceRequest](model.MaintenanceEntity, model.MaintenanceTableName, model.FieldID, db, otel),
	}
}
