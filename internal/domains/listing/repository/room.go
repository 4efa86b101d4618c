package repository

//go:generate go run go.uber.org/mock/mockgen -source=./room.go -destination=../mocks/room_mock.go -package=mocks

import (
	"context"
	"staywise/infras/otel"
	"staywise/infras/postgres"
	"staywise/internal/domains/listing/model"
	gDto "staywise/shared/dto"
	gRepo "staywise/shared/repository"
)

type Room interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Room, error)
}

type roomRepositoryImpl struct {
	gRepo.Repository[model.Room]
}

func NewRoom(db *postgres.Connection, otel otel.Otel) Room {
	return &roomRepositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.RoomEntity, model.RoomTableName, model.FieldID, db, otel),
	}
}
