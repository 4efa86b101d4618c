package repository

//go:generate go run go.uber.org/mock/mockgen -source=./listing.go -destination=../mocks/listing_mock.go -package=mocks

import (
	"context"
	"staywise/infras/otel"
	"staywise/infras/postgres"
	"staywise/internal/domains/listing/model"
	gDto "staywise/shared/dto"
	gRepo "staywise/shared/repository"
)

type Listing interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Listing, error)
}

type listingRepositoryImpl struct {
	gRepo.Repository[model.Listing]
}

func NewListing(db *postgres.Connection, otel otel.Otel) Listing {
	return &listingRepositoryImpl{
		Repository: gRepo.NewRepository[model.Listing](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
