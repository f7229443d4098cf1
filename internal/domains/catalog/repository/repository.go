package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"mallbook/infras/otel"
	"mallbook/infras/postgres"
	"mallbook/internal/domains/catalog/model"
	gRepo "mallbook/shared/repository"
)

// bookableColumns is what admission reads from a service: its slot shape, price and the labels
// denormalized onto the booking.
var bookableColumns = []string{
	model.FieldID,
	model.FieldStoreID,
	model.FieldName,
	model.FieldCategory,
	model.FieldPrice,
	model.FieldDurationMinutes,
	model.FieldCapacity,
	model.FieldIsActive,
	model.FieldAvailability,
	model.FieldStoreName,
}

// Service stores the bookable offerings of each store.
type Service interface {
	gRepo.CRUD[model.Service]

	// GetBookable loads the admission view of a service. A miss returns a zero Service.
	GetBookable(ctx context.Context, id string) (model.Service, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Service]
}

func New(db *postgres.Connection, tracer otel.Otel) Service {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Service](model.EntityName, model.TableName, model.FieldID, db, tracer),
	}
}

func (r *repositoryImpl) GetBookable(ctx context.Context, id string) (model.Service, error) {
	return r.GetByID(ctx, id, bookableColumns...) //nolint:wrapcheck
}
