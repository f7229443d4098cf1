package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mallbook/infras/otel"
	"mallbook/infras/postgres"
	"mallbook/internal/domains/store/model"
	gDto "mallbook/shared/dto"
	gRepo "mallbook/shared/repository"
)

type Store interface {
	gRepo.CRUD[model.Store]

	// GetManagedBy returns the oldest active store of a manager, or a zero Store.
	GetManagedBy(ctx context.Context, managerID string) (model.Store, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Store]
}

func New(db *postgres.Connection, tracer otel.Otel) Store {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Store](model.EntityName, model.TableName, model.FieldID, db, tracer),
	}
}

// oldestFirst keeps the resolved store stable when a manager runs several.
var oldestFirst = gDto.QueryParams{
	Page:    1,
	Limit:   1,
	SortBy:  model.TableName + ".created_at",
	SortDir: gDto.SortDirAsc,
}

func (r *repositoryImpl) GetManagedBy(ctx context.Context, managerID string) (model.Store, error) {
	filter := gDto.NewFilterGroup(
		gDto.Filter{Field: model.FieldManagerID, Operator: gDto.FilterOperatorEq, Value: managerID, Table: model.TableName},
		gDto.Filter{Field: model.FieldIsActive, Operator: gDto.FilterOperatorEq, Value: true, Table: model.TableName},
	)

	stores, err := r.GetAll(ctx, oldestFirst, filter, model.FieldID)
	if err != nil {
		return model.Store{}, fmt.Errorf("failed to get managed store: %w", err)
	}

	if len(stores) == 0 {
		return model.Store{}, nil
	}

	return stores[0], nil
}
