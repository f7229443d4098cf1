package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mallbook/infras/otel"
	"mallbook/infras/postgres"
	"mallbook/internal/domains/user/model"
	"mallbook/shared/constant"
	gDto "mallbook/shared/dto"
	gRepo "mallbook/shared/repository"
	"time"
)

type User interface {
	gRepo.CRUD[model.User]

	// GetByEmail matches the normalized address. A miss returns a zero User.
	GetByEmail(ctx context.Context, email string) (model.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	RecordLogin(ctx context.Context, id string, at time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.NewFilterGroup(gDto.Filter{
		Field:    model.FieldEmail,
		Operator: gDto.FilterOperatorEq,
		Value:    model.NormalizeEmail(email),
		Table:    model.TableName,
	})
}

func (r *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.User, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetByEmail")
	defer scope.End()

	user, err := r.Get(ctx, emailFilter(email))
	if err != nil {
		scope.TraceError(err)

		return user, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *repositoryImpl) EmailTaken(ctx context.Context, email string) (bool, error) {
	taken, err := r.Exist(ctx, emailFilter(email))
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return taken, nil
}

// RecordLogin stamps last_login without touching the audit columns.
func (r *repositoryImpl) RecordLogin(ctx context.Context, id string, at time.Time) error {
	filter := gDto.NewFilterGroup(gDto.Filter{
		Field:    model.FieldID,
		Operator: gDto.FilterOperatorEq,
		Value:    id,
		Table:    model.TableName,
	})

	if err := r.Update(ctx, map[string]any{model.FieldLastLogin: at}, filter); err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}

	return nil
}
