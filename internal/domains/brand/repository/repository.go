package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"bookly/infras/otel"
	"bookly/infras/postgres"
	"bookly/internal/domains/brand/model"
	gDto "bookly/shared/dto"
	gRepo "bookly/shared/repository"
)

type Brand interface {
	Insert(ctx context.Context, model model.Brand) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Brand, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Brand, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Brand]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Brand {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Brand](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
