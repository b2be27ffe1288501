package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"bookly/infras/otel"
	"bookly/infras/postgres"
	"bookly/internal/domains/schedule/model"
	gDto "bookly/shared/dto"
	gRepo "bookly/shared/repository"
)

type WeeklyHours interface {
	Insert(ctx context.Context, model model.WeeklyHours) error
	InsertBulk(ctx context.Context, models []model.WeeklyHours) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.WeeklyHours, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type DateException interface {
	Insert(ctx context.Context, model model.DateException) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DateException, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DateException, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type BookingPolicy interface {
	Insert(ctx context.Context, model model.BookingPolicy) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingPolicy, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type weeklyHoursImpl struct {
	gRepo.Repository[model.WeeklyHours]
	db   *postgres.Connection
	otel otel.Otel
}

func NewWeeklyHours(db *postgres.Connection, otel otel.Otel) WeeklyHours {
	return &weeklyHoursImpl{
		Repository: gRepo.NewRepository[model.WeeklyHours](model.WeeklyHoursEntityName, model.WeeklyHoursTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type dateExceptionImpl struct {
	gRepo.Repository[model.DateException]
	db   *postgres.Connection
	otel otel.Otel
}

func NewDateException(db *postgres.Connection, otel otel.Otel) DateException {
	return &dateExceptionImpl{
		Repository: gRepo.NewRepository[model.DateException](model.DateExceptionEntityName, model.DateExceptionTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type bookingPolicyImpl struct {
	gRepo.Repository[model.BookingPolicy]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBookingPolicy(db *postgres.Connection, otel otel.Otel) BookingPolicy {
	return &bookingPolicyImpl{
		Repository: gRepo.NewRepository[model.BookingPolicy](model.BookingPolicyEntityName, model.BookingPolicyTableName, model.FieldBrandID, db, otel),
		db:         db,
		otel:       otel,
	}
}
