package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"bookly/infras/otel"
	"bookly/infras/postgres"
	"bookly/internal/domains/appointment/model"
	gDto "bookly/shared/dto"
	gRepo "bookly/shared/repository"
)

type Appointment interface {
	Insert(ctx context.Context, model model.Appointment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Appointment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Appointment, error)
	GetForWindow(ctx context.Context, brandID string, from, to time.Time) ([]model.Appointment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type appointmentImpl struct {
	gRepo.Repository[model.Appointment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Appointment {
	return &appointmentImpl{
		Repository: gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetForWindow returns the brand's appointments whose interval touches
// [from, to]. The scheduling engine applies the exact half-open overlap
// rule on the result.
func (r *appointmentImpl) GetForWindow(ctx context.Context, brandID string, from, to time.Time) ([]model.Appointment, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBrandID,
				Operator: gDto.FilterOperatorEq,
				Value:    brandID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStartTime,
				Operator: gDto.FilterOperatorLessEq,
				Value:    to,
				Table:    model.TableName,
				ArgName:  "window_end",
			},
			gDto.Filter{
				Field:    model.FieldEndTime,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    from,
				Table:    model.TableName,
				ArgName:  "window_start",
			},
		},
	}

	params := gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}

	return r.Repository.GetAll(ctx, params, filter)
}
