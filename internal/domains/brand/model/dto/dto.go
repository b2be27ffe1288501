package dto

import (
	"bookly/internal/domains/brand/model"
	"bookly/shared"
	gDto "bookly/shared/dto"
	gModel "bookly/shared/model"
	"bookly/shared/timezone"

	"github.com/google/uuid"
)

type CreateBrandRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Slug     string `json:"slug"     validate:"required,max=100,lowercase"`
	Timezone string `json:"timezone" validate:"omitempty,max=64"`
	Active   *bool  `json:"active"   validate:"omitempty"`
}

func (c *CreateBrandRequest) ToModel(user string) model.Brand {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Brand{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Slug:     c.Slug,
		Timezone: c.Timezone,
		Active:   active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBrandRequest struct {
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Slug     string `db:"slug"     json:"slug"     validate:"omitempty,max=100,lowercase"`
	Timezone string `db:"timezone" json:"timezone" validate:"omitempty,max=64"`
	Active   *bool  `db:"active"   json:"active"   validate:"omitempty"`
}

type BrandResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Timezone string `json:"timezone"`
	Active   bool   `json:"active"`
	gDto.Metadata
}

func (r *BrandResponse) FromModel(model model.Brand) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Timezone = model.Timezone
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetBrandsResponse struct {
	Brands    []BrandResponse `json:"brands"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetBrandsResponse) FromModels(models []model.Brand, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Brands = make([]BrandResponse, len(models))
	for i, mod := range models {
		r.Brands[i].FromModel(mod)
	}
}
