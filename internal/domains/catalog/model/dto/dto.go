package dto

import (
	"mallbook/internal/domains/catalog/model"
	"mallbook/shared"
	gDto "mallbook/shared/dto"
	gModel "mallbook/shared/model"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type CreateServiceRequest struct {
	StoreID         string             `json:"store_id"               validate:"required,uuid"`
	Name            string             `json:"name"                   validate:"required,max=100"`
	Description     string             `json:"description"            validate:"required,max=1000"`
	Category        string             `json:"category"               validate:"required,oneof=restaurant entertainment beauty fitness shopping services facilities"`
	Price           decimal.Decimal    `json:"price"                  swaggertype:"number"`
	DurationMinutes int                `json:"duration_minutes"       validate:"required,min=15"`
	Capacity        int                `json:"capacity,omitempty"     validate:"omitempty,min=1"`
	Availability    model.Availability `json:"availability,omitempty" validate:"omitempty,rules"`
	Features        []string           `json:"features,omitempty"     validate:"omitempty,dive,max=100"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	capacity := c.Capacity
	if capacity == 0 {
		capacity = model.DefaultCapacity
	}

	availability := c.Availability
	if len(availability) == 0 {
		availability = model.DefaultAvailability()
	}

	features := c.Features
	if features == nil {
		features = []string{}
	}

	return model.Service{
		ID:              uuid.NewString(),
		StoreID:         c.StoreID,
		Name:            c.Name,
		Description:     c.Description,
		Category:        c.Category,
		Price:           c.Price.Round(2),
		DurationMinutes: c.DurationMinutes,
		Capacity:        capacity,
		IsActive:        true,
		Availability:    availability,
		Features:        pq.StringArray(features),
		Metadata:        gModel.NewMetadata(user),
	}
}

// UpdateServiceRequest carries only the fields to change. Price uses a pointer so a free service
// can still be set explicitly.
type UpdateServiceRequest struct {
	Name            string             `db:"name"             json:"name,omitempty"             validate:"omitempty,max=100"`
	Description     string             `db:"description"      json:"description,omitempty"      validate:"omitempty,max=1000"`
	Category        string             `db:"category"         json:"category,omitempty"         validate:"omitempty,oneof=restaurant entertainment beauty fitness shopping services facilities"`
	Price           *decimal.Decimal   `db:"price"            json:"price,omitempty"            swaggertype:"number"`
	DurationMinutes int                `db:"duration_minutes" json:"duration_minutes,omitempty" validate:"omitempty,min=15"`
	Capacity        int                `db:"capacity"         json:"capacity,omitempty"         validate:"omitempty,min=1"`
	Availability    model.Availability `db:"availability"     json:"availability,omitempty"     validate:"omitempty,rules"`
	Features        pq.StringArray     `db:"features"         json:"features,omitempty"         swaggertype:"array,string" validate:"omitempty,dive,max=100"`
	IsActive        *bool              `db:"is_active"        json:"is_active,omitempty"`
}

func (u *UpdateServiceRequest) IsEmpty() bool {
	return u.Name == "" && u.Description == "" && u.Category == "" && u.Price == nil && u.DurationMinutes == 0 &&
		u.Capacity == 0 && u.Availability == nil && u.Features == nil && u.IsActive == nil
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type updateImageRequest struct {
	Image *string `db:"image"`
}

// ImageFields is the update applied after an upload.
func ImageFields(url, user string) map[string]any {
	return shared.TransformFields(updateImageRequest{Image: &url}, user)
}

type ServiceResponse struct {
	ID              string             `json:"id"`
	StoreID         string             `json:"store_id"`
	StoreName       *string            `json:"store_name,omitempty"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Category        string             `json:"category"`
	Price           decimal.Decimal    `json:"price"            swaggertype:"number"`
	DurationMinutes int                `json:"duration_minutes"`
	Capacity        int                `json:"capacity"`
	IsActive        bool               `json:"is_active"`
	Availability    model.Availability `json:"availability"`
	Features        []string           `json:"features"`
	Image           *string            `json:"image,omitempty"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.StoreID = model.StoreID
	r.StoreName = model.StoreName
	r.Name = model.Name
	r.Description = model.Description
	r.Category = model.Category
	r.Price = model.Price
	r.DurationMinutes = model.DurationMinutes
	r.Capacity = model.Capacity
	r.IsActive = model.IsActive
	r.Availability = model.Availability
	r.Features = model.Features
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, m := range models {
		r.Services[i].FromModel(m)
	}
}
