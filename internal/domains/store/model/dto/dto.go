package dto

import (
	"mallbook/internal/domains/store/model"
	"mallbook/shared"
	gDto "mallbook/shared/dto"
	gModel "mallbook/shared/model"
	"mime/multipart"

	"github.com/google/uuid"
)

type CreateStoreRequest struct {
	Name        string                `json:"name"                 validate:"required,max=100"`
	Description string                `json:"description"          validate:"omitempty,max=1000"`
	Category    string                `json:"category"             validate:"required,oneof=fashion electronics food beauty entertainment services other"`
	Floor       string                `json:"floor"                validate:"required,max=20"`
	Unit        string                `json:"unit"                 validate:"required,max=20"`
	Phone       *string               `json:"phone,omitempty"      validate:"omitempty,max=20"`
	Email       *string               `json:"email,omitempty"      validate:"omitempty,email"`
	ManagerID   *string               `json:"manager_id,omitempty" validate:"omitempty,uuid"`
	Image       *multipart.FileHeader `json:"image"                swaggerignore:"true" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
}

func (c *CreateStoreRequest) ToModel(user string, imageURL *string) model.Store {
	return model.Store{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		Floor:       c.Floor,
		Unit:        c.Unit,
		Phone:       c.Phone,
		Email:       c.Email,
		ManagerID:   c.ManagerID,
		Image:       imageURL,
		IsActive:    true,
		Metadata:    gModel.NewMetadata(user),
	}
}

// UpdateStoreRequest only touches the non-zero fields, see shared.TransformFields.
type UpdateStoreRequest struct {
	Name        string                `db:"name"        json:"name,omitempty"        validate:"omitempty,max=100"`
	Description string                `db:"description" json:"description,omitempty" validate:"omitempty,max=1000"`
	Category    string                `db:"category"    json:"category,omitempty"    validate:"omitempty,oneof=fashion electronics food beauty entertainment services other"`
	Floor       string                `db:"floor"       json:"floor,omitempty"       validate:"omitempty,max=20"`
	Unit        string                `db:"unit"        json:"unit,omitempty"        validate:"omitempty,max=20"`
	Phone       *string               `db:"phone"       json:"phone,omitempty"       validate:"omitempty,max=20"`
	Email       *string               `db:"email"       json:"email,omitempty"       validate:"omitempty,email"`
	ManagerID   *string               `db:"manager_id"  json:"manager_id,omitempty"  validate:"omitempty,uuid"`
	IsActive    *bool                 `db:"is_active"   json:"is_active,omitempty"`
	ImageURL    *string               `db:"image"       json:"-"`
	Image       *multipart.FileHeader `json:"image"     swaggerignore:"true"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
}

// IsEmpty reports whether the request carries nothing to update.
func (u *UpdateStoreRequest) IsEmpty() bool {
	return u.Name == "" && u.Description == "" && u.Category == "" && u.Floor == "" && u.Unit == "" &&
		u.Phone == nil && u.Email == nil && u.ManagerID == nil && u.IsActive == nil && u.Image == nil
}

type StoreResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Floor       string  `json:"floor"`
	Unit        string  `json:"unit"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`
	ManagerName *string `json:"manager_name,omitempty"`
	Image       *string `json:"image,omitempty"`
	IsActive    bool    `json:"is_active"`
	gDto.Metadata
}

func (r *StoreResponse) FromModel(model model.Store) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Category = model.Category
	r.Floor = model.Floor
	r.Unit = model.Unit
	r.Phone = model.Phone
	r.Email = model.Email
	r.ManagerID = model.ManagerID
	r.ManagerName = model.ManagerName
	r.Image = model.Image
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetStoresResponse struct {
	Stores    []StoreResponse `json:"stores"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStoresResponse) FromModels(models []model.Store, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Stores = make([]StoreResponse, len(models))
	for i, m := range models {
		r.Stores[i].FromModel(m)
	}
}
