package dto

import (
	"mallbook/internal/domains/user/model"
	"mallbook/shared"
	"mallbook/shared/constant"
	gDto "mallbook/shared/dto"
	gModel "mallbook/shared/model"
	"mallbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string  `json:"email"           validate:"required,email"`
	Password string  `json:"password"        validate:"required,min=8"`
	Name     string  `json:"name"            validate:"required,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Role     string  `json:"role"            validate:"omitempty,oneof=customer store_manager admin"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleCustomer
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    model.NormalizeEmail(r.Email),
		Password: hashedPassword,
		Name:     r.Name,
		Phone:    r.Phone,
		Role:     role,
		Active:   true,
		Metadata: gModel.NewMetadata(username),
	}
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role"`
	LastLogin *string `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Name = model.Name
	r.Phone = model.Phone
	r.Role = model.Role
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)

	if model.LastLogin != nil {
		lastLogin := timezone.Format(*model.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}
}

// UpdateUserRequest is applied through shared.TransformFields, so every field needs a db tag.
type UpdateUserRequest struct {
	Name   string  `db:"name"   json:"name,omitempty"   validate:"omitempty,max=100"`
	Phone  *string `db:"phone"  json:"phone,omitempty"  validate:"omitempty,max=20"`
	Role   string  `db:"role"   json:"role,omitempty"   validate:"omitempty,oneof=customer store_manager admin"`
	Active *bool   `db:"active" json:"active,omitempty"`
}

type UpdateProfileRequest struct {
	Name  string  `db:"name"  json:"name,omitempty"  validate:"omitempty,max=100"`
	Phone *string `db:"phone" json:"phone,omitempty" validate:"omitempty,max=20"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
