package dto

import (
	"atithi/internal/domains/user/model"
	"atithi/shared"
	gDto "atithi/shared/dto"
)

type CreateUserRequest struct {
	Name           string `json:"name"            validate:"required"`
	Email          string `json:"email"           validate:"required,email"`
	WhatsappNumber string `json:"whatsapp_number" validate:"omitempty"`
}

func (req *CreateUserRequest) ToModel(id int64) model.User {
	return model.User{
		ID:             id,
		Name:           req.Name,
		Email:          req.Email,
		WhatsappNumber: model.NormalizeWhatsappNumber(req.WhatsappNumber),
	}
}

type UpdateUserRequest struct {
	Name           *string `json:"name"            db:"name"            validate:"omitempty"`
	Email          *string `json:"email"           db:"email"           validate:"omitempty,email"`
	WhatsappNumber *string `json:"whatsapp_number" db:"whatsapp_number" validate:"omitempty"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	WhatsappNumber string `json:"whatsapp_number"`
	gDto.Metadata
}

func (res *UserResponse) FromModel(user model.User) {
	res.ID = shared.FormatID(user.ID)
	res.Name = user.Name
	res.Email = user.Email
	res.WhatsappNumber = user.WhatsappNumber
	res.Metadata.FromModel(user.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	Total     int            `json:"total"`
	TotalPage int            `json:"total_page"`
}

func (res *GetUsersResponse) FromModels(users []model.User, total, limit int) {
	res.Users = make([]UserResponse, 0, len(users))

	for _, user := range users {
		userRes := UserResponse{}
		userRes.FromModel(user)
		res.Users = append(res.Users, userRes)
	}

	res.Total = total
	res.TotalPage = shared.CalculateTotalPage(total, limit)
}
