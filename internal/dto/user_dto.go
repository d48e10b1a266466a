package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/models"
	"github.com/google/uuid"
)

type createUserBody struct {
	Name  *string `json:"name" validate:"required,max=255"`
	Email *string `json:"email" validate:"required,max=255"`
}

// CreateUserRequest is the validated body of POST /users.
type CreateUserRequest struct {
	Name  string
	Email string
}

func ParseCreateUser(body []byte) (CreateUserRequest, error) {
	var raw createUserBody
	if err := decode(body, &raw); err != nil {
		return CreateUserRequest{}, err
	}
	return CreateUserRequest{Name: *raw.Name, Email: *raw.Email}, nil
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type UserEnvelope struct {
	User UserResponse `json:"user"`
}

type UsersEnvelope struct {
	Users []UserResponse `json:"users"`
}

func NewUsersEnvelope(users []models.User) UsersEnvelope {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = NewUserResponse(u)
	}
	return UsersEnvelope{Users: out}
}
