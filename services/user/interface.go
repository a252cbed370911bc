package user

import (
	userRepo "roomyy/database/repository/user"
	"roomyy/models"
)

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// UserService covers account registration, authentication and lookups.
type UserService interface {
	Register(name, email, password, userType string) (*models.User, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	ListUsers() ([]models.User, error)
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
