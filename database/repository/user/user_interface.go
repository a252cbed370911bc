package userRepo

import (
	"roomyy/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	// GetByIDWithProjection retrieves a user by id. Pass nil for the full
	// document. Returns (nil, ErrNotFound) when absent.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// GetByEmailWithProjection retrieves a user by email. Returns (nil, nil)
	// when absent, so duplicate checks stay a single branch.
	GetByEmailWithProjection(email string, projection bson.M) (*models.User, error)
	GetAllWithProjection(projection bson.M) ([]models.User, error)
}
