package property

import (
	propertyRepo "roomyy/database/repository/property"
	userRepo "roomyy/database/repository/user"
	"roomyy/models"
)

// PropertyService covers the listing catalog.
type PropertyService interface {
	CreateProperty(property *models.Property) (*models.Property, error)
	GetPropertyByID(id string) (*models.Property, error)
	ListProperties() ([]models.Property, error)
	ListOwnerProperties(ownerID string) ([]models.Property, error)
}

// DefaultPropertyService is the production implementation of PropertyService.
type DefaultPropertyService struct {
	Repo     propertyRepo.PropertyRepository
	UserRepo userRepo.UserRepository
}
