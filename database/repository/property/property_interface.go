package propertyRepo

import "roomyy/models"

// PropertyRepository defines persistence for property listings.
type PropertyRepository interface {
	Create(property *models.Property) error
	GetByID(id string) (*models.Property, error)
	GetAll() ([]models.Property, error)
	GetByOwner(ownerID string) ([]models.Property, error)
}
