package property

import (
	"errors"
	"fmt"

	propertyRepo "roomyy/database/repository/property"
	"roomyy/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is surfaced to handlers as a 404.
var ErrNotFound = fmt.Errorf("Property not found")

// CreateProperty validates required listing fields and persists the listing.
func (s *DefaultPropertyService) CreateProperty(property *models.Property) (*models.Property, error) {
	if property.Title == "" || property.Type == "" || property.Location == "" || property.OwnerID == "" {
		return nil, fmt.Errorf("title, type, location and owner are required")
	}

	property.ID = uuid.New().String()
	property.Rating = 0
	property.IsAvailable = true
	if property.Status == "" {
		property.Status = models.PropertyAvailable
	}
	if property.Amenities == nil {
		property.Amenities = []string{}
	}

	if err := s.Repo.Create(property); err != nil {
		return nil, err
	}
	return property, nil
}

// GetPropertyByID returns a listing with its owner expanded to display fields.
func (s *DefaultPropertyService) GetPropertyByID(id string) (*models.Property, error) {
	property, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.expandOwner(property)
	return property, nil
}

// ListProperties returns all listings with owners expanded.
func (s *DefaultPropertyService) ListProperties() ([]models.Property, error) {
	properties, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range properties {
		s.expandOwner(&properties[i])
	}
	return properties, nil
}

// ListOwnerProperties returns an owner's listings with owners expanded.
func (s *DefaultPropertyService) ListOwnerProperties(ownerID string) ([]models.Property, error) {
	properties, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	for i := range properties {
		s.expandOwner(&properties[i])
	}
	return properties, nil
}

func (s *DefaultPropertyService) expandOwner(property *models.Property) {
	if s.UserRepo == nil {
		return
	}
	proj := bson.M{"id": 1, "name": 1, "email": 1}
	if owner, err := s.UserRepo.GetByIDWithProjection(property.OwnerID, proj); err == nil {
		property.Owner = owner.Contact()
	}
}
