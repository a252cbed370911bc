package bookingRepo

import "roomyy/models"

// BookingRepository defines persistence for booking requests.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByOwner(ownerID string) ([]models.Booking, error)
	GetByProperty(propertyID string) ([]models.Booking, error)
	UpdateFields(id string, fields map[string]any) error
}
