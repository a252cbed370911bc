package booking

import (
	bookingRepo "roomyy/database/repository/booking"
	propertyRepo "roomyy/database/repository/property"
	userRepo "roomyy/database/repository/user"
	"roomyy/models"
)

// BookingService is the booking engine: creation and status transitions of
// booking requests between a renter and a property owner.
type BookingService interface {
	CreateBooking(input *models.BookingInput, actor models.Principal) (*models.Booking, error)
	GetBookingByID(id string, actor models.Principal) (*models.Booking, error)
	ListOwnerBookings(ownerID string) ([]models.Booking, error)
	ListPropertyBookings(propertyID string, actor models.Principal) ([]models.Booking, error)
	UpdateBookingStatus(id, status string, actor models.Principal) (*models.Booking, error)
}

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	PropertyRepo propertyRepo.PropertyRepository
	UserRepo     userRepo.UserRepository
}
