package booking

import (
	"errors"
	"time"

	bookingRepo "roomyy/database/repository/booking"
	propertyRepo "roomyy/database/repository/property"
	"roomyy/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateBooking validates the renter input, resolves the property and creates
// a pending booking. The property's owner id is snapshotted onto the booking
// and never re-derived afterwards.
func (s *DefaultBookingService) CreateBooking(input *models.BookingInput, actor models.Principal) (*models.Booking, error) {
	logOperation("booking_creation_attempt", "", actor.ID, map[string]any{
		"propertyId":  input.PropertyID,
		"renterEmail": input.RenterEmail,
	})

	missing := missingFields(input)
	if len(missing) > 0 {
		err := newValidationError("All required fields must be provided")
		logFailure("booking_validation_failed", "", actor.ID, err, map[string]any{
			"missingFields": missing,
		})
		return nil, err
	}

	property, err := s.PropertyRepo.GetByID(input.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrNotFound) {
			nfErr := newPropertyNotFoundError()
			logFailure("booking_property_not_found", "", actor.ID, nfErr, map[string]any{
				"propertyId": input.PropertyID,
			})
			return nil, nfErr
		}
		logFailure("booking_creation_failed", "", actor.ID, err, map[string]any{
			"propertyId": input.PropertyID,
		})
		return nil, newInternalError("Failed to create booking")
	}

	booking := &models.Booking{
		ID:                   uuid.New().String(),
		RenterName:           input.RenterName,
		RenterEmail:          input.RenterEmail,
		RenterPhone:          input.RenterPhone,
		RenterDocumentType:   input.RenterDocumentType,
		RenterDocumentNumber: input.RenterDocumentNumber,
		RenterDocumentImage:  input.RenterDocumentImage,
		PaymentProofImage:    input.PaymentProofImage,
		PropertyID:           property.ID,
		OwnerID:              property.OwnerID,
		CreatedBy:            actor.ID,
		BookingDate:          time.Now(),
		AdditionalDetails:    input.AdditionalDetails,
		Status:               models.BookingPending,
	}

	if err := s.Repo.Create(booking); err != nil {
		logFailure("booking_creation_failed", "", actor.ID, err, map[string]any{
			"propertyId": input.PropertyID,
		})
		return nil, newInternalError("Failed to create booking")
	}

	booking.Property = property.Summary()

	logOperation("booking_created", booking.ID, actor.ID, map[string]any{
		"propertyId": booking.PropertyID,
		"ownerId":    booking.OwnerID,
		"status":     booking.Status,
	})
	return booking, nil
}

// GetBookingByID returns a booking enriched with its property summary and
// owner contact details. Only the booking's owner or an admin may read it.
func (s *DefaultBookingService) GetBookingByID(id string, actor models.Principal) (*models.Booking, error) {
	logOperation("booking_fetch_attempt", id, actor.ID, nil)

	booking, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			nfErr := newBookingNotFoundError()
			logFailure("booking_not_found", id, actor.ID, nfErr, nil)
			return nil, nfErr
		}
		logFailure("booking_fetch_failed", id, actor.ID, err, nil)
		return nil, newInternalError("Failed to fetch booking")
	}

	if booking.OwnerID != actor.ID && !actor.Admin {
		denied := newAccessDeniedError()
		logFailure("booking_access_denied", id, actor.ID, denied, map[string]any{
			"ownerId":     booking.OwnerID,
			"requesterId": actor.ID,
		})
		return nil, denied
	}

	s.expand(booking, true)

	logOperation("booking_fetched", id, actor.ID, nil)
	return booking, nil
}

// ListOwnerBookings returns all bookings addressed to an owner, newest first,
// each enriched with its property summary.
func (s *DefaultBookingService) ListOwnerBookings(ownerID string) ([]models.Booking, error) {
	logOperation("owner_bookings_fetch_attempt", "", ownerID, nil)

	bookings, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		logFailure("owner_bookings_fetch_failed", "", ownerID, err, nil)
		return nil, newInternalError("Failed to fetch bookings")
	}
	for i := range bookings {
		s.expand(&bookings[i], false)
	}

	logOperation("owner_bookings_fetched", "", ownerID, map[string]any{"count": len(bookings)})
	return bookings, nil
}

// ListPropertyBookings returns all bookings for a property, newest first.
// There is no ownership check on this read.
func (s *DefaultBookingService) ListPropertyBookings(propertyID string, actor models.Principal) ([]models.Booking, error) {
	logOperation("property_bookings_fetch_attempt", "", actor.ID, map[string]any{
		"propertyId": propertyID,
	})

	bookings, err := s.Repo.GetByProperty(propertyID)
	if err != nil {
		logFailure("property_bookings_fetch_failed", "", actor.ID, err, map[string]any{
			"propertyId": propertyID,
		})
		return nil, newInternalError("Failed to fetch property bookings")
	}
	for i := range bookings {
		s.expand(&bookings[i], false)
	}

	logOperation("property_bookings_fetched", "", actor.ID, map[string]any{
		"propertyId": propertyID,
		"count":      len(bookings),
	})
	return bookings, nil
}

// UpdateBookingStatus sets the booking status. Any of the four enumerated
// values is accepted from any current status. The first transition into
// "contacted" stamps ownerContacted/ownerNotifiedAt; later ones leave the
// stamp untouched.
func (s *DefaultBookingService) UpdateBookingStatus(id, status string, actor models.Principal) (*models.Booking, error) {
	logOperation("booking_status_update_attempt", id, actor.ID, map[string]any{
		"newStatus": status,
	})

	if !models.ValidBookingStatus(status) {
		invalid := newInvalidStatusError()
		logFailure("booking_status_update_invalid", id, actor.ID, invalid, nil)
		return nil, invalid
	}

	booking, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			nfErr := newBookingNotFoundError()
			logFailure("booking_not_found", id, actor.ID, nfErr, nil)
			return nil, nfErr
		}
		logFailure("booking_status_update_failed", id, actor.ID, err, nil)
		return nil, newInternalError("Failed to update booking status")
	}

	if booking.OwnerID != actor.ID && !actor.Admin {
		denied := newAccessDeniedError()
		logFailure("booking_access_denied", id, actor.ID, denied, map[string]any{
			"ownerId":     booking.OwnerID,
			"requesterId": actor.ID,
		})
		return nil, denied
	}

	fields := map[string]any{"status": status}
	booking.Status = status
	if status == models.BookingContacted && !booking.OwnerContacted {
		now := time.Now()
		booking.OwnerContacted = true
		booking.OwnerNotifiedAt = &now
		fields["ownerContacted"] = true
		fields["ownerNotifiedAt"] = now
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		logFailure("booking_status_update_failed", id, actor.ID, err, nil)
		return nil, newInternalError("Failed to update booking status")
	}
	booking.UpdatedAt = time.Now()

	logOperation("booking_status_updated", id, actor.ID, map[string]any{
		"newStatus": booking.Status,
	})
	return booking, nil
}

// missingFields reports which required renter fields are absent.
func missingFields(input *models.BookingInput) map[string]bool {
	missing := map[string]bool{}
	if input.RenterName == "" {
		missing["renterName"] = true
	}
	if input.RenterEmail == "" {
		missing["renterEmail"] = true
	}
	if input.RenterPhone == "" {
		missing["renterPhone"] = true
	}
	if input.RenterDocumentType == "" {
		missing["renterDocumentType"] = true
	}
	if input.RenterDocumentNumber == "" {
		missing["renterDocumentNumber"] = true
	}
	if input.PropertyID == "" {
		missing["propertyId"] = true
	}
	return missing
}

// expand joins the property summary (and optionally the owner contact) onto a
// booking. Missing references are left unpopulated rather than failing the read.
func (s *DefaultBookingService) expand(booking *models.Booking, withOwner bool) {
	if property, err := s.PropertyRepo.GetByID(booking.PropertyID); err == nil {
		booking.Property = property.Summary()
	}
	if withOwner && s.UserRepo != nil {
		proj := bson.M{"id": 1, "name": 1, "email": 1, "phone": 1}
		if owner, err := s.UserRepo.GetByIDWithProjection(booking.OwnerID, proj); err == nil {
			booking.Owner = owner.Contact()
		}
	}
}
