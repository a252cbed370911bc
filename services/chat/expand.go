package chat

import (
	"roomyy/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Reference expansion is an explicit fetch-and-merge against the user store:
// participant ids become display contacts (name/email/phone) and, when asked,
// the booking document is joined in. A reference that no longer resolves is
// left unpopulated rather than failing the read.

func (s *DefaultChatService) expand(chat *models.Chat, withBooking bool) (*models.Chat, error) {
	s.expandInPlace(chat, withBooking)
	return chat, nil
}

func (s *DefaultChatService) expandInPlace(chat *models.Chat, withBooking bool) {
	chat.Renter = s.contact(chat.RenterID)
	chat.Owner = s.contact(chat.OwnerID)
	for i := range chat.Messages {
		chat.Messages[i].Sender = s.contact(chat.Messages[i].SenderID)
	}
	if withBooking {
		if booking, err := s.BookingRepo.GetByID(chat.BookingID); err == nil {
			chat.Booking = booking
		}
	}
}

func (s *DefaultChatService) contact(userID string) *models.UserContact {
	if userID == "" {
		return nil
	}
	proj := bson.M{"id": 1, "name": 1, "email": 1, "phone": 1}
	user, err := s.UserRepo.GetByIDWithProjection(userID, proj)
	if err != nil || user == nil {
		return nil
	}
	return user.Contact()
}
