package chatRepo

import "roomyy/models"

// ChatRepository defines persistence for negotiation threads.
type ChatRepository interface {
	// Create inserts a new thread. ErrDuplicateBooking is returned when a
	// thread already exists for the same booking.
	Create(chat *models.Chat) error
	GetByID(id string) (*models.Chat, error)
	// GetByBookingID returns (nil, ErrNotFound) when no thread exists yet.
	GetByBookingID(bookingID string) (*models.Chat, error)
	// GetByParticipant returns threads where the user is renter or owner,
	// most recently updated first.
	GetByParticipant(userID string) ([]models.Chat, error)
	AppendMessage(chatID string, msg models.ChatMessage) error
	// UpdatePurchaseDetails sets individual terms fields, keyed by their
	// stored names, leaving all other fields untouched.
	UpdatePurchaseDetails(chatID string, fields map[string]any) error
}
