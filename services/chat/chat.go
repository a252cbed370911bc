package chat

import (
	"errors"
	"time"

	bookingRepo "roomyy/database/repository/booking"
	chatRepo "roomyy/database/repository/chat"
	"roomyy/models"

	"github.com/google/uuid"
)

// GetOrCreateChat finds the thread for a booking, creating it on first
// contact. Participant ids are copied from the booking at creation time. The
// find-then-create is not atomic; when two first calls race, the unique index
// on bookingId rejects the loser and we fetch the winner's thread instead.
func (s *DefaultChatService) GetOrCreateChat(bookingID string) (*models.Chat, error) {
	existing, err := s.Repo.GetByBookingID(bookingID)
	if err == nil {
		return s.expand(existing, false)
	}
	if !errors.Is(err, chatRepo.ErrNotFound) {
		return nil, newInternalError("Failed to fetch chat")
	}

	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, newBookingNotFoundError()
		}
		return nil, newInternalError("Failed to fetch booking")
	}

	renterID := booking.CreatedBy
	if renterID == "" {
		// Legacy bookings created without authentication carry no renter
		// principal; fall back to the renter's email as the participant key.
		renterID = booking.RenterEmail
	}

	chat := &models.Chat{
		ID:        uuid.New().String(),
		BookingID: booking.ID,
		RenterID:  renterID,
		OwnerID:   booking.OwnerID,
		IsActive:  true,
	}

	if err := s.Repo.Create(chat); err != nil {
		if errors.Is(err, chatRepo.ErrDuplicateBooking) {
			winner, ferr := s.Repo.GetByBookingID(bookingID)
			if ferr != nil {
				return nil, newInternalError("Failed to fetch chat")
			}
			return s.expand(winner, false)
		}
		return nil, newInternalError("Failed to create chat")
	}
	return s.expand(chat, false)
}

// SendMessage appends a message with a server-assigned timestamp. The sender
// is not required to be one of the thread's two participants.
func (s *DefaultChatService) SendMessage(chatID, senderID, message, messageType string) (*models.Chat, error) {
	if _, err := s.load(chatID); err != nil {
		return nil, err
	}

	if !models.ValidMessageType(messageType) {
		messageType = models.MessageTypeText
	}
	msg := models.ChatMessage{
		SenderID:    senderID,
		Message:     message,
		Timestamp:   time.Now(),
		MessageType: messageType,
	}

	if err := s.Repo.AppendMessage(chatID, msg); err != nil {
		if errors.Is(err, chatRepo.ErrNotFound) {
			return nil, newChatNotFoundError()
		}
		return nil, newInternalError("Failed to send message")
	}
	return s.reload(chatID)
}

// UpdatePurchaseDetails shallow-merges the partial terms payload onto the
// stored record: fields present overwrite, fields absent are preserved.
func (s *DefaultChatService) UpdatePurchaseDetails(chatID string, update models.PurchaseDetailsUpdate) (*models.Chat, error) {
	if _, err := s.load(chatID); err != nil {
		return nil, err
	}

	fields := update.Fields()
	if len(fields) > 0 {
		if err := s.Repo.UpdatePurchaseDetails(chatID, fields); err != nil {
			if errors.Is(err, chatRepo.ErrNotFound) {
				return nil, newChatNotFoundError()
			}
			return nil, newInternalError("Failed to update purchase details")
		}
	}
	return s.reload(chatID)
}

// ListUserChats returns every thread where the user is either participant,
// most recently updated first, with booking and participants expanded.
func (s *DefaultChatService) ListUserChats(userID string) ([]models.Chat, error) {
	chats, err := s.Repo.GetByParticipant(userID)
	if err != nil {
		return nil, newInternalError("Failed to fetch chats")
	}
	for i := range chats {
		s.expandInPlace(&chats[i], true)
	}
	return chats, nil
}

// GetChatByID returns a single thread with booking and participants expanded.
func (s *DefaultChatService) GetChatByID(chatID string) (*models.Chat, error) {
	chat, err := s.load(chatID)
	if err != nil {
		return nil, err
	}
	return s.expand(chat, true)
}

func (s *DefaultChatService) load(chatID string) (*models.Chat, error) {
	chat, err := s.Repo.GetByID(chatID)
	if err != nil {
		if errors.Is(err, chatRepo.ErrNotFound) {
			return nil, newChatNotFoundError()
		}
		return nil, newInternalError("Failed to fetch chat")
	}
	return chat, nil
}

func (s *DefaultChatService) reload(chatID string) (*models.Chat, error) {
	chat, err := s.load(chatID)
	if err != nil {
		return nil, err
	}
	return s.expand(chat, false)
}
