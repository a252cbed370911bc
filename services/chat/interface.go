package chat

import (
	bookingRepo "roomyy/database/repository/booking"
	chatRepo "roomyy/database/repository/chat"
	userRepo "roomyy/database/repository/user"
	"roomyy/models"
)

// ChatService manages the per-booking negotiation thread: ordered messages
// plus the mutable negotiated-terms record.
type ChatService interface {
	GetOrCreateChat(bookingID string) (*models.Chat, error)
	SendMessage(chatID, senderID, message, messageType string) (*models.Chat, error)
	UpdatePurchaseDetails(chatID string, update models.PurchaseDetailsUpdate) (*models.Chat, error)
	ListUserChats(userID string) ([]models.Chat, error)
	GetChatByID(chatID string) (*models.Chat, error)
}

// DefaultChatService is the production implementation of ChatService.
type DefaultChatService struct {
	Repo        chatRepo.ChatRepository
	BookingRepo bookingRepo.BookingRepository
	UserRepo    userRepo.UserRepository
}
