package handlers

import (
	"errors"
	"net/http"

	"roomyy/models"
	"roomyy/services/chat"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the negotiation thread endpoints.
type ChatHandler struct {
	Service chat.ChatService
}

func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{Service: svc}
}

// CreateOrGet returns the thread for a booking, creating it on first use.
func (h *ChatHandler) CreateOrGet(c *gin.Context) {
	var req struct {
		BookingID string `json:"bookingId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	thread, err := h.Service.GetOrCreateChat(req.BookingID)
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

// SendMessage appends a message to a thread and returns the updated thread.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req struct {
		SenderID    string `json:"senderId"`
		Message     string `json:"message"`
		MessageType string `json:"messageType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	thread, err := h.Service.SendMessage(c.Param("chatId"), req.SenderID, req.Message, req.MessageType)
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

// UpdatePurchaseDetails merges a partial terms payload onto the thread's
// negotiated-terms record. Fields absent from the payload are preserved.
func (h *ChatHandler) UpdatePurchaseDetails(c *gin.Context) {
	var req struct {
		PurchaseDetails models.PurchaseDetailsUpdate `json:"purchaseDetails"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	thread, err := h.Service.UpdatePurchaseDetails(c.Param("chatId"), req.PurchaseDetails)
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

// UserChats returns all threads a user participates in, most recent first.
func (h *ChatHandler) UserChats(c *gin.Context) {
	threads, err := h.Service.ListUserChats(c.Param("userId"))
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, threads)
}

// GetChat returns a single thread with its participants and booking expanded.
func (h *ChatHandler) GetChat(c *gin.Context) {
	thread, err := h.Service.GetChatByID(c.Param("chatId"))
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

// writeChatError maps service failures onto the plain message envelope the
// chat endpoints use.
func writeChatError(c *gin.Context, err error) {
	var svcErr *chat.Error
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.Status, gin.H{"message": svcErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
