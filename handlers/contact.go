package handlers

import (
	"net/http"

	contactRepo "roomyy/database/repository/contact"
	"roomyy/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContactHandler stores contact-form submissions.
type ContactHandler struct {
	Repo contactRepo.ContactRepository
}

func NewContactHandler(repo contactRepo.ContactRepository) *ContactHandler {
	return &ContactHandler{Repo: repo}
}

// Submit validates and persists a contact-form submission.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.Contact
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required."})
		return
	}
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required."})
		return
	}

	req.ID = uuid.New().String()
	if err := h.Repo.Create(&req); err != nil {
		getLogger(c).Error("Failed to save contact form", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit contact form."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Contact form submitted successfully."})
}
