package handlers

import (
	"errors"
	"net/http"
	"time"

	"roomyy/models"
	"roomyy/services/booking"
	"roomyy/services/storage"
	"roomyy/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the authenticated booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Storage storage.StorageService
}

func NewBookingHandler(svc booking.BookingService, store storage.StorageService) *BookingHandler {
	return &BookingHandler{Service: svc, Storage: store}
}

// Create submits a booking request with optional document and payment-proof
// uploads. Responds with a curated projection of the stored booking.
func (h *BookingHandler) Create(c *gin.Context) {
	actor := principalFrom(c)

	var input models.BookingInput
	if err := c.ShouldBind(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "All required fields must be provided", booking.CodeValidation)
		return
	}

	docPath, ok := h.saveUpload(c, "renterDocumentImage", "bookings")
	if !ok {
		return
	}
	input.RenterDocumentImage = docPath

	proofPath, ok := h.saveUpload(c, "paymentProofImage", "bookings")
	if !ok {
		return
	}
	input.PaymentProofImage = proofPath

	created, err := h.Service.CreateBooking(&input, actor)
	if err != nil {
		writeBookingError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking submitted successfully",
		"booking": bookingProjection(created),
	})
}

// OwnerBookings returns the authenticated owner's bookings, newest first.
func (h *BookingHandler) OwnerBookings(c *gin.Context) {
	actor := principalFrom(c)

	bookings, err := h.Service.ListOwnerBookings(actor.ID)
	if err != nil {
		writeBookingError(c, err, "Failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetByID returns a single booking. Restricted to its owner or an admin.
func (h *BookingHandler) GetByID(c *gin.Context) {
	actor := principalFrom(c)

	found, err := h.Service.GetBookingByID(c.Param("id"), actor)
	if err != nil {
		writeBookingError(c, err, "Failed to fetch booking")
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateStatus moves a booking to a new status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	actor := principalFrom(c)

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status", booking.CodeInvalidStatus)
		return
	}

	updated, err := h.Service.UpdateBookingStatus(c.Param("id"), req.Status, actor)
	if err != nil {
		writeBookingError(c, err, "Failed to update booking status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated successfully",
		"booking": updated,
	})
}

// PropertyBookings returns all bookings for a property, newest first.
func (h *BookingHandler) PropertyBookings(c *gin.Context) {
	actor := principalFrom(c)

	bookings, err := h.Service.ListPropertyBookings(c.Param("propertyId"), actor)
	if err != nil {
		writeBookingError(c, err, "Failed to fetch property bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// saveUpload stores an optional single-file upload and returns its reference
// path. A missing file is not an error; a rejected one ends the request.
func (h *BookingHandler) saveUpload(c *gin.Context, field, folder string) (string, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", true
	}

	path, err := h.Storage.SaveUpload(c.Request.Context(), file, field, folder, storage.MaxDocumentBytes)
	if err != nil {
		if errors.Is(err, storage.ErrNotImage) || errors.Is(err, storage.ErrTooLarge) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), booking.CodeValidation)
		} else {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", booking.CodeInternal)
		}
		return "", false
	}
	return path, true
}

// writeBookingError maps service failures onto the booking error envelope.
func writeBookingError(c *gin.Context, err error, fallback string) {
	var svcErr *booking.Error
	if errors.As(err, &svcErr) {
		utils.JSONError(c, svcErr.Status, svcErr.Message, svcErr.Code)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, fallback, booking.CodeInternal)
}

func bookingProjection(b *models.Booking) models.BookingProjection {
	return models.BookingProjection{
		ID:                   b.ID,
		RenterName:           b.RenterName,
		RenterEmail:          b.RenterEmail,
		RenterPhone:          b.RenterPhone,
		RenterDocumentType:   b.RenterDocumentType,
		RenterDocumentNumber: b.RenterDocumentNumber,
		Property:             b.Property,
		AdditionalDetails:    b.AdditionalDetails,
		Status:               b.Status,
		CreatedAt:            b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
