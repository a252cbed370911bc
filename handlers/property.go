package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"roomyy/models"
	"roomyy/services/booking"
	"roomyy/services/property"
	"roomyy/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PropertyHandler serves the listing catalog plus the legacy open booking
// endpoints that predate the authenticated booking API.
type PropertyHandler struct {
	Service  property.PropertyService
	Bookings booking.BookingService
	Storage  storage.StorageService
}

func NewPropertyHandler(svc property.PropertyService, bookings booking.BookingService, store storage.StorageService) *PropertyHandler {
	return &PropertyHandler{Service: svc, Bookings: bookings, Storage: store}
}

// List returns all listings.
func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.Service.ListProperties()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// OwnerProperties returns all listings for an owner.
func (h *PropertyHandler) OwnerProperties(c *gin.Context) {
	properties, err := h.Service.ListOwnerProperties(c.Param("ownerId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// GetByID returns a single listing.
func (h *PropertyHandler) GetByID(c *gin.Context) {
	found, err := h.Service.GetPropertyByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, found)
}

// Create adds a listing with image and payment-screenshot uploads. The owner
// is always the authenticated user.
func (h *PropertyHandler) Create(c *gin.Context) {
	logger := getLogger(c)
	actor := principalFrom(c)

	listing := models.Property{
		OwnerID:            actor.ID,
		Title:              c.PostForm("title"),
		Description:        c.PostForm("description"),
		Type:               c.PostForm("type"),
		Location:           c.PostForm("location"),
		Price:              parseFloat(c.PostForm("price")),
		Bedrooms:           parseInt(c.PostForm("bedrooms")),
		Bathrooms:          parseInt(c.PostForm("bathrooms")),
		Area:               parseInt(c.PostForm("area")),
		SecurityDeposit:    parseFloat(c.PostForm("securityDeposit")),
		MaintenanceCharges: parseFloat(c.PostForm("maintenanceCharges")),
		Furnished:          c.PostForm("furnished"),
		Parking:            c.PostForm("parking"),
		QRCode:             c.PostForm("qrCode"),
		OwnerName:          c.PostForm("ownerName"),
		OwnerPhone:         c.PostForm("ownerPhone"),
		OwnerEmail:         c.PostForm("ownerEmail"),
	}

	// Amenities arrive either as a JSON-encoded string or repeated form values.
	if raw := c.PostForm("amenities"); raw != "" {
		var amenities []string
		if err := json.Unmarshal([]byte(raw), &amenities); err == nil {
			listing.Amenities = amenities
		} else {
			listing.Amenities = c.PostFormArray("amenities")
		}
	}

	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, file := range form.File["images"] {
			path, saveErr := h.Storage.SaveUpload(c.Request.Context(), file, "images", "properties", storage.MaxImageBytes)
			if saveErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": saveErr.Error()})
				return
			}
			listing.Images = append(listing.Images, path)
		}
		if files := form.File["paymentScreenshot"]; len(files) > 0 {
			path, saveErr := h.Storage.SaveUpload(c.Request.Context(), files[0], "paymentScreenshot", "properties", storage.MaxImageBytes)
			if saveErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": saveErr.Error()})
				return
			}
			listing.PaymentScreenshot = path
		}
	}

	created, err := h.Service.CreateProperty(&listing)
	if err != nil {
		logger.Error("Property creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// LegacyCreateBooking is the open booking entry point kept for older frontend
// builds. It accepts an unauthenticated submission and returns the raw stored
// booking rather than the curated projection.
func (h *PropertyHandler) LegacyCreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.PropertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "propertyId is required."})
		return
	}
	input.PropertyID = strings.TrimSpace(input.PropertyID)

	if file, err := c.FormFile("renterDocumentImage"); err == nil {
		path, saveErr := h.Storage.SaveUpload(c.Request.Context(), file, "renterDocumentImage", "bookings", storage.MaxDocumentBytes)
		if saveErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": saveErr.Error()})
			return
		}
		input.RenterDocumentImage = path
	}

	// No authenticated actor on this path; the booking records only the
	// renter's submitted contact details.
	created, err := h.Bookings.CreateBooking(&input, models.Principal{})
	if err != nil {
		var svcErr *booking.Error
		if errors.As(err, &svcErr) {
			switch svcErr.Code {
			case booking.CodePropertyMissing:
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid propertyId: Property not found."})
			case booking.CodeValidation:
				c.JSON(http.StatusBadRequest, gin.H{"message": svcErr.Message})
			default:
				c.JSON(svcErr.Status, gin.H{"message": svcErr.Message})
			}
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// LegacyOwnerBookings returns an owner's bookings by path parameter.
func (h *PropertyHandler) LegacyOwnerBookings(c *gin.Context) {
	bookings, err := h.Bookings.ListOwnerBookings(c.Param("ownerId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// LegacyGetBooking returns a booking with renter details. Access is restricted
// to the booking's owner or an admin, matching the primary booking API.
func (h *PropertyHandler) LegacyGetBooking(c *gin.Context) {
	actor := principalFrom(c)

	found, err := h.Bookings.GetBookingByID(c.Param("bookingId"), actor)
	if err != nil {
		var svcErr *booking.Error
		if errors.As(err, &svcErr) {
			c.JSON(svcErr.Status, gin.H{"message": svcErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, found)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
