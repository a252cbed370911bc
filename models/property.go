package models

import "time"

// Property listing statuses.
const (
	PropertyAvailable = "available"
	PropertyBooked    = "booked"
	PropertySold      = "sold"
	PropertyPending   = "pending"
)

// Property represents a rental listing.
type Property struct {
	ID          string   `bson:"id" json:"id"`
	OwnerID     string   `bson:"owner" json:"owner"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Type        string   `bson:"type" json:"type"` // Bungalow, Flat or Tenement
	Location    string   `bson:"location" json:"location"`
	Price       float64  `bson:"price" json:"price"`
	Bedrooms    int      `bson:"bedrooms" json:"bedrooms"`
	Bathrooms   int      `bson:"bathrooms" json:"bathrooms"`
	Area        int      `bson:"area" json:"area"`
	Images      []string `bson:"images,omitempty" json:"images"`
	Rating      float64  `bson:"rating" json:"rating"`
	Amenities   []string `bson:"amenities,omitempty" json:"amenities"`

	SecurityDeposit    float64 `bson:"securityDeposit,omitempty" json:"securityDeposit,omitempty"`
	MaintenanceCharges float64 `bson:"maintenanceCharges,omitempty" json:"maintenanceCharges,omitempty"`
	Furnished          string  `bson:"furnished,omitempty" json:"furnished,omitempty"`
	Parking            string  `bson:"parking,omitempty" json:"parking,omitempty"`

	IsAvailable  bool   `bson:"isAvailable" json:"isAvailable"`
	Status       string `bson:"status" json:"status"`
	BookingCount int    `bson:"bookingCount" json:"bookingCount"`

	// Listing-fee screenshot and owner contact snapshot supplied by the frontend form.
	QRCode            string `bson:"qrCode,omitempty" json:"qrCode,omitempty"`
	PaymentScreenshot string `bson:"paymentScreenshot,omitempty" json:"paymentScreenshot,omitempty"`
	OwnerName         string `bson:"ownerName,omitempty" json:"ownerName,omitempty"`
	OwnerPhone        string `bson:"ownerPhone,omitempty" json:"ownerPhone,omitempty"`
	OwnerEmail        string `bson:"ownerEmail,omitempty" json:"ownerEmail,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`

	// Populated at read time, never stored.
	Owner *UserContact `bson:"-" json:"ownerDetails,omitempty"`
}

// PropertySummary is the slim projection embedded in booking responses.
type PropertySummary struct {
	ID       string  `bson:"id" json:"id"`
	Title    string  `bson:"title" json:"title"`
	Location string  `bson:"location" json:"location"`
	Price    float64 `bson:"price" json:"price"`
}

// Summary returns the projection embedded in booking responses.
func (p *Property) Summary() *PropertySummary {
	return &PropertySummary{ID: p.ID, Title: p.Title, Location: p.Location, Price: p.Price}
}
