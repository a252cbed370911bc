package models

import "time"

// Booking statuses. Any authorized caller may set any of the four values at
// any time; there is no enforced transition order.
const (
	BookingPending   = "pending"
	BookingContacted = "contacted"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is one of the four enumerated statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingContacted, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// Booking represents one renter's request against one property. OwnerID is a
// snapshot of the property's owner taken at creation time and is never
// re-derived afterwards, even if the property changes hands.
type Booking struct {
	ID                   string `bson:"id" json:"id"`
	RenterName           string `bson:"renterName" json:"renterName"`
	RenterEmail          string `bson:"renterEmail" json:"renterEmail"`
	RenterPhone          string `bson:"renterPhone" json:"renterPhone"`
	RenterDocumentType   string `bson:"renterDocumentType" json:"renterDocumentType"`
	RenterDocumentNumber string `bson:"renterDocumentNumber" json:"renterDocumentNumber"`
	RenterDocumentImage  string `bson:"renterDocumentImage,omitempty" json:"renterDocumentImage,omitempty"`
	PaymentProofImage    string `bson:"paymentProofImage,omitempty" json:"paymentProofImage,omitempty"`

	PropertyID string `bson:"propertyId" json:"propertyId"`
	OwnerID    string `bson:"ownerId" json:"ownerId"`
	// CreatedBy is the renter principal on the authenticated creation path.
	// The auth-free legacy path leaves it empty.
	CreatedBy string `bson:"createdBy,omitempty" json:"createdBy,omitempty"`

	BookingDate       time.Time `bson:"bookingDate" json:"bookingDate"`
	AdditionalDetails string    `bson:"additionalDetails,omitempty" json:"additionalDetails,omitempty"`
	Status            string    `bson:"status" json:"status"`

	NotificationSent bool       `bson:"notificationSent" json:"notificationSent"`
	OwnerContacted   bool       `bson:"ownerContacted" json:"ownerContacted"`
	OwnerNotifiedAt  *time.Time `bson:"ownerNotifiedAt,omitempty" json:"ownerNotifiedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`

	// Populated at read time, never stored.
	Property *PropertySummary `bson:"-" json:"property,omitempty"`
	Owner    *UserContact     `bson:"-" json:"ownerDetails,omitempty"`
}
