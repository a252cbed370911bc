package models

import "time"

// Chat message type tags.
const (
	MessageTypeText            = "text"
	MessageTypePurchaseDetails = "purchase_details"
	MessageTypeConfirmation    = "confirmation"
)

// ValidMessageType reports whether t is one of the enumerated message tags.
func ValidMessageType(t string) bool {
	switch t {
	case MessageTypeText, MessageTypePurchaseDetails, MessageTypeConfirmation:
		return true
	}
	return false
}

// ChatMessage is a single entry in a thread. Messages are append-only and
// insertion order is the sole ordering guarantee.
type ChatMessage struct {
	SenderID    string    `bson:"sender" json:"senderId"`
	Message     string    `bson:"message" json:"message"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
	MessageType string    `bson:"messageType" json:"messageType"`

	// Populated at read time, never stored.
	Sender *UserContact `bson:"-" json:"sender,omitempty"`
}

// PurchaseDetails is the negotiated-terms record attached to a thread. It is a
// single mutable record (not versioned); updates shallow-merge onto it.
type PurchaseDetails struct {
	FinalPrice        float64    `bson:"finalPrice,omitempty" json:"finalPrice,omitempty"`
	MoveInDate        *time.Time `bson:"moveInDate,omitempty" json:"moveInDate,omitempty"`
	SecurityDeposit   float64    `bson:"securityDeposit,omitempty" json:"securityDeposit,omitempty"`
	AgreementDuration string     `bson:"agreementDuration,omitempty" json:"agreementDuration,omitempty"`
	SpecialTerms      string     `bson:"specialTerms,omitempty" json:"specialTerms,omitempty"`
	IsConfirmed       bool       `bson:"isConfirmed" json:"isConfirmed"`
}

// PurchaseDetailsUpdate is a partial terms payload. Nil fields are absent from
// the update and the stored values for them are preserved.
type PurchaseDetailsUpdate struct {
	FinalPrice        *float64   `json:"finalPrice"`
	MoveInDate        *time.Time `json:"moveInDate"`
	SecurityDeposit   *float64   `json:"securityDeposit"`
	AgreementDuration *string    `json:"agreementDuration"`
	SpecialTerms      *string    `json:"specialTerms"`
	IsConfirmed       *bool      `json:"isConfirmed"`
}

// Fields returns the set fields keyed by their stored names.
func (u PurchaseDetailsUpdate) Fields() map[string]any {
	fields := map[string]any{}
	if u.FinalPrice != nil {
		fields["finalPrice"] = *u.FinalPrice
	}
	if u.MoveInDate != nil {
		fields["moveInDate"] = *u.MoveInDate
	}
	if u.SecurityDeposit != nil {
		fields["securityDeposit"] = *u.SecurityDeposit
	}
	if u.AgreementDuration != nil {
		fields["agreementDuration"] = *u.AgreementDuration
	}
	if u.SpecialTerms != nil {
		fields["specialTerms"] = *u.SpecialTerms
	}
	if u.IsConfirmed != nil {
		fields["isConfirmed"] = *u.IsConfirmed
	}
	return fields
}

// Chat is the per-booking negotiation thread. RenterID and OwnerID are copied
// from the booking at creation time and not re-synced afterwards.
type Chat struct {
	ID        string `bson:"id" json:"id"`
	BookingID string `bson:"bookingId" json:"bookingId"`
	RenterID  string `bson:"renterId" json:"renterId"`
	OwnerID   string `bson:"ownerId" json:"ownerId"`

	Messages        []ChatMessage   `bson:"messages" json:"messages"`
	PurchaseDetails PurchaseDetails `bson:"purchaseDetails" json:"purchaseDetails"`
	IsActive        bool            `bson:"isActive" json:"isActive"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`

	// Populated at read time, never stored.
	Renter  *UserContact `bson:"-" json:"renter,omitempty"`
	Owner   *UserContact `bson:"-" json:"owner,omitempty"`
	Booking *Booking     `bson:"-" json:"booking,omitempty"`
}
