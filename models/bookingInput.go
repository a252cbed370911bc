package models

// BookingInput carries the renter-submitted fields for booking creation.
// Image paths are filled in by the handler after the upload step.
type BookingInput struct {
	RenterName           string `form:"renterName" json:"renterName"`
	RenterEmail          string `form:"renterEmail" json:"renterEmail"`
	RenterPhone          string `form:"renterPhone" json:"renterPhone"`
	RenterDocumentType   string `form:"renterDocumentType" json:"renterDocumentType"`
	RenterDocumentNumber string `form:"renterDocumentNumber" json:"renterDocumentNumber"`
	PropertyID           string `form:"propertyId" json:"propertyId"`
	AdditionalDetails    string `form:"additionalDetails" json:"additionalDetails"`

	RenterDocumentImage string `form:"-" json:"-"`
	PaymentProofImage   string `form:"-" json:"-"`
}

// BookingProjection is the curated creation response returned by the
// authenticated entry point. It deliberately omits the stored owner reference.
type BookingProjection struct {
	ID                   string           `json:"id"`
	RenterName           string           `json:"renterName"`
	RenterEmail          string           `json:"renterEmail"`
	RenterPhone          string           `json:"renterPhone"`
	RenterDocumentType   string           `json:"renterDocumentType"`
	RenterDocumentNumber string           `json:"renterDocumentNumber"`
	Property             *PropertySummary `json:"property"`
	AdditionalDetails    string           `json:"additionalDetails"`
	Status               string           `json:"status"`
	CreatedAt            string           `json:"createdAt"`
}
