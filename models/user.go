package models

import "time"

// User types as presented by the frontend registration form.
const (
	UserTypeOwner  = "Property Owner"
	UserTypeSeeker = "Property Seeker"
)

// User represents a registered account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	UserType     string    `bson:"userType" json:"userType"`
	IsAdmin      bool      `bson:"isAdmin,omitempty" json:"isAdmin,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Principal is the authenticated actor on a request: a user id plus an
// admin flag. It is resolved by the auth middleware and trusted downstream.
type Principal struct {
	ID    string `json:"id"`
	Admin bool   `json:"admin"`
}

// UserContact is the display projection used when expanding user references
// (chat participants, booking owners) into response payloads.
type UserContact struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Contact returns the display projection for a user.
func (u *User) Contact() *UserContact {
	return &UserContact{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}
