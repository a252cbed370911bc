package contactRepo

import (
	"context"
	"fmt"
	"time"

	"roomyy/database"
	"roomyy/models"
)

// ContactRepository defines persistence for contact-form submissions.
type ContactRepository interface {
	Create(contact *models.Contact) error
}

// MongoContactRepo implements ContactRepository using MongoDB.
type MongoContactRepo struct{}

// NewMongoContactRepo creates a new instance of ContactRepository using MongoDB.
func NewMongoContactRepo() ContactRepository {
	return &MongoContactRepo{}
}

// Create inserts a new contact document.
func (r *MongoContactRepo) Create(contact *models.Contact) error {
	coll, err := database.Collection("contacts")
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	contact.CreatedAt = time.Now()
	if _, err := coll.InsertOne(ctx, contact); err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}
