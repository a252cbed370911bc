package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"roomyy/database"
	"roomyy/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = fmt.Errorf("booking not found")

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct{}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{}
	if coll, err := repo.coll(); err == nil {
		if err := ensureIndexes(coll); err != nil {
			fmt.Printf("failed to create booking indexes: %v\n", err)
		}
	}
	return repo
}

// coll resolves the bookings collection, re-attempting the cached connection
// when it is unavailable.
func (r *MongoBookingRepo) coll() (*mongo.Collection, error) {
	return database.Collection("bookings")
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	coll, err := r.coll()
	if err != nil {
		return err
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique id.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	coll, err := r.coll()
	if err != nil {
		return nil, err
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// GetByOwner retrieves all bookings for a property owner, newest first.
func (r *MongoBookingRepo) GetByOwner(ownerID string) ([]models.Booking, error) {
	return r.find(bson.M{"ownerId": ownerID})
}

// GetByProperty retrieves all bookings for a property, newest first.
func (r *MongoBookingRepo) GetByProperty(propertyID string) ([]models.Booking, error) {
	return r.find(bson.M{"propertyId": propertyID})
}

func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	coll, err := r.coll()
	if err != nil {
		return nil, err
	}
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// UpdateFields patches the given fields on a booking document.
func (r *MongoBookingRepo) UpdateFields(id string, fields map[string]any) error {
	coll, err := r.coll()
	if err != nil {
		return err
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	result, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
