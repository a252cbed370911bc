package propertyRepo

import (
	"context"
	"fmt"
	"time"

	"roomyy/database"
	"roomyy/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no property matches the given id.
var ErrNotFound = fmt.Errorf("property not found")

// MongoPropertyRepo implements PropertyRepository using MongoDB.
type MongoPropertyRepo struct{}

// NewMongoPropertyRepo creates a new instance of PropertyRepository using MongoDB.
func NewMongoPropertyRepo() PropertyRepository {
	repo := &MongoPropertyRepo{}
	if coll, err := repo.coll(); err == nil {
		if err := ensureIndexes(coll); err != nil {
			fmt.Printf("failed to create property indexes: %v\n", err)
		}
	}
	return repo
}

func (r *MongoPropertyRepo) coll() (*mongo.Collection, error) {
	return database.Collection("properties")
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new property document.
func (r *MongoPropertyRepo) Create(property *models.Property) error {
	coll, err := r.coll()
	if err != nil {
		return err
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, property); err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

// GetByID retrieves a property by its unique id.
func (r *MongoPropertyRepo) GetByID(id string) (*models.Property, error) {
	coll, err := r.coll()
	if err != nil {
		return nil, err
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var property models.Property
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&property); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch property with id %s: %w", id, err)
	}
	return &property, nil
}

// GetAll retrieves all property listings.
func (r *MongoPropertyRepo) GetAll() ([]models.Property, error) {
	return r.find(bson.M{})
}

// GetByOwner retrieves all properties listed by an owner.
func (r *MongoPropertyRepo) GetByOwner(ownerID string) ([]models.Property, error) {
	return r.find(bson.M{"owner": ownerID})
}

func (r *MongoPropertyRepo) find(filter bson.M) ([]models.Property, error) {
	coll, err := r.coll()
	if err != nil {
		return nil, err
	}
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	for cursor.Next(ctx) {
		var p models.Property
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return properties, nil
}
