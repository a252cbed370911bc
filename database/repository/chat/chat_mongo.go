package chatRepo

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

var (
	// ErrNotFound is returned when no thread matches the lookup.
	ErrNotFound = fmt.Errorf("chat not found")
	// ErrDuplicateBooking is returned when a thread already exists for the
	// booking. Callers treat it as "fetch the existing thread instead".
	ErrDuplicateBooking = fmt.Errorf("chat already exists for booking")
)

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct{}

// NewMongoChatRepo creates a new instance of ChatRepository using MongoDB.
func NewMongoChatRepo() ChatRepository {
	repo := &MongoChatRepo{}
	if coll, err := repo.coll(); err == nil {
		if err := ensureIndexes(coll); err != nil {
			fmt.Printf("failed to create chat indexes: %v\n", err)
		}
	}
	return repo
}

func (r *MongoChatRepo) coll() (*mongo.Collection, error) {
	return database.Collection("chats")
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new thread document. The unique index on bookingId turns a
// concurrent first-contact race into ErrDuplicateBooking.
func (r *MongoChatRepo) Create(chat *models.Chat) error {
	coll, err := r.coll()
	if err != nil {
		return err
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	chat.CreatedAt = now
	chat.UpdatedAt = now
	if chat.Messages == nil {
		chat.Messages = []models.ChatMessage{}
	}

	if _, err := coll.InsertOne(ctx, chat); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateBooking
		}
		return fmt.Errorf("failed to create chat: %w", err)
	}
	return nil
}

// GetByID retrieves a thread by its unique id.
func (r *MongoChatRepo) GetByID(id string) (*models.Chat, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByBookingID retrieves the thread for a booking.
func (r *MongoChatRepo) GetByBookingID(bookingID string) (*models.Chat, error) {
	return r.findOne(bson.M{"bookingId": bookingID})
}

func (r *MongoChatRepo) findOne(filter bson.M) (*models.Chat, error) {
	coll, err := r.coll()
	if err != nil {
		return nil, err
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var chat models.Chat
	if err := coll.FindOne(ctx, filter).Decode(&chat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch chat: %w", err)
	}
	return &chat, nil
}

// GetByParticipant retrieves all threads where the user is either participant,
// most recently updated first.
func (r *MongoChatRepo) GetByParticipant(userID string) ([]models.Chat, error) {
	coll, err := r.coll()
	if err != nil {
		return nil, err
	}
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"renterId": userID},
		bson.M{"ownerId": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	defer cursor.Close(ctx)

	var chats []models.Chat
	for cursor.Next(ctx) {
		var c models.Chat
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode chat: %w", err)
		}
		chats = append(chats, c)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return chats, nil
}

// AppendMessage pushes a message onto the thread.
func (r *MongoChatRepo) AppendMessage(chatID string, msg models.ChatMessage) error {
	coll, err := r.coll()
	if err != nil {
		return err
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"messages": msg},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := coll.UpdateOne(ctx, bson.M{"id": chatID}, update)
	if err != nil {
		return fmt.Errorf("failed to append message to chat %s: %w", chatID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePurchaseDetails sets individual terms fields without touching the rest
// of the record.
func (r *MongoChatRepo) UpdatePurchaseDetails(chatID string, fields map[string]any) error {
	coll, err := r.coll()
	if err != nil {
		return err
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set["purchaseDetails."+k] = v
	}

	result, err := coll.UpdateOne(ctx, bson.M{"id": chatID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update purchase details for chat %s: %w", chatID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
