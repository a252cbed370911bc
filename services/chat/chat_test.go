package chat

import (
	"errors"
	"testing"
	"time"

	bookingRepo "roomyy/database/repository/booking"
	chatRepo "roomyy/database/repository/chat"
	"roomyy/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeChatRepo struct {
	byID      map[string]*models.Chat
	byBooking map[string]*models.Chat

	// When set, the next GetByBookingID misses even if a thread exists,
	// simulating the find-then-create race window.
	missNextFind bool
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{byID: map[string]*models.Chat{}, byBooking: map[string]*models.Chat{}}
}

func (r *fakeChatRepo) Create(chat *models.Chat) error {
	if _, exists := r.byBooking[chat.BookingID]; exists {
		return chatRepo.ErrDuplicateBooking
	}
	now := time.Now()
	chat.CreatedAt = now
	chat.UpdatedAt = now
	if chat.Messages == nil {
		chat.Messages = []models.ChatMessage{}
	}
	stored := *chat
	r.byID[chat.ID] = &stored
	r.byBooking[chat.BookingID] = &stored
	return nil
}

func (r *fakeChatRepo) GetByID(id string) (*models.Chat, error) {
	stored, ok := r.byID[id]
	if !ok {
		return nil, chatRepo.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeChatRepo) GetByBookingID(bookingID string) (*models.Chat, error) {
	if r.missNextFind {
		r.missNextFind = false
		return nil, chatRepo.ErrNotFound
	}
	stored, ok := r.byBooking[bookingID]
	if !ok {
		return nil, chatRepo.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeChatRepo) GetByParticipant(userID string) ([]models.Chat, error) {
	var out []models.Chat
	for _, c := range r.byID {
		if c.RenterID == userID || c.OwnerID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) AppendMessage(chatID string, msg models.ChatMessage) error {
	stored, ok := r.byID[chatID]
	if !ok {
		return chatRepo.ErrNotFound
	}
	stored.Messages = append(stored.Messages, msg)
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakeChatRepo) UpdatePurchaseDetails(chatID string, fields map[string]any) error {
	stored, ok := r.byID[chatID]
	if !ok {
		return chatRepo.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "finalPrice":
			stored.PurchaseDetails.FinalPrice = v.(float64)
		case "moveInDate":
			t := v.(time.Time)
			stored.PurchaseDetails.MoveInDate = &t
		case "securityDeposit":
			stored.PurchaseDetails.SecurityDeposit = v.(float64)
		case "agreementDuration":
			stored.PurchaseDetails.AgreementDuration = v.(string)
		case "specialTerms":
			stored.PurchaseDetails.SpecialTerms = v.(string)
		case "isConfirmed":
			stored.PurchaseDetails.IsConfirmed = v.(bool)
		}
	}
	stored.UpdatedAt = time.Now()
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func (r *fakeBookingRepo) Create(b *models.Booking) error { return nil }

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) GetByOwner(ownerID string) ([]models.Booking, error) { return nil, nil }

func (r *fakeBookingRepo) GetByProperty(propertyID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) UpdateFields(id string, fields map[string]any) error { return nil }

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) Create(u *models.User) error { return nil }

func (r *fakeUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmailWithProjection(email string, _ bson.M) (*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) GetAllWithProjection(_ bson.M) ([]models.User, error) { return nil, nil }

func newTestService() (*DefaultChatService, *fakeChatRepo) {
	chats := newFakeChatRepo()
	bookings := &fakeBookingRepo{bookings: map[string]*models.Booking{
		"bk-1": {ID: "bk-1", OwnerID: "owner-1", CreatedBy: "renter-1", RenterEmail: "ravi@example.com"},
		"bk-2": {ID: "bk-2", OwnerID: "owner-1", RenterEmail: "walkin@example.com"},
	}}
	users := &fakeUserRepo{users: map[string]*models.User{
		"owner-1":  {ID: "owner-1", Name: "Asha", Email: "asha@example.com"},
		"renter-1": {ID: "renter-1", Name: "Ravi", Email: "ravi@example.com"},
	}}
	return &DefaultChatService{Repo: chats, BookingRepo: bookings, UserRepo: users}, chats
}

func TestGetOrCreateChatIsIdempotent(t *testing.T) {
	svc, _ := newTestService()

	first, err := svc.GetOrCreateChat("bk-1")
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if first.RenterID != "renter-1" || first.OwnerID != "owner-1" {
		t.Fatalf("unexpected participants: renter=%q owner=%q", first.RenterID, first.OwnerID)
	}
	if !first.IsActive {
		t.Fatal("new thread should be active")
	}

	second, err := svc.GetOrCreateChat("bk-1")
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected the same thread, got %q and %q", first.ID, second.ID)
	}
}

func TestGetOrCreateChatLegacyRenterFallback(t *testing.T) {
	svc, _ := newTestService()

	// bk-2 was created without authentication; the renter's email stands in
	// as the participant key.
	thread, err := svc.GetOrCreateChat("bk-2")
	if err != nil {
		t.Fatalf("GetOrCreateChat failed: %v", err)
	}
	if thread.RenterID != "walkin@example.com" {
		t.Fatalf("expected email fallback, got %q", thread.RenterID)
	}
	if thread.Renter != nil {
		t.Fatalf("email key must not resolve to a contact, got %+v", thread.Renter)
	}
}

func TestGetOrCreateChatBookingMissing(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetOrCreateChat("missing")
	var svcErr *Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if svcErr.Status != 404 || svcErr.Message != "Booking not found" {
		t.Fatalf("expected 404 Booking not found, got %d %q", svcErr.Status, svcErr.Message)
	}
}

func TestGetOrCreateChatLosesRace(t *testing.T) {
	svc, repo := newTestService()

	winner, err := svc.GetOrCreateChat("bk-1")
	if err != nil {
		t.Fatalf("seeding thread failed: %v", err)
	}

	// The next find misses, so the service tries to create and collides with
	// the winner's thread on the unique booking key.
	repo.missNextFind = true
	loser, err := svc.GetOrCreateChat("bk-1")
	if err != nil {
		t.Fatalf("racing call failed: %v", err)
	}
	if loser.ID != winner.ID {
		t.Fatalf("expected the winner's thread %q, got %q", winner.ID, loser.ID)
	}
}

func TestPurchaseDetailsShallowMerge(t *testing.T) {
	svc, _ := newTestService()
	thread, err := svc.GetOrCreateChat("bk-1")
	if err != nil {
		t.Fatalf("GetOrCreateChat failed: %v", err)
	}

	price := 15000.0
	moveIn := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.UpdatePurchaseDetails(thread.ID, models.PurchaseDetailsUpdate{
		FinalPrice: &price,
		MoveInDate: &moveIn,
	}); err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	deposit := 5000.0
	updated, err := svc.UpdatePurchaseDetails(thread.ID, models.PurchaseDetailsUpdate{
		SecurityDeposit: &deposit,
	})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}

	details := updated.PurchaseDetails
	if details.FinalPrice != price {
		t.Fatalf("finalPrice overwritten: got %v", details.FinalPrice)
	}
	if details.MoveInDate == nil || !details.MoveInDate.Equal(moveIn) {
		t.Fatalf("moveInDate overwritten: got %v", details.MoveInDate)
	}
	if details.SecurityDeposit != deposit {
		t.Fatalf("securityDeposit not applied: got %v", details.SecurityDeposit)
	}
}

func TestSendMessageAssignsServerTimestamps(t *testing.T) {
	svc, _ := newTestService()
	thread, err := svc.GetOrCreateChat("bk-1")
	if err != nil {
		t.Fatalf("GetOrCreateChat failed: %v", err)
	}

	if _, err := svc.SendMessage(thread.ID, "renter-1", "Is it still available?", "text"); err != nil {
		t.Fatalf("first message failed: %v", err)
	}
	updated, err := svc.SendMessage(thread.ID, "owner-1", "Yes, come see it.", "bogus-type")
	if err != nil {
		t.Fatalf("second message failed: %v", err)
	}

	if len(updated.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(updated.Messages))
	}
	first, second := updated.Messages[0], updated.Messages[1]
	if first.Timestamp.IsZero() || second.Timestamp.IsZero() {
		t.Fatal("timestamps must be server-assigned")
	}
	if second.Timestamp.Before(first.Timestamp) {
		t.Fatalf("messages out of order: %v before %v", second.Timestamp, first.Timestamp)
	}
	if second.MessageType != models.MessageTypeText {
		t.Fatalf("unknown message type should default to text, got %q", second.MessageType)
	}
	if second.Sender == nil || second.Sender.Name != "Asha" {
		t.Fatalf("expected sender expansion, got %+v", second.Sender)
	}
}

func TestSendMessageChatMissing(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SendMessage("missing", "renter-1", "hello", "text")
	var svcErr *Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if svcErr.Status != 404 || svcErr.Message != "Chat not found" {
		t.Fatalf("expected 404 Chat not found, got %d %q", svcErr.Status, svcErr.Message)
	}
}
