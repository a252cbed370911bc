package booking

import (
	"errors"
	"testing"
	"time"

	bookingRepo "roomyy/database/repository/booking"
	propertyRepo "roomyy/database/repository/property"
	"roomyy/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	stored, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeBookingRepo) GetByOwner(ownerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.OwnerID == ownerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByProperty(propertyID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.PropertyID == propertyID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateFields(id string, fields map[string]any) error {
	stored, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "status":
			stored.Status = v.(string)
		case "ownerContacted":
			stored.OwnerContacted = v.(bool)
		case "ownerNotifiedAt":
			t := v.(time.Time)
			stored.OwnerNotifiedAt = &t
		}
	}
	stored.UpdatedAt = time.Now()
	return nil
}

type fakePropertyRepo struct {
	properties map[string]*models.Property
}

func (r *fakePropertyRepo) Create(p *models.Property) error { r.properties[p.ID] = p; return nil }

func (r *fakePropertyRepo) GetByID(id string) (*models.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, propertyRepo.ErrNotFound
	}
	return p, nil
}

func (r *fakePropertyRepo) GetAll() ([]models.Property, error) { return nil, nil }

func (r *fakePropertyRepo) GetByOwner(ownerID string) ([]models.Property, error) { return nil, nil }

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

func newTestService() (*DefaultBookingService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	props := &fakePropertyRepo{properties: map[string]*models.Property{
		"prop-1": {ID: "prop-1", OwnerID: "owner-1", Title: "2BHK Flat", Location: "Pune", Price: 15000},
	}}
	users := &fakeUserRepo{users: map[string]*models.User{
		"owner-1": {ID: "owner-1", Name: "Asha", Email: "asha@example.com"},
	}}
	return &DefaultBookingService{Repo: repo, PropertyRepo: props, UserRepo: users}, repo
}

func validInput() *models.BookingInput {
	return &models.BookingInput{
		RenterName:           "Ravi",
		RenterEmail:          "ravi@example.com",
		RenterPhone:          "9999999999",
		RenterDocumentType:   "aadhar",
		RenterDocumentNumber: "1234-5678",
		PropertyID:           "prop-1",
	}
}

func TestCreateBookingDefaults(t *testing.T) {
	svc, repo := newTestService()
	actor := models.Principal{ID: "renter-1"}

	created, err := svc.CreateBooking(validInput(), actor)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if created.Status != models.BookingPending {
		t.Fatalf("expected status %q, got %q", models.BookingPending, created.Status)
	}
	if created.OwnerID != "owner-1" {
		t.Fatalf("expected owner snapshot owner-1, got %q", created.OwnerID)
	}
	if created.CreatedBy != "renter-1" {
		t.Fatalf("expected createdBy renter-1, got %q", created.CreatedBy)
	}
	if created.Property == nil || created.Property.Title != "2BHK Flat" {
		t.Fatalf("expected property summary on response, got %+v", created.Property)
	}
	if _, ok := repo.bookings[created.ID]; !ok {
		t.Fatal("booking was not persisted")
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := newTestService()

	input := validInput()
	input.RenterPhone = ""
	_, err := svc.CreateBooking(input, models.Principal{ID: "renter-1"})

	var svcErr *Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if svcErr.Status != 400 || svcErr.Code != CodeValidation {
		t.Fatalf("expected 400 %s, got %d %s", CodeValidation, svcErr.Status, svcErr.Code)
	}
}

func TestCreateBookingPropertyNotFound(t *testing.T) {
	svc, _ := newTestService()

	input := validInput()
	input.PropertyID = "missing"
	_, err := svc.CreateBooking(input, models.Principal{ID: "renter-1"})

	var svcErr *Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if svcErr.Status != 404 || svcErr.Code != CodePropertyMissing {
		t.Fatalf("expected 404 %s, got %d %s", CodePropertyMissing, svcErr.Status, svcErr.Code)
	}
}

func TestUpdateStatusInvalid(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateBookingStatus("any", "approved", models.Principal{ID: "owner-1"})

	var svcErr *Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if svcErr.Status != 400 || svcErr.Code != CodeInvalidStatus {
		t.Fatalf("expected 400 %s, got %d %s", CodeInvalidStatus, svcErr.Status, svcErr.Code)
	}
}

func TestUpdateStatusAccessControl(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.CreateBooking(validInput(), models.Principal{ID: "renter-1"})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	// The renter is not the owner and may not move the booking.
	_, err = svc.UpdateBookingStatus(created.ID, models.BookingConfirmed, models.Principal{ID: "renter-1"})
	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Code != CodeAccessDenied || svcErr.Status != 403 {
		t.Fatalf("expected 403 %s, got %v", CodeAccessDenied, err)
	}

	// An admin may, regardless of ownership.
	updated, err := svc.UpdateBookingStatus(created.ID, models.BookingConfirmed, models.Principal{ID: "someone-else", Admin: true})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.Status != models.BookingConfirmed {
		t.Fatalf("expected confirmed, got %q", updated.Status)
	}
}

func TestContactedStampSetOnce(t *testing.T) {
	svc, repo := newTestService()
	owner := models.Principal{ID: "owner-1"}

	created, err := svc.CreateBooking(validInput(), models.Principal{ID: "renter-1"})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	updated, err := svc.UpdateBookingStatus(created.ID, models.BookingContacted, owner)
	if err != nil {
		t.Fatalf("first transition to contacted failed: %v", err)
	}
	if !updated.OwnerContacted || updated.OwnerNotifiedAt == nil {
		t.Fatalf("expected contacted stamp, got contacted=%v notifiedAt=%v", updated.OwnerContacted, updated.OwnerNotifiedAt)
	}
	firstStamp := *repo.bookings[created.ID].OwnerNotifiedAt

	// Leave and re-enter contacted; the stamp must not move.
	if _, err := svc.UpdateBookingStatus(created.ID, models.BookingPending, owner); err != nil {
		t.Fatalf("transition back to pending failed: %v", err)
	}
	if _, err := svc.UpdateBookingStatus(created.ID, models.BookingContacted, owner); err != nil {
		t.Fatalf("second transition to contacted failed: %v", err)
	}

	stored := repo.bookings[created.ID]
	if !stored.OwnerContacted {
		t.Fatal("ownerContacted flag was cleared")
	}
	if !stored.OwnerNotifiedAt.Equal(firstStamp) {
		t.Fatalf("ownerNotifiedAt moved: first %v, now %v", firstStamp, stored.OwnerNotifiedAt)
	}
}

func TestGetBookingByIDAuthz(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.CreateBooking(validInput(), models.Principal{ID: "renter-1"})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	// The renter who created the booking may not read the owner's copy.
	_, err = svc.GetBookingByID(created.ID, models.Principal{ID: "renter-1"})
	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Code != CodeAccessDenied {
		t.Fatalf("expected %s, got %v", CodeAccessDenied, err)
	}

	found, err := svc.GetBookingByID(created.ID, models.Principal{ID: "owner-1"})
	if err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if found.Owner == nil || found.Owner.Name != "Asha" {
		t.Fatalf("expected owner contact expansion, got %+v", found.Owner)
	}
}
