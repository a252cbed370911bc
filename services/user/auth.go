package user

import (
	"fmt"
	"time"

	"roomyy/models"
	"roomyy/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrEmailTaken signals a duplicate registration attempt.
var ErrEmailTaken = fmt.Errorf("Email already exists")

// ErrInvalidCredentials signals a failed login. The message is identical for
// unknown email and wrong password.
var ErrInvalidCredentials = fmt.Errorf("Invalid credentials")

const tokenLifetime = 24 * time.Hour

// Register creates a new account with a bcrypt-hashed password.
func (s *DefaultUserService) Register(name, email, password, userType string) (*models.User, error) {
	if name == "" || email == "" || password == "" || userType == "" {
		return nil, fmt.Errorf("all fields are required")
	}

	existing, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	newUser := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		UserType:     userType,
	}
	if err := s.Repo.Create(newUser); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	return newUser, nil
}

// Authenticate verifies credentials and issues a signed JWT carrying the user
// id and admin flag.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	user, err := s.Repo.GetByEmailWithProjection(email, nil)
	if err != nil {
		utils.GetLogger().Error("Authenticate: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.IsAdmin, tokenLifetime)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}

	user.PasswordHash = ""
	return &AuthResponse{Token: token, User: *user}, nil
}

// GetUserByID retrieves a user, excluding the password hash.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	return s.Repo.GetByIDWithProjection(id, bson.M{"passwordHash": 0})
}

// ListUsers returns the id/name/email/userType projection of all accounts.
func (s *DefaultUserService) ListUsers() ([]models.User, error) {
	proj := bson.M{"id": 1, "name": 1, "email": 1, "userType": 1}
	return s.Repo.GetAllWithProjection(proj)
}
