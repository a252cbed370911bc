package handlers

import (
	userRepo "roomyy/database/repository/user"
)

// HandlerBundle carries the assembled handlers plus the user repository the
// auth middleware verifies token subjects against.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth       *AuthHandler
	Users      *UserHandler
	Properties *PropertyHandler
	Bookings   *BookingHandler
	Chats      *ChatHandler
	Contact    *ContactHandler
}
