package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Inventory errors
	ErrProcessorNotFound = errors.New("processor not found")
	ErrProcessorInUse    = errors.New("processor is referenced by a machine")
)
