// Package common defines shared sentinel errors used across the task vault
// data layer. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Credential store errors.
	ErrValidation        = errors.New("all fields are required")
	ErrAccountExists     = errors.New("account already exists")
	ErrNoUsersRegistered = errors.New("no users registered")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")

	// Task store errors.
	ErrNoSession = errors.New("no logged-in user")
	ErrEmptyText = errors.New("task text is empty")
)
