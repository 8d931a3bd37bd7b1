package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dbelyaev/taskvault/internal/client/models"
	"github.com/dbelyaev/taskvault/internal/client/storage"
	"github.com/dbelyaev/taskvault/internal/common"
	"github.com/dbelyaev/taskvault/internal/cryptox"
)

// UserService is the credential store: it manages the `users` collection
// and verifies logins against it.
type UserService struct {
	kv storage.KVStore
}

// NewUserService constructs a UserService over the given store.
func NewUserService(kv storage.KVStore) *UserService {
	return &UserService{kv: kv}
}

// loadUsers reads the full user collection. A missing key and an
// unreadable value both yield an empty collection.
func (u *UserService) loadUsers(ctx context.Context) ([]models.User, error) {
	raw, err := u.kv.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if raw == "" {
		return nil, nil
	}
	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, nil
	}
	return users, nil
}

func (u *UserService) saveUsers(ctx context.Context, users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := u.kv.Set(ctx, storage.KeyUsers, string(raw)); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

// Register creates a new credential record. It fails with
// common.ErrValidation if any field is blank and common.ErrAccountExists
// if a record with the same email (exact, case-sensitive match) is already
// stored. The password slice is not retained.
func (u *UserService) Register(ctx context.Context, fullName string, email string, password []byte) error {
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(email) == "" || len(bytes.TrimSpace(password)) == 0 {
		return common.ErrValidation
	}

	users, err := u.loadUsers(ctx)
	if err != nil {
		return err
	}
	for _, user := range users {
		if user.Email == email {
			return common.ErrAccountExists
		}
	}

	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	users = append(users, models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: cryptox.HashPassword(password, salt),
		Salt:         fmt.Sprintf("%x", salt),
	})
	return u.saveUsers(ctx, users)
}

// Login verifies the credentials and returns the matching record. The
// caller is responsible for persisting the session markers on success.
func (u *UserService) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	users, err := u.loadUsers(ctx)
	if err != nil {
		return models.User{}, err
	}
	if len(users) == 0 {
		return models.User{}, common.ErrNoUsersRegistered
	}

	for _, user := range users {
		if user.Email != email {
			continue
		}
		if !cryptox.VerifyPassword(password, user.Salt, user.PasswordHash) {
			return models.User{}, common.ErrWrongPassword
		}
		return user, nil
	}
	return models.User{}, common.ErrUserNotFound
}

// ClearAll wipes the entire store: every user, task, and session marker.
// This is an operator escape hatch, not part of the normal user flow; the
// caller must gate it behind an explicit confirmation.
func (u *UserService) ClearAll(ctx context.Context) error {
	if err := u.kv.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	return nil
}
