// Package services contains the application services of the task vault:
// the credential store, the task store, and the session markers they share.
// All state lives behind an injected storage.KVStore; the services own no
// global singletons.
package services

import (
	"context"
	"fmt"

	"github.com/dbelyaev/taskvault/internal/client/models"
	"github.com/dbelyaev/taskvault/internal/client/storage"
)

// SessionService manages the logged-in marker pair. The persisted layout
// keeps the two historical scalar keys, but both are always written and
// removed together so the pair behaves as one atomic optional value.
type SessionService struct {
	kv storage.KVStore
}

// NewSessionService constructs a SessionService over the given store.
func NewSessionService(kv storage.KVStore) *SessionService {
	return &SessionService{kv: kv}
}

// Current returns the session restored from the persisted markers. A zero
// session means logged out; this is the cold-start state when no marker is
// present.
func (s *SessionService) Current(ctx context.Context) (models.Session, error) {
	email, err := s.kv.Get(ctx, storage.KeyLoggedInUser)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	if email == "" {
		return models.Session{}, nil
	}
	name, err := s.kv.Get(ctx, storage.KeyLoggedInName)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	return models.Session{Email: email, Name: name}, nil
}

// Start persists both session markers. When the store supports batching the
// pair is written atomically.
func (s *SessionService) Start(ctx context.Context, email string, name string) error {
	err := s.batch(ctx, func(ctx context.Context, kv storage.KVStore) error {
		if err := kv.Set(ctx, storage.KeyLoggedInUser, email); err != nil {
			return err
		}
		return kv.Set(ctx, storage.KeyLoggedInName, name)
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// End removes both session markers. Ending an already-ended session is a
// no-op, so repeated logouts are safe.
func (s *SessionService) End(ctx context.Context) error {
	err := s.batch(ctx, func(ctx context.Context, kv storage.KVStore) error {
		if err := kv.Remove(ctx, storage.KeyLoggedInUser); err != nil {
			return err
		}
		return kv.Remove(ctx, storage.KeyLoggedInName)
	})
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *SessionService) batch(ctx context.Context, fn func(ctx context.Context, kv storage.KVStore) error) error {
	if b, ok := s.kv.(storage.Batcher); ok {
		return b.Batch(ctx, fn)
	}
	return fn(ctx, s.kv)
}
