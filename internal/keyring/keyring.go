package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/arun-chaudhary3116/HabitMate/internal/constants"
)

var (
	// ErrNotFound is returned when no session is stored in the keyring
	ErrNotFound = errors.New("session not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Store persists the serialized backend session cookie in the OS
// keyring. It satisfies the api.CredentialStore interface.
type Store struct{}

// GetSession retrieves the serialized session cookie from the OS keyring.
// Returns ErrNotFound if no session is stored.
func (Store) GetSession() (string, error) {
	session, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return session, nil
}

// SetSession stores the serialized session cookie in the OS keyring.
func (Store) SetSession(session string) error {
	if session == "" {
		return errors.New("session cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, session); err != nil {
		return fmt.Errorf("failed to store session in keyring: %w", err)
	}
	return nil
}

// DeleteSession removes the stored session cookie from the OS keyring.
func (Store) DeleteSession() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring is reachable but empty
	return err == nil || err == keyring.ErrNotFound
}
