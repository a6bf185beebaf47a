package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/radiostream/server/internal/config"
)

// bcryptCost matches the cost used for every stored credential hash.
const bcryptCost = 12

// CredentialService verifies login attempts and rotates the single admin
// credential pair. Passwords are only ever handled as bcrypt hashes.
type CredentialService struct{}

// NewCredentialService creates a new CredentialService.
func NewCredentialService() *CredentialService {
	return &CredentialService{}
}

// Verify returns true only for the exact configured username combined with a
// password matching the stored hash. The hash comparison is bcrypt's own
// constant-time check; plaintext secrets are never compared directly.
func (s *CredentialService) Verify(cfg *config.Config, username, password string) bool {
	if username != cfg.Username {
		return false
	}
	if cfg.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(cfg.PasswordHash), []byte(password)) == nil
}

// Rotate applies a username and/or password change to cfg. Either field may be
// empty (after trimming) to leave it unchanged; both may change in one call.
// It returns the effective username so callers can refresh the live session
// when the identity changed. No re-authentication of the old password is
// required.
func (s *CredentialService) Rotate(cfg *config.Config, newUsername, newPassword string) (string, error) {
	newUsername = strings.TrimSpace(newUsername)
	newPassword = strings.TrimSpace(newPassword)

	if newUsername != "" {
		cfg.Username = newUsername
	}
	if newPassword != "" {
		hash, err := s.HashPassword(newPassword)
		if err != nil {
			return "", err
		}
		cfg.PasswordHash = hash
	}
	return cfg.Username, nil
}

// HashPassword hashes a plaintext password for storage.
func (s *CredentialService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// GenerateSecretKey creates the random value used to sign session tokens:
// 32 bytes, hex encoded. It is generated once per installation; regenerating
// it would invalidate every existing session.
func (s *CredentialService) GenerateSecretKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secret key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// GeneratePassword creates a random plaintext password for the recovery CLI.
func (s *CredentialService) GeneratePassword() (string, error) {
	bytes := make([]byte, 12)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
