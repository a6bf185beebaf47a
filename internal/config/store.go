package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/radiostream/server/internal/logging"
)

// ErrConfigCorrupt is returned when the persisted document exists but cannot
// be parsed. This is fatal at startup: the operator has to fix or delete the
// file, no automatic recovery is attempted.
var ErrConfigCorrupt = errors.New("configuration file is corrupt")

// Seeder produces the generated first-run values that plain defaulting cannot:
// a password hash for the default credentials and a session-signing secret.
type Seeder interface {
	HashPassword(password string) (string, error)
	GenerateSecretKey() (string, error)
}

// Store owns the configuration document for the process. The in-memory copy
// is the single authoritative version; all reads reference it directly and
// every mutation goes through Replace.
//
// Concurrency contract: last writer wins, no locking. The system assumes a
// single operator; concurrent admin writes are out of scope.
type Store struct {
	path    string
	seeder  Seeder
	current *Config
}

// NewStore creates a store for the document at path. Load must be called
// before Current is used.
func NewStore(path string, seeder Seeder) *Store {
	return &Store{path: path, seeder: seeder}
}

// Path returns the canonical location of the persisted document.
func (s *Store) Path() string {
	return s.path
}

// Current returns the in-memory document.
func (s *Store) Current() *Config {
	return s.current
}

// Load reads the persisted document, or seeds a fresh one on first run.
//
// An existing document is parsed over a fully defaulted base, so fields absent
// from older documents pick up defaults while every present field (including
// explicitly empty strings and zero numbers) is preserved. Presence decides,
// not the value. If generated fields were missing the
// merged document is persisted immediately, which keeps the secret key stable
// across restarts and makes loading idempotent.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		cfg, err := s.seed()
		if err != nil {
			return nil, err
		}
		if err := s.Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to persist initial configuration: %w", err)
		}
		logging.Log.WithField("path", s.path).Info("Created configuration with default credentials")
		s.current = cfg
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	cfg := &Config{
		Port:         DefaultPort,
		StationLabel: DefaultStationLabel,
		Description:  DefaultDescription,
		Username:     DefaultUsername,
		Theme:        DefaultTheme(),
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigCorrupt, s.path, err)
	}

	generated := false
	if cfg.PasswordHash == "" {
		hash, err := s.seeder.HashPassword(DefaultPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash default password: %w", err)
		}
		cfg.PasswordHash = hash
		generated = true
	}
	if cfg.SecretKey == "" {
		secret, err := s.seeder.GenerateSecretKey()
		if err != nil {
			return nil, fmt.Errorf("failed to generate secret key: %w", err)
		}
		cfg.SecretKey = secret
		generated = true
	}
	if generated {
		if err := s.Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to persist filled configuration: %w", err)
		}
	}

	s.current = cfg
	return cfg, nil
}

// Save serializes the full document to a temporary file next to the canonical
// path and renames it into place. A crash mid-write leaves the previous
// document fully intact; readers never observe a partial file.
func (s *Store) Save(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace configuration: %w", err)
	}
	return nil
}

// Replace persists cfg and, only on success, makes it the current in-memory
// document. A failed save leaves both disk and memory on the prior state.
func (s *Store) Replace(cfg *Config) error {
	if err := s.Save(cfg); err != nil {
		return err
	}
	s.current = cfg
	return nil
}

// seed builds the first-run document: all defaults plus fresh credentials and
// a fresh session-signing secret.
func (s *Store) seed() (*Config, error) {
	hash, err := s.seeder.HashPassword(DefaultPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}
	secret, err := s.seeder.GenerateSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret key: %w", err)
	}

	return &Config{
		Port:               DefaultPort,
		StationLabel:       DefaultStationLabel,
		Description:        DefaultDescription,
		AudioURL:           "",
		Username:           DefaultUsername,
		PasswordHash:       hash,
		SecretKey:          secret,
		Theme:              DefaultTheme(),
		BackgroundEnabled:  false,
		BackgroundFilename: "",
	}, nil
}
