// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// SessionStore persists the client session between process runs.
//
// Implementations only ever see the encrypted form of the token; encryption
// and decryption happen in the caller.
type SessionStore interface {
	// Save writes the session record, replacing any previous one.
	Save(record models.SessionRecord) error

	// Load reads the saved session record.
	// Returns ErrLocalSessionNotFound when no session exists.
	Load() (models.SessionRecord, error)

	// Clear removes the saved session. Clearing an absent session is not
	// an error.
	Clear() error
}

// fileSessionStore keeps the session record as a JSON file on disk.
type fileSessionStore struct {
	path string
}

// NewFileSessionStore constructs a [SessionStore] backed by the JSON file at
// path. The parent directory is created on the first Save.
func NewFileSessionStore(path string) (SessionStore, error) {
	if path == "" {
		return nil, errors.New("session file path is empty")
	}

	return &fileSessionStore{path: path}, nil
}

// Save implements [SessionStore]. The file is written with 0600 permissions:
// the blob inside is encrypted, but there is no reason to share it.
func (s *fileSessionStore) Save(record models.SessionRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// Load implements [SessionStore].
func (s *fileSessionStore) Load() (models.SessionRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.SessionRecord{}, ErrLocalSessionNotFound
		}
		return models.SessionRecord{}, fmt.Errorf("read session file: %w", err)
	}

	var record models.SessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return models.SessionRecord{}, fmt.Errorf("unmarshal session record: %w", err)
	}

	if record.EncryptedToken == "" {
		return models.SessionRecord{}, ErrLocalSessionNotFound
	}

	return record, nil
}

// Clear implements [SessionStore].
func (s *fileSessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}

	return nil
}
