// Package statefile persists small JSON state documents that may be touched
// by several app processes at once.
package statefile

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// lockHandle represents an acquired lock that must be released.
type lockHandle struct {
	file *os.File
}

// Load reads the state at path into a new T.
// A missing or empty file yields the zero value. An unparseable file is
// logged and also yields the zero value.
func Load[T any](path string) (*T, error) {
	state := new(T)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return nil, fmt.Errorf("failed to read state: %w", err)
	}
	if len(data) == 0 {
		return state, nil
	}

	if err := json.Unmarshal(data, state); err != nil {
		log.Printf("warning: failed to parse %s, using defaults: %v", filepath.Base(path), err)
		return new(T), nil
	}
	return state, nil
}

// Update runs fn on the current state while holding an exclusive
// cross-process lock, then writes the state back. If fn returns an error
// nothing is written.
func Update[T any](path string, fn func(state *T) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	h, err := lock(path)
	if err != nil {
		return err
	}
	defer h.Unlock()

	state, err := Load[T](path)
	if err != nil {
		return err
	}

	if err := fn(state); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}
