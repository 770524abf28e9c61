package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Wthomas48/smart-deals-iq-sub002/log"
)

const StateFileName = "state.json"

// State is the small record that persists between runs: the last viewport
// the inspector saw, so the next launch can seed its store before the host
// delivers a measurement. The lock file keeps concurrent inspector and CLI
// invocations from interleaving writes.
type State struct {
	// LastWidth is the most recent viewport width, in device-independent px.
	LastWidth float64 `json:"last_width"`
	// LastHeight is the most recent viewport height.
	LastHeight float64 `json:"last_height"`
	// UpdatedAt is when the viewport was last recorded.
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultState returns the default state
func DefaultState() *State {
	return &State{}
}

// SetLastViewport records a viewport pair and persists the state.
func (s *State) SetLastViewport(width, height float64) error {
	s.LastWidth = width
	s.LastHeight = height
	s.UpdatedAt = time.Now()
	return SaveState(s)
}

// LastViewport returns the remembered pair. Both zero means no viewport has
// been recorded yet.
func (s *State) LastViewport() (width, height float64) {
	return s.LastWidth, s.LastHeight
}

// LoadState loads the state from disk. If it cannot be done, we return the default state.
// This function acquires a shared lock to allow concurrent reads.
func LoadState() *State {
	configDir, err := GetConfigDir()
	if err != nil {
		log.Error("failed to get config directory: %v", err)
		return DefaultState()
	}

	statePath := filepath.Join(configDir, StateFileName)

	// Acquire shared lock for reading
	lock := NewFileLock(statePath)
	if err := lock.RLock(); err != nil {
		log.Warning("failed to acquire read lock: %v", err)
		// Continue without lock - better to have stale data than fail
	} else {
		defer lock.Unlock()
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default state if file doesn't exist
			defaultState := DefaultState()
			if saveErr := SaveState(defaultState); saveErr != nil {
				log.Warning("failed to save default state: %v", saveErr)
			}
			return defaultState
		}

		log.Warning("failed to get state file: %v", err)
		return DefaultState()
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		log.Error("failed to parse state file: %v", err)
		return DefaultState()
	}

	return &state
}

// SaveState saves the state to disk.
// This function acquires an exclusive lock to prevent concurrent writes.
func SaveState(state *State) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	statePath := filepath.Join(configDir, StateFileName)

	// Acquire exclusive lock for writing
	lock := NewFileLock(statePath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	return os.WriteFile(statePath, data, 0644)
}

// DeleteState removes the persisted state file. Used by the reset command;
// a missing file is not an error.
func DeleteState() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	statePath := filepath.Join(configDir, StateFileName)

	lock := NewFileLock(statePath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	if err := os.Remove(statePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove state file: %w", err)
	}
	return nil
}
