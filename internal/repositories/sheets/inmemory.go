package sheets

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/spellwright/wizard-forge/internal/domain/character"
	forgeerr "github.com/spellwright/wizard-forge/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the sheet repository
// Useful for testing and development
type InMemoryRepository struct {
	mu     sync.RWMutex
	sheets map[string]*character.Sheet
}

// NewInMemory creates a new in-memory sheet repository
func NewInMemory() Repository {
	return &InMemoryRepository{
		sheets: make(map[string]*character.Sheet),
	}
}

// cloneSheet deep-copies a sheet through JSON. Sheets carry nested slices
// and maps, so a struct copy would still alias the caller's state.
func cloneSheet(sheet *character.Sheet) (*character.Sheet, error) {
	data, err := json.Marshal(sheet)
	if err != nil {
		return nil, forgeerr.Wrap(err, "failed to clone sheet")
	}

	var clone character.Sheet
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, forgeerr.Wrap(err, "failed to clone sheet")
	}

	return &clone, nil
}

// Get retrieves the sheet for a session, or a fresh blank sheet if none
// has been saved yet
func (r *InMemoryRepository) Get(ctx context.Context, sessionID string) (*character.Sheet, error) {
	if sessionID == "" {
		return nil, forgeerr.InvalidArgument("session ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sheet, exists := r.sheets[sessionID]
	if !exists {
		return character.NewSheet(), nil
	}

	return cloneSheet(sheet)
}

// Save stores the sheet for a session
func (r *InMemoryRepository) Save(ctx context.Context, sessionID string, sheet *character.Sheet) error {
	if sessionID == "" {
		return forgeerr.InvalidArgument("session ID is required")
	}
	if sheet == nil {
		return forgeerr.InvalidArgument("sheet cannot be nil")
	}

	clone, err := cloneSheet(sheet)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sheets[sessionID] = clone
	return nil
}

// Delete removes the sheet for a session
func (r *InMemoryRepository) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return forgeerr.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sheets, sessionID)
	return nil
}
