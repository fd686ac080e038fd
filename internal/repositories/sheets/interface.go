package sheets

//go:generate mockgen -destination=mock/mock.go -package=mocksheets -source=interface.go

import (
	"context"

	"github.com/spellwright/wizard-forge/internal/domain/character"
)

// Repository defines the interface for character sheet persistence.
// Sheets are keyed by conversation session ID.
type Repository interface {
	// Get retrieves the sheet for a session. A session with no stored
	// sheet yet gets a fresh blank sheet, not an error.
	Get(ctx context.Context, sessionID string) (*character.Sheet, error)

	// Save stores the sheet for a session, replacing any previous state
	Save(ctx context.Context, sessionID string, sheet *character.Sheet) error

	// Delete removes the sheet for a session
	Delete(ctx context.Context, sessionID string) error
}
