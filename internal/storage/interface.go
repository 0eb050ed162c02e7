package storage

import "github.com/julianstephens/habitctl/internal/models"

// Provider persists the store aggregate. Load hands back a consistent
// point-in-time snapshot; Update serializes the whole read-modify-write
// cycle so concurrent processes cannot lose updates. Mutations only ever go
// through Update.
type Provider interface {
	// Init creates a fresh store, failing if one already exists.
	Init() error
	// Load returns the current snapshot. A store that was never written
	// loads as an empty aggregate.
	Load() (*models.DB, error)
	// Update re-reads the latest persisted state under exclusive access,
	// applies mutate to it, validates and writes the result atomically.
	Update(mutate func(*models.DB) error) error
	// Path is the storage location, for messages and backups.
	Path() string
	Close() error
}
