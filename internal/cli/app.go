package cli

import (
	"errors"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entrypoint"
)

// ErrNonPersistentDriver is returned when a command is pointed at the memory
// store, whose contents vanish when the process exits.
var ErrNonPersistentDriver = errors.New("the memory driver does not persist between commands; use sqlite or postgres")

func openApp(db config.Database) (*entrypoint.App, error) {
	if db.Driver == config.DriverMemory {
		return nil, ErrNonPersistentDriver
	}
	return entrypoint.NewApp(db)
}
