package config

// Default paths and drivers for the database
const (
	// DefaultDatabasePath is the default path for the SQLite database file
	DefaultDatabasePath = "./bookshelf.db"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory" // Non-persistent map store, handy for demos
)
