package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	BookService BookService

	// Database is nil when books live in memory.
	Database Pinger

	// Empty TemplatesPath means the embedded templates are used.
	TemplatesPath string

	// CSRF protection for form posts; disabled when CSRFSecret is empty.
	CSRFSecret    []byte
	SecureCookies bool

	// Application info
	Version string
}
