package storage

import "io"

// DefaultImage is the sentinel filename meaning "no user-uploaded image".
// It lives in the upload directory and is never written or deleted by the
// application.
const DefaultImage = "default.jpg"

// ImageStore defines the operations for uploaded portfolio images.
type ImageStore interface {
	// Allowed reports whether the filename carries an accepted image
	// extension, case-insensitively.
	Allowed(filename string) bool

	// Save writes the stream under a sanitized, uniqueness-suffixed name
	// and returns the stored filename.
	Save(filename string, reader io.Reader) (string, error)

	// Delete removes a stored file. The default sentinel and already
	// missing files are silently skipped.
	Delete(storedName string) error

	// Exists checks whether a stored file is on disk.
	Exists(storedName string) bool
}
