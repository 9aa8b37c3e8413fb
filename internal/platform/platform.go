// Package platform discovers the fonts installed on the host operating
// system.
package platform

import "context"

// Manager handles platform-specific font discovery.
type Manager interface {
	// OS returns the normalized operating system identifier:
	// windows, macos or linux.
	OS() string

	// FontDirs returns the system and user font directories.
	FontDirs() ([]string, error)

	// InstalledFamilies returns the font family names available on the host.
	InstalledFamilies(ctx context.Context) ([]string, error)
}

// New returns a Manager for the current operating system.
func New() (Manager, error) {
	return newManager()
}
