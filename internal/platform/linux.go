//go:build linux

package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type linuxManager struct{}

func newManager() (Manager, error) {
	return &linuxManager{}, nil
}

func (m *linuxManager) OS() string {
	return "linux"
}

func (m *linuxManager) FontDirs() ([]string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}

	return []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		filepath.Join(homeDir, ".local/share/fonts"),
		filepath.Join(homeDir, ".fonts"),
	}, nil
}

func (m *linuxManager) InstalledFamilies(ctx context.Context) ([]string, error) {
	// fontconfig knows every font the renderer will see; fall back to
	// scanning the standard directories when it is not installed.
	if families, err := fcListFamilies(ctx); err == nil {
		return families, nil
	}

	dirs, err := m.FontDirs()
	if err != nil {
		return nil, err
	}
	return ScanFontDirs(dirs)
}
