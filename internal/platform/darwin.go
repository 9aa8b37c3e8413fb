//go:build darwin

package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type darwinManager struct{}

func newManager() (Manager, error) {
	return &darwinManager{}, nil
}

func (m *darwinManager) OS() string {
	return "macos"
}

func (m *darwinManager) FontDirs() ([]string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}

	return []string{
		"/System/Library/Fonts",
		"/Library/Fonts",
		filepath.Join(homeDir, "Library/Fonts"),
	}, nil
}

func (m *darwinManager) InstalledFamilies(ctx context.Context) ([]string, error) {
	// Homebrew installs often carry fontconfig; prefer it when present.
	if families, err := fcListFamilies(ctx); err == nil {
		return families, nil
	}

	dirs, err := m.FontDirs()
	if err != nil {
		return nil, err
	}
	return ScanFontDirs(dirs)
}
