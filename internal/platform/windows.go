//go:build windows

package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

type windowsManager struct{}

func newManager() (Manager, error) {
	return &windowsManager{}, nil
}

func (m *windowsManager) OS() string {
	return "windows"
}

func (m *windowsManager) FontDirs() ([]string, error) {
	systemDir, err := windows.KnownFolderPath(windows.FOLDERID_Fonts, 0)
	if err != nil {
		return nil, fmt.Errorf("locating system fonts folder: %w", err)
	}

	dirs := []string{systemDir}
	// Per-user fonts installed without elevation land here.
	if local := os.Getenv("LOCALAPPDATA"); local != "" {
		dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
	}
	return dirs, nil
}

func (m *windowsManager) InstalledFamilies(_ context.Context) ([]string, error) {
	dirs, err := m.FontDirs()
	if err != nil {
		return nil, err
	}
	return ScanFontDirs(dirs)
}
