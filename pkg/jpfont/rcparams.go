package jpfont

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FallbackFamily is applied when no Japanese-capable font is installed.
// Labels stay readable, Japanese glyphs may render as boxes.
const FallbackFamily = "DejaVu Sans"

// DefaultFontSize is the point size applied alongside the resolved family.
const DefaultFontSize = 10

// Settings are the font defaults applied to the plotting configuration.
type Settings struct {
	Family string
	Size   float64

	// UnicodeMinus controls axes.unicode_minus. Leaving it off replaces
	// U+2212 with an ASCII hyphen, which Japanese fonts often lack.
	UnicodeMinus bool
}

// Configurator applies font settings to a plotting configuration.
type Configurator interface {
	Apply(Settings) error
}

// managedKeys are the matplotlibrc keys this tool owns.
var managedKeys = []string{"font.family", "font.size", "axes.unicode_minus"}

// RCFile applies settings to a matplotlibrc file. Managed keys are rewritten
// in place, every other line is preserved as-is. The file and its parent
// directory are created when absent.
type RCFile struct {
	Path string
}

func (rc *RCFile) Apply(s Settings) error {
	values := map[string]string{
		"font.family":        s.Family,
		"font.size":          strconv.FormatFloat(s.Size, 'f', -1, 64),
		"axes.unicode_minus": pyBool(s.UnicodeMinus),
	}

	lines, err := rc.readLines()
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	for i, line := range lines {
		key := rcKey(line)
		if value, ok := values[key]; ok {
			lines[i] = fmt.Sprintf("%s: %s", key, value)
			seen[key] = true
		}
	}
	for _, key := range managedKeys {
		if !seen[key] {
			lines = append(lines, fmt.Sprintf("%s: %s", key, values[key]))
		}
	}

	if err := os.MkdirAll(filepath.Dir(rc.Path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(rc.Path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", rc.Path, err)
	}
	return nil
}

func (rc *RCFile) readLines() ([]string, error) {
	data, err := os.ReadFile(rc.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", rc.Path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
}

// rcKey extracts the configuration key from a matplotlibrc line, or ""
// for blank lines and comments.
func rcKey(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ""
	}
	key, _, ok := strings.Cut(trimmed, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(key)
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// DefaultRCPath returns the matplotlibrc location the way matplotlib itself
// discovers it: the MATPLOTLIBRC variable (file or directory), then
// MPLCONFIGDIR, then the per-OS user configuration directory.
func DefaultRCPath(osID string) (string, error) {
	if p := os.Getenv("MATPLOTLIBRC"); p != "" {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return filepath.Join(p, "matplotlibrc"), nil
		}
		return p, nil
	}
	if dir := os.Getenv("MPLCONFIGDIR"); dir != "" {
		return filepath.Join(dir, "matplotlibrc"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting user home directory: %w", err)
	}
	if osID == OSMacOS {
		return filepath.Join(home, ".matplotlib", "matplotlibrc"), nil
	}
	return filepath.Join(home, ".config", "matplotlib", "matplotlibrc"), nil
}
