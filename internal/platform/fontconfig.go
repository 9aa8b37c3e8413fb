package platform

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// fcListFamilies asks fontconfig for every known family name.
func fcListFamilies(ctx context.Context) ([]string, error) {
	fcList, err := exec.LookPath("fc-list")
	if err != nil {
		return nil, fmt.Errorf("fc-list not available: %w", err)
	}

	out, err := exec.CommandContext(ctx, fcList, "--format", "%{family}\n").Output()
	if err != nil {
		return nil, fmt.Errorf("running fc-list: %w", err)
	}
	return ParseFamilyList(string(out)), nil
}

// ParseFamilyList splits fc-list output into unique family names. Each line
// may carry several comma-separated localized names for the same font.
func ParseFamilyList(out string) []string {
	seen := make(map[string]struct{})
	var families []string
	for _, line := range strings.Split(out, "\n") {
		for _, name := range strings.Split(line, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			families = append(families, name)
		}
	}
	return families
}
