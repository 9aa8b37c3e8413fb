// Package jpfont selects an installed Japanese-capable font family and points
// a plotting configuration at it, so chart labels render Japanese text instead
// of empty boxes.
package jpfont

import (
	"errors"
	"fmt"
)

// Supported operating system identifiers.
const (
	OSWindows = "windows"
	OSMacOS   = "macos"
	OSLinux   = "linux"
)

// ErrUnsupportedPlatform is returned when an OS identifier is not one of
// windows, macos or linux.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// defaultCandidates lists Japanese-capable font families per OS,
// most preferred first.
var defaultCandidates = map[string][]string{
	OSWindows: {
		"Yu Gothic",
		"Yu Gothic UI",
		"Meiryo",
		"MS Gothic",
		"MS PGothic",
		"Noto Sans CJK JP",
	},
	OSMacOS: {
		"Hiragino Sans",
		"Hiragino Kaku Gothic Pro",
		"Hiragino Maru Gothic Pro",
		"Noto Sans CJK JP",
		"Osaka",
	},
	OSLinux: {
		"Noto Sans CJK JP",
		"IPAexGothic",
		"IPAGothic",
		"TakaoGothic",
		"VL Gothic",
		"Sazanami Gothic",
	},
}

// universalFamilies are tried after the OS-specific candidates when resolving
// with fallback. They ship on most systems in some form.
var universalFamilies = []string{
	"Noto Sans CJK JP",
	"DejaVu Sans",
}

// Resolution is the outcome of a font lookup. Found is false when no
// candidate is installed; that is a normal outcome, not an error.
type Resolution struct {
	Family string
	Found  bool
}

// Resolver picks the first installed font from an OS-specific candidate list.
type Resolver struct {
	candidates map[string][]string
}

// NewResolver returns a resolver using the built-in candidate lists.
func NewResolver() *Resolver {
	return &Resolver{candidates: defaultCandidates}
}

// NewResolverWithCandidates replaces the built-in candidate list for each OS
// identifier present in overrides. Other OS identifiers keep their defaults.
func NewResolverWithCandidates(overrides map[string][]string) *Resolver {
	merged := make(map[string][]string, len(defaultCandidates))
	for osID, list := range defaultCandidates {
		merged[osID] = list
	}
	for osID, list := range overrides {
		if len(list) > 0 {
			merged[osID] = list
		}
	}
	return &Resolver{candidates: merged}
}

// Candidates returns the candidate list for the given OS identifier,
// most preferred first.
func (r *Resolver) Candidates(osID string) ([]string, error) {
	list, ok := r.candidates[osID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, osID)
	}
	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}

// Resolve returns the first candidate for osID that the index reports as
// installed. Repeated calls with the same inputs yield the same result.
func (r *Resolver) Resolve(osID string, index FontIndex) (Resolution, error) {
	list, ok := r.candidates[osID]
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, osID)
	}
	for _, family := range list {
		if index.Has(family) {
			return Resolution{Family: family, Found: true}, nil
		}
	}
	return Resolution{}, nil
}

// ResolveAny resolves like Resolve, then tries the universal fallback
// families before reporting not found.
func (r *Resolver) ResolveAny(osID string, index FontIndex) (Resolution, error) {
	res, err := r.Resolve(osID, index)
	if err != nil || res.Found {
		return res, err
	}
	for _, family := range universalFamilies {
		if index.Has(family) {
			return Resolution{Family: family, Found: true}, nil
		}
	}
	return Resolution{}, nil
}
