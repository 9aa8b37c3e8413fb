package jpfont

import (
	"context"
	"fmt"

	"github.com/kenjimiwa/jpfont/internal/platform"
)

// FamilyLister enumerates the font families installed on the host.
type FamilyLister interface {
	InstalledFamilies(ctx context.Context) ([]string, error)
}

// Result reports the outcome of configuring the plotting fonts.
type Result struct {
	Family string // family that ended up configured
	Found  bool   // whether a Japanese-capable family was found
}

// Manager wires font discovery, resolution and configuration together.
type Manager struct {
	osID     string
	resolver *Resolver
	fonts    FamilyLister
	rc       Configurator
	size     float64
}

// NewManager creates a manager for the host platform, writing to the default
// matplotlibrc location.
func NewManager() (*Manager, error) {
	plat, err := platform.New()
	if err != nil {
		return nil, fmt.Errorf("detecting platform: %w", err)
	}
	rcPath, err := DefaultRCPath(plat.OS())
	if err != nil {
		return nil, fmt.Errorf("locating matplotlibrc: %w", err)
	}
	return NewManagerWith(plat.OS(), plat, &RCFile{Path: rcPath}), nil
}

// NewManagerWith assembles a manager from explicit parts.
func NewManagerWith(osID string, fonts FamilyLister, rc Configurator) *Manager {
	return &Manager{
		osID:     osID,
		resolver: NewResolver(),
		fonts:    fonts,
		rc:       rc,
		size:     DefaultFontSize,
	}
}

// OS returns the manager's operating system identifier.
func (m *Manager) OS() string {
	return m.osID
}

// SetFontSize overrides the point size applied alongside the resolved family.
func (m *Manager) SetFontSize(size float64) {
	if size > 0 {
		m.size = size
	}
}

// SetCandidates replaces the candidate list for the OS identifiers present
// in overrides.
func (m *Manager) SetCandidates(overrides map[string][]string) {
	m.resolver = NewResolverWithCandidates(overrides)
}

// Candidates returns the candidate list for the manager's OS.
func (m *Manager) Candidates() ([]string, error) {
	return m.resolver.Candidates(m.osID)
}

// Families returns the font families installed on the host.
func (m *Manager) Families(ctx context.Context) ([]string, error) {
	families, err := m.fonts.InstalledFamilies(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing installed fonts: %w", err)
	}
	return NewSetIndex(families...).Families(), nil
}

// Resolve reports which font would be selected, without touching any
// configuration.
func (m *Manager) Resolve(ctx context.Context) (Resolution, error) {
	families, err := m.fonts.InstalledFamilies(ctx)
	if err != nil {
		return Resolution{}, fmt.Errorf("listing installed fonts: %w", err)
	}
	return m.resolver.Resolve(m.osID, NewSetIndex(families...))
}

// Configure resolves a Japanese-capable font and applies it to the plotting
// configuration. When nothing suitable is installed the fallback family is
// applied instead and Result.Found is false; callers are expected to surface
// installation guidance in that case.
func (m *Manager) Configure(ctx context.Context) (Result, error) {
	families, err := m.fonts.InstalledFamilies(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("listing installed fonts: %w", err)
	}

	res, err := m.resolver.ResolveAny(m.osID, NewSetIndex(families...))
	if err != nil {
		return Result{}, err
	}

	settings := Settings{Family: FallbackFamily, Size: m.size}
	if res.Found {
		settings.Family = res.Family
	}
	if err := m.rc.Apply(settings); err != nil {
		_ = m.rc.Apply(Settings{Family: FallbackFamily, Size: m.size})
		return Result{}, fmt.Errorf("applying font settings: %w", err)
	}
	return Result{Family: settings.Family, Found: res.Found}, nil
}
