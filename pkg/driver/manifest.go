package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the project manifest looked up next to (or above) the
// working directory.
const ManifestFileName = "package.yml"

// ErrManifestNotFound reports that no package.yml exists in or above the
// searched directory.
var ErrManifestNotFound = errors.New("package.yml not found")

// Manifest describes a SimpleLang project: metadata plus named entry targets.
type Manifest struct {
	Path    string
	Name    string
	Version string
	Authors []string
	Targets map[string]*Target
}

// Target maps a target name to its entry source file.
type Target struct {
	OriginalName string
	Main         string
}

type manifestDisk struct {
	Name    string            `yaml:"name"`
	Version string            `yaml:"version"`
	Authors []string          `yaml:"authors"`
	Targets map[string]string `yaml:"targets"`
}

// LoadManifest parses a package.yml from disk.
func LoadManifest(path string) (*Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw manifestDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", abs, err)
	}

	manifest := &Manifest{
		Path:    abs,
		Name:    sanitizeSegment(raw.Name),
		Version: strings.TrimSpace(raw.Version),
		Authors: raw.Authors,
		Targets: map[string]*Target{},
	}
	for name, main := range raw.Targets {
		main = strings.TrimSpace(main)
		if main == "" {
			return nil, fmt.Errorf("manifest: target %q has no entry file", name)
		}
		manifest.Targets[name] = &Target{OriginalName: name, Main: main}
	}
	return manifest, nil
}

// FindManifest walks up from dir looking for package.yml.
func FindManifest(dir string) (*Manifest, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", dir, err)
	}
	for {
		candidate := filepath.Join(current, ManifestFileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return LoadManifest(candidate)
		}
		parent := filepath.Dir(current)
		if parent == current {
			return nil, ErrManifestNotFound
		}
		current = parent
	}
}

// DefaultTarget picks the target to run when none is named: a sole target,
// or one called "main".
func (m *Manifest) DefaultTarget() (*Target, error) {
	if len(m.Targets) == 0 {
		return nil, fmt.Errorf("manifest %s declares no targets", m.Path)
	}
	if len(m.Targets) == 1 {
		for _, target := range m.Targets {
			return target, nil
		}
	}
	if target, ok := m.Targets["main"]; ok {
		return target, nil
	}
	names := make([]string, 0, len(m.Targets))
	for name := range m.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return nil, fmt.Errorf("manifest %s has multiple targets (%s); name one explicitly", m.Path, strings.Join(names, ", "))
}

// FindTarget looks a target up by name.
func (m *Manifest) FindTarget(name string) (*Target, bool) {
	target, ok := m.Targets[name]
	return target, ok
}

// ResolveMain returns the target's entry file relative to the manifest.
func (m *Manifest) ResolveMain(target *Target) string {
	if filepath.IsAbs(target.Main) {
		return target.Main
	}
	return filepath.Join(filepath.Dir(m.Path), target.Main)
}

func sanitizeSegment(raw string) string {
	segment := strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	for _, ch := range segment {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9', ch == '_':
			b.WriteRune(ch)
		case ch == '-' || ch == ' ' || ch == '.':
			b.WriteByte('_')
		}
	}
	return b.String()
}
