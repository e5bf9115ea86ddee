package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/depcheck/pkg/verbose"
)

// DefaultFileNames are the manifest file names discovered in a working
// directory, in preference order.
var DefaultFileNames = []string{"depcheck.yml", "depcheck.yaml"}

// Load reads, parses, and validates a manifest file.
//
// Parameters:
//   - path: Path to the YAML manifest file
//
// Returns:
//   - *Manifest: The validated manifest
//   - error: Read, parse, or validation error
func Load(path string) (*Manifest, error) {
	verbose.Infof("Loading manifest from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		verbose.RefFor("manifest")
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		verbose.RefFor("manifest")
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	verbose.Infof("Loaded manifest with %d top-level dependencies", len(m.Specs))
	return &m, nil
}

// Discover finds a manifest file in the given directory.
//
// Checks DefaultFileNames in order and returns the first that exists.
//
// Parameters:
//   - dir: Directory to search
//
// Returns:
//   - string: Path to the discovered manifest file
//   - error: When no manifest file exists in the directory
func Discover(dir string) (string, error) {
	for _, name := range DefaultFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			verbose.Infof("Discovered manifest %s", path)
			return path, nil
		}
	}
	return "", fmt.Errorf("no manifest file found in %s (looked for %v)", dir, DefaultFileNames)
}

// LoadOrDiscover loads the manifest at path, or discovers one in dir when
// path is empty.
//
// Parameters:
//   - path: Explicit manifest path, may be empty
//   - dir: Directory to search when path is empty
//
// Returns:
//   - *Manifest: The validated manifest
//   - error: Discovery, read, parse, or validation error
func LoadOrDiscover(path, dir string) (*Manifest, error) {
	if path == "" {
		discovered, err := Discover(dir)
		if err != nil {
			return nil, err
		}
		path = discovered
	}
	return Load(path)
}
