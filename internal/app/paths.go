package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for a deployed bundle.
// All fields are pre-computed strings — zero-alloc access after construction.
type Paths struct {
	BaseDir   string // directory containing the spahost binary
	AssetRoot string // <BaseDir>/public/dist
	Index     string // <BaseDir>/public/dist/index.html
}

// NewPaths constructs all resolved paths from a base directory.
func NewPaths(baseDir string) *Paths {
	return &Paths{
		BaseDir:   baseDir,
		AssetRoot: filepath.Join(baseDir, "public", "dist"),
		Index:     filepath.Join(baseDir, "public", "dist", "index.html"),
	}
}

// NewPathsFromExecutable locates the running binary and builds Paths from
// its directory. The bundle is expected to be deployed alongside the binary.
func NewPathsFromExecutable() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	return NewPaths(filepath.Dir(exe)), nil
}

// Name returns the served package name: the base name of BaseDir.
// Used for the startup line.
func (p *Paths) Name() string {
	return filepath.Base(p.BaseDir)
}

// Verify checks that the bundle is deployed: AssetRoot must be a directory
// and the entry document must be a regular file. Returns nil when both hold.
func (p *Paths) Verify() error {
	info, err := os.Stat(p.AssetRoot)
	if err != nil {
		return fmt.Errorf("asset root %s: %w", p.AssetRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset root %s: not a directory", p.AssetRoot)
	}

	info, err = os.Stat(p.Index)
	if err != nil {
		return fmt.Errorf("entry document %s: %w", p.Index, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("entry document %s: not a regular file", p.Index)
	}
	return nil
}

// AssetCount walks AssetRoot and counts regular files. Used by the check
// command; serving never needs this.
func (p *Paths) AssetCount() (int, error) {
	count := 0
	err := filepath.Walk(p.AssetRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
