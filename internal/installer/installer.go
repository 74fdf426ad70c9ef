// Package installer places the prebuilt gitex binary onto the machine. The
// destination and PATH handling are platform-specific; the source layout
// (./dist next to the invocation directory) is shared.
package installer

import (
	"fmt"
	"path/filepath"

	"github.com/AndreaPallotta/gitex/internal/config"
	"github.com/AndreaPallotta/gitex/internal/system"
	"github.com/AndreaPallotta/gitex/internal/ui"
)

// SourceName is the file name of the prebuilt binary inside the dist
// directory on every platform.
const SourceName = "gitex.exe"

// DefaultSource is the expected location of the prebuilt binary, relative
// to the invocation directory.
const DefaultSource = "./dist/" + SourceName

// Options controls where the installer reads from and writes to. The zero
// value selects the documented defaults.
type Options struct {
	// Source is the path of the prebuilt binary. Defaults to DefaultSource.
	Source string
	// DestDir overrides the platform install directory. Used by tests.
	DestDir string
}

// Installer copies the gitex binary into place and records the install
// location in the gitex config.
type Installer struct {
	opts   Options
	fs     *system.FileSystem
	config *config.Config
	ui     *ui.UI
}

// New creates an Installer
func New(cfg *config.Config, out *ui.UI, opts Options) *Installer {
	if opts.Source == "" {
		opts.Source = DefaultSource
	}
	return &Installer{
		opts:   opts,
		fs:     system.NewFileSystem(),
		config: cfg,
		ui:     out,
	}
}

// checkSource verifies the prebuilt binary exists. The error text is the
// line users see, so it names both the binary and where it was expected.
func (i *Installer) checkSource() error {
	exists, err := i.fs.FileExists(i.opts.Source)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s not found at %s.", filepath.Base(i.opts.Source), i.opts.Source)
	}
	return nil
}

// verify checks the installed binary against the source: it must exist and
// be byte-for-byte the same size.
func (i *Installer) verify(dest string) error {
	exists, err := i.fs.FileExists(dest)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s was not created", dest)
	}

	srcSize, err := i.fs.GetFileSize(i.opts.Source)
	if err != nil {
		return err
	}
	destSize, err := i.fs.GetFileSize(dest)
	if err != nil {
		return err
	}
	if srcSize != destSize {
		return fmt.Errorf("size mismatch after copy: source %d bytes, destination %d bytes", srcSize, destSize)
	}

	i.ui.Successf("  ✓ %s exists (%d bytes)", dest, destSize)
	return nil
}

// recordInstall saves the install location so other commands can report it
func (i *Installer) recordInstall(dest string) {
	if err := i.config.Set(config.KeyInstallPath, dest); err != nil {
		i.ui.Warningf("Failed to record install path: %v", err)
	}
}
