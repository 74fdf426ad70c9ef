//go:build !windows

package installer

import (
	"fmt"
	"path/filepath"

	"github.com/AndreaPallotta/gitex/internal/system"
)

const (
	// DestDir is the install directory on Unix-like systems
	DestDir = "/usr/bin"

	// DestName is the installed binary name. The source keeps the .exe
	// suffix from the build pipeline; the installed command does not.
	DestName = "gitex"

	installMode = 0755
)

// Run installs the gitex binary to /usr/bin and marks it executable for
// owner, group, and other. The source check happens before any filesystem
// mutation; copy and permission failures propagate the underlying OS error.
func (i *Installer) Run() error {
	i.ui.Header("Installing gitex")

	i.ui.Step("Checking source binary")
	if err := i.checkSource(); err != nil {
		return err
	}
	i.ui.Successf("  ✓ Found %s", i.opts.Source)

	if !system.IsElevated() {
		i.ui.Warningf("Not running as root; writing to %s may fail", i.destDir())
	}

	dest := filepath.Join(i.destDir(), DestName)

	i.ui.Step("Copying binary")
	i.ui.Infof("Copying %s to %s", i.opts.Source, dest)
	if err := i.fs.CopyFile(i.opts.Source, dest, installMode); err != nil {
		return err
	}
	if err := i.fs.EnsureExecutable(dest); err != nil {
		return err
	}

	i.ui.Step("Verifying installation")
	if err := i.verify(dest); err != nil {
		return fmt.Errorf("installation verification failed: %w", err)
	}
	executable, err := i.fs.IsExecutable(dest)
	if err != nil {
		return err
	}
	if !executable {
		return fmt.Errorf("%s is not executable", dest)
	}
	i.ui.Successf("  ✓ %s is executable", dest)

	i.recordInstall(dest)

	i.ui.Print("")
	i.ui.Separator()
	i.ui.Successf("gitex installed to %s", dest)
	return nil
}

func (i *Installer) destDir() string {
	if i.opts.DestDir != "" {
		return i.opts.DestDir
	}
	return DestDir
}
