//go:build windows

package installer

import (
	"fmt"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/AndreaPallotta/gitex/internal/system"
)

const (
	// DestDir is the fixed install directory on Windows
	DestDir = `C:\GitEx`

	// DestName is the installed binary name
	DestName = "gitex.exe"

	installMode = 0755

	// Machine-wide environment variables live under this key
	environmentKey = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`

	hwndBroadcast   = 0xffff
	wmSettingChange = 0x001a
	smtoAbortIfHung = 0x0002
)

// Run installs the gitex binary to C:\GitEx and appends that directory to
// the machine-wide PATH if it is not already present. A non-elevated
// invocation relaunches itself through UAC and exits cleanly; the work
// happens only in the elevated process.
func (i *Installer) Run() error {
	if !system.IsElevated() {
		i.ui.Info("Administrator rights are required to install gitex")
		i.ui.Info("Requesting elevation...")
		if err := system.RelaunchElevated(); err != nil {
			return err
		}
		i.ui.Info("Installation continues in the elevated window")
		return nil
	}

	i.ui.Header("Installing gitex")

	i.ui.Step("Checking source binary")
	if err := i.checkSource(); err != nil {
		return err
	}
	i.ui.Successf("  ✓ Found %s", i.opts.Source)

	destDir := i.destDir()
	dest := filepath.Join(destDir, DestName)

	i.ui.Step("Preparing install directory")
	if err := i.fs.EnsureDirectory(destDir, installMode); err != nil {
		return err
	}
	i.ui.Successf("  ✓ %s", destDir)

	i.ui.Step("Copying binary")
	i.ui.Infof("Copying %s to %s", i.opts.Source, dest)
	if err := i.fs.CopyFile(i.opts.Source, dest, installMode); err != nil {
		return err
	}

	i.ui.Step("Updating machine PATH")
	added, err := i.addToMachinePath(destDir)
	if err != nil {
		return fmt.Errorf("failed to update machine PATH: %w", err)
	}
	if added {
		i.ui.Successf("  ✓ Added %s to the machine PATH", destDir)
	} else {
		i.ui.Infof("%s is already on the machine PATH", destDir)
	}

	i.ui.Step("Verifying installation")
	if err := i.verify(dest); err != nil {
		return fmt.Errorf("installation verification failed: %w", err)
	}

	i.recordInstall(dest)

	i.ui.Print("")
	i.ui.Separator()
	i.ui.Successf("gitex installed to %s", dest)
	i.ui.Info("Open a new terminal for the PATH change to take effect")
	return nil
}

func (i *Installer) destDir() string {
	if i.opts.DestDir != "" {
		return i.opts.DestDir
	}
	return DestDir
}

// addToMachinePath appends dir to the machine-wide PATH registry value if
// missing. Returns true when the value was modified. Segments are compared
// case-insensitively and ignoring trailing backslashes, so the directory is
// detected in any position of the list.
func (i *Installer) addToMachinePath(dir string) (bool, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, environmentKey, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return false, fmt.Errorf("failed to open environment key: %w", err)
	}
	defer key.Close()

	current, _, err := key.GetStringValue("Path")
	if err != nil && err != registry.ErrNotExist {
		return false, fmt.Errorf("failed to read Path value: %w", err)
	}

	if ContainsDir(current, dir, ';', true) {
		return false, nil
	}

	updated := AppendDir(current, dir, ';', true)
	// REG_EXPAND_SZ keeps %VAR% references in other segments working
	if err := key.SetExpandStringValue("Path", updated); err != nil {
		return false, fmt.Errorf("failed to write Path value: %w", err)
	}

	broadcastEnvironmentChange()
	return true, nil
}

// broadcastEnvironmentChange tells running applications to reload their
// environment. Best effort; a timeout here does not fail the install.
func broadcastEnvironmentChange() {
	user32 := windows.NewLazySystemDLL("user32.dll")
	sendMessageTimeout := user32.NewProc("SendMessageTimeoutW")

	param, err := windows.UTF16PtrFromString("Environment")
	if err != nil {
		return
	}

	var result uintptr
	sendMessageTimeout.Call(
		uintptr(hwndBroadcast),
		uintptr(wmSettingChange),
		0,
		uintptr(unsafe.Pointer(param)),
		uintptr(smtoAbortIfHung),
		uintptr(5000),
		uintptr(unsafe.Pointer(&result)),
	)
}
