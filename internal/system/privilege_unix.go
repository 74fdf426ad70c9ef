//go:build !windows

package system

import (
	"fmt"
	"os"
)

// IsElevated reports whether the process is running as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}

// RelaunchElevated is a Windows-only operation. On Unix the user is expected
// to rerun under sudo, so this always fails.
func RelaunchElevated() error {
	return fmt.Errorf("automatic elevation is not supported on this platform; rerun with sudo")
}
