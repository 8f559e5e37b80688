//go:build windows

package clip

import "syscall"

const (
	createNewProcessGroup = 0x00000200
	detachedProcess       = 0x00000008
)

// detachAttr starts the hold child outside the parent's console and
// process group. The fork backend is never selected on Windows, where the
// OS clipboard already persists, but the package must still build there.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: createNewProcessGroup | detachedProcess}
}
