//go:build !windows

package clip

import "syscall"

// detachAttr puts the hold child in its own session so it survives the
// parent's exit and terminal hangup.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
