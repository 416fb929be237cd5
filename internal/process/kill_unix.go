//go:build !windows

// Package process terminates browser process trees left behind by the launcher.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid so Chrome's
// renderer and GPU children die with it.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Best-effort: the group is usually gone already after launcher.Kill().
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
