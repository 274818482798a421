//go:build unix

package run

import (
	"os/exec"
	"syscall"
)

// The emulator runs in its own process group, to stop helper processes it
// might have spawned together with it.
func processGroupEnable(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func processGroupKill(cmd *exec.Cmd) error {
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGINT)
}
