//go:build !(darwin || dragonfly || freebsd || netbsd || openbsd)

package sysinfo

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// systemSysctl is a stand-in on systems without sysctl(3). Every query fails
// with ENOSYS.
type systemSysctl struct{}

// String implements Sysctl.
func (systemSysctl) String(name string) (string, error) {
	return "", fmt.Errorf("sysctl %s: %w", name, unix.ENOSYS)
}

// Uint32 implements Sysctl.
func (systemSysctl) Uint32(name string) (uint32, error) {
	return 0, fmt.Errorf("sysctl %s: %w", name, unix.ENOSYS)
}

// Time implements Sysctl.
func (systemSysctl) Time(name string) (time.Time, error) {
	return time.Time{}, fmt.Errorf("sysctl %s: %w", name, unix.ENOSYS)
}

// Raw implements Sysctl.
func (systemSysctl) Raw(name string, args ...int) ([]byte, error) {
	return nil, fmt.Errorf("sysctl %s%v: %w", name, args, unix.ENOSYS)
}
