//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package sysinfo

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// systemSysctl queries the running kernel.
type systemSysctl struct{}

// String implements Sysctl.
func (systemSysctl) String(name string) (string, error) {
	v, err := unix.Sysctl(name)
	if err != nil {
		return "", fmt.Errorf("sysctl %s: %w", name, err)
	}
	return v, nil
}

// Uint32 implements Sysctl.
func (systemSysctl) Uint32(name string) (uint32, error) {
	v, err := unix.SysctlUint32(name)
	if err != nil {
		return 0, fmt.Errorf("sysctl %s: %w", name, err)
	}
	return v, nil
}

// Time implements Sysctl.
func (systemSysctl) Time(name string) (time.Time, error) {
	tv, err := unix.SysctlTimeval(name)
	if err != nil {
		return time.Time{}, fmt.Errorf("sysctl %s: %w", name, err)
	}
	return time.Unix(tv.Unix()), nil
}

// Raw implements Sysctl.
func (systemSysctl) Raw(name string, args ...int) ([]byte, error) {
	b, err := unix.SysctlRaw(name, args...)
	if err != nil {
		return nil, fmt.Errorf("sysctl %s%v: %w", name, args, err)
	}
	return b, nil
}
