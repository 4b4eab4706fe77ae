//go:build !openbsd || !cgo

package sysinfo

import "golang.org/x/sys/unix"

// sysctlMIB is only wired up where a numeric-MIB query is needed: OpenBSD
// builds with cgo.
func sysctlMIB([]int32) ([]byte, error) {
	return nil, unix.ENOSYS
}
