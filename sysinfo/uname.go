package sysinfo

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Uname holds the fields of uname(3) the collectors print.
type Uname struct {
	Sysname string
	Release string
	Version string
	Machine string
}

// systemUname calls uname(3) once.
func systemUname() (Uname, error) {
	var un unix.Utsname
	if err := unix.Uname(&un); err != nil {
		return Uname{}, fmt.Errorf("uname: %w", err)
	}
	return Uname{
		Sysname: unix.ByteSliceToString(un.Sysname[:]),
		Release: unix.ByteSliceToString(un.Release[:]),
		Version: unix.ByteSliceToString(un.Version[:]),
		Machine: unix.ByteSliceToString(un.Machine[:]),
	}, nil
}
