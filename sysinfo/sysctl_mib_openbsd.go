//go:build openbsd && cgo

package sysinfo

/*
#include <sys/types.h>
#include <sys/sysctl.h>
*/
import "C"

import (
	"errors"
	"unsafe"
)

// sysctlMIB calls sysctl(3) with a numeric MIB, sizing the buffer with a
// first call that passes no destination.
func sysctlMIB(mib []int32) ([]byte, error) {
	if len(mib) == 0 {
		return nil, errors.New("empty MIB")
	}
	name := (*C.int)(unsafe.Pointer(&mib[0]))
	namelen := C.u_int(len(mib))

	var size C.size_t
	if rc, err := C.sysctl(name, namelen, nil, &size, nil, 0); rc == -1 {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}

	buf := make([]byte, size)
	if rc, err := C.sysctl(name, namelen, unsafe.Pointer(&buf[0]), &size, nil, 0); rc == -1 {
		return nil, err
	}
	return buf[:size], nil
}
