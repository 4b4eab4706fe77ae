package sysinfo

import (
	"fmt"
	"time"
)

// Sysctl reads kernel parameters by name.
type Sysctl interface {
	// String returns a string-valued parameter.
	String(name string) (string, error)

	// Uint32 returns a 32-bit integer parameter.
	Uint32(name string) (uint32, error)

	// Time returns a struct timeval parameter as a point in time.
	Time(name string) (time.Time, error)

	// Raw returns the raw bytes of a parameter. Extra MIB components are
	// appended to the resolved name.
	Raw(name string, args ...int) ([]byte, error)

	// RawMIB returns the raw bytes of a parameter addressed by its numeric
	// MIB, for nodes the name table does not know.
	RawMIB(mib []int32) ([]byte, error)
}

// RawMIB implements Sysctl.
func (systemSysctl) RawMIB(mib []int32) ([]byte, error) {
	b, err := sysctlMIB(mib)
	if err != nil {
		return nil, fmt.Errorf("sysctl %v: %w", mib, err)
	}
	return b, nil
}
