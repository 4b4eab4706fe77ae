package sysinfo

import (
	"fmt"

	"github.com/tklauser/go-sysconf"
)

var sysconfNames = map[int]string{
	sysconf.SC_PAGESIZE:         "_SC_PAGESIZE",
	sysconf.SC_PHYS_PAGES:       "_SC_PHYS_PAGES",
	sysconf.SC_NPROCESSORS_ONLN: "_SC_NPROCESSORS_ONLN",
	sysconf.SC_NPROCESSORS_CONF: "_SC_NPROCESSORS_CONF",
}

// systemSysconf queries sysconf(3). A value of -1 means the limit is not
// available and is reported as an error.
func systemSysconf(name int) (int64, error) {
	v, err := sysconf.Sysconf(name)
	if err != nil {
		return 0, fmt.Errorf("sysconf(%s): %w", sysconfName(name), err)
	}
	if v == -1 {
		return 0, fmt.Errorf("sysconf(%s): not available", sysconfName(name))
	}
	return v, nil
}

// sysconfName returns the C name of a sysconf variable for error messages.
func sysconfName(name int) string {
	if s, ok := sysconfNames[name]; ok {
		return s
	}
	return fmt.Sprintf("%d", name)
}
