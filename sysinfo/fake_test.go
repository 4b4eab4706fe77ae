package sysinfo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"
)

// fakeSysctl answers from fixed maps and fails with ENOENT otherwise.
type fakeSysctl struct {
	strings map[string]string
	uints   map[string]uint32
	times   map[string]time.Time
	raw     map[string][]byte
	mibs    map[string][]byte

	// requested records every numeric MIB asked for.
	requested *[][]int32
}

func (f fakeSysctl) String(name string) (string, error) {
	if v, ok := f.strings[name]; ok {
		return v, nil
	}
	return "", fmt.Errorf("sysctl %s: %w", name, unix.ENOENT)
}

func (f fakeSysctl) Uint32(name string) (uint32, error) {
	if v, ok := f.uints[name]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("sysctl %s: %w", name, unix.ENOENT)
}

func (f fakeSysctl) Time(name string) (time.Time, error) {
	if v, ok := f.times[name]; ok {
		return v, nil
	}
	return time.Time{}, fmt.Errorf("sysctl %s: %w", name, unix.ENOENT)
}

func (f fakeSysctl) Raw(name string, args ...int) ([]byte, error) {
	key := fmt.Sprint(name, args)
	if v, ok := f.raw[key]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("sysctl %s: %w", key, unix.ENOENT)
}

func (f fakeSysctl) RawMIB(mib []int32) ([]byte, error) {
	if f.requested != nil {
		*f.requested = append(*f.requested, append([]int32(nil), mib...))
	}
	key := fmt.Sprint(mib)
	if v, ok := f.mibs[key]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("sysctl %s: %w", key, unix.ENOENT)
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestHost returns a FreeBSD host with every dependency answering.
func newTestHost() *Host {
	platform, _ := LookupPlatform("FreeBSD")
	return &Host{
		Platform: platform,
		Sysctl: fakeSysctl{
			strings: map[string]string{
				"hw.model": "Intel(R) Xeon(R)  CPU E5-2620\tv4 @ 2.10GHz",
			},
			uints: map[string]uint32{
				"dev.cpu.0.temperature": 3000,
				"dev.cpu.1.temperature": 3100,
			},
			times: map[string]time.Time{
				"kern.boottime": testNow.Add(-90061 * time.Second),
			},
		},
		Sysconf: func(name int) (int64, error) {
			switch name {
			case sysconf.SC_PAGESIZE:
				return 4096, nil
			case sysconf.SC_PHYS_PAGES:
				return 1000000, nil
			case sysconf.SC_NPROCESSORS_ONLN, sysconf.SC_NPROCESSORS_CONF:
				return 2, nil
			}
			return 0, fmt.Errorf("sysconf(%d): %w", name, unix.EINVAL)
		},
		Uname: func() (Uname, error) {
			return Uname{
				Sysname: "FreeBSD",
				Release: "14.0-RELEASE",
				Version: "FreeBSD 14.0-RELEASE #0 releng/14.0-n265380: Fri Nov 10 08:25:34 UTC 2023",
				Machine: "amd64",
			}, nil
		},
		Hostname: func() (string, error) { return "beastie", nil },
		Getenv: func(key string) string {
			return map[string]string{"SHELL": "/usr/local/bin/zsh", "USER": "alice"}[key]
		},
		Passwd: func() (PasswdEntry, error) {
			return PasswdEntry{Name: "root", Shell: "/bin/csh"}, nil
		},
		LoadAvg: func(context.Context) ([3]float64, error) {
			return [3]float64{0.5, 0.25, 0.1}, nil
		},
		Now:      func() time.Time { return testNow },
		Run:      func(context.Context, []string) ([]byte, error) { return nil, unix.ENOENT },
		Packages: NoPackageDB{},
		Log:      quietLogger(),
	}
}
