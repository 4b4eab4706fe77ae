// Package sysinfo provides BSD system information retrieval capabilities.
// It defines the collectors that query the kernel, the environment and the
// package manager, and the pipeline that prints their results in a fixed
// order.
package sysinfo

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// ANSI color codes for terminal output formatting
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorGreen = "\033[32m"
)

// ErrUnsupportedPlatform is returned when uname reports an operating system
// that has no entry in the platform table.
var ErrUnsupportedPlatform = errors.New("unsupported BSD variant")

// Field is one labeled output line.
type Field struct {
	// Label is printed before the colon, colorized when color is enabled.
	Label string

	// Value is the pre-formatted value.
	Value string

	// Sub marks a per-core line printed with an arrow prefix.
	Sub bool
}

// Collector produces one or more fields from a single OS query (or a small
// fixed sequence of queries).
type Collector struct {
	Name    string
	Collect func(ctx context.Context) ([]Field, error)
}

// Host gathers every OS facility the collectors depend on. The zero value is
// not usable; call NewHost for the real system or fill every field in tests.
type Host struct {
	Platform Platform

	Sysctl   Sysctl
	Sysconf  func(name int) (int64, error)
	Uname    func() (Uname, error)
	Hostname func() (string, error)
	Getenv   func(key string) string
	Passwd   func() (PasswdEntry, error)
	LoadAvg  func(ctx context.Context) ([3]float64, error)
	Now      func() time.Time
	Run      Runner
	Packages PackageCounter

	Log logrus.FieldLogger
}

// NewHost wires the collectors to the running system. It fails when the
// operating system is not one of the supported BSD variants.
func NewHost(log logrus.FieldLogger) (*Host, error) {
	un, err := systemUname()
	if err != nil {
		return nil, err
	}

	platform, ok := LookupPlatform(un.Sysname)
	if !ok {
		return nil, ErrUnsupportedPlatform
	}

	h := &Host{
		Platform: platform,
		Sysctl:   systemSysctl{},
		Sysconf:  systemSysconf,
		Uname:    func() (Uname, error) { return un, nil },
		Hostname: os.Hostname,
		Getenv:   os.Getenv,
		Passwd:   currentPasswdEntry,
		Now:      time.Now,
		Run:      runCommand,
		Log:      log,
	}
	h.LoadAvg = h.loadAverages
	h.Packages = newPackageCounter(platform, h.Sysctl, h.Run, log)

	log.WithField("platform", platform.Name).Debug("Host initialized")
	return h, nil
}

// Collectors returns the collectors in display order.
func (h *Host) Collectors() []Collector {
	return []Collector{
		{Name: "system", Collect: h.collectSystem},
		{Name: "hostname", Collect: h.collectHostname},
		{Name: "shell", Collect: h.collectShell},
		{Name: "user", Collect: h.collectUser},
		{Name: "packages", Collect: h.collectPackages},
		{Name: "uptime", Collect: h.collectUptime},
		{Name: "memory", Collect: h.collectMemory},
		{Name: "loadavg", Collect: h.collectLoadAvg},
		{Name: "cpu", Collect: h.collectCPU},
	}
}

// Render runs the collectors one after another and prints their fields as
// soon as each one returns. Fields returned together with an error are still
// printed; rendering then stops and the error is returned, so everything
// printed before a failure stays on screen.
func Render(ctx context.Context, p *Printer, collectors []Collector) error {
	for _, c := range collectors {
		fields, err := c.Collect(ctx)
		for _, f := range fields {
			if perr := p.Print(f); perr != nil {
				return perr
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
