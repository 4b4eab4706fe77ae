package sysinfo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
)

// ErrLibraryUnavailable is returned by a LibraryOpener when the binary was
// built without support for loading the packaging library.
var ErrLibraryUnavailable = errors.New("package library loading not supported")

// PackageCounter reports the number of installed packages.
type PackageCounter interface {
	CountPackages(ctx context.Context) (int, error)
}

// PackageLibrary is a loaded packaging shared library with all of its
// required symbols resolved.
type PackageLibrary interface {
	Init() error
	Shutdown()
	OpenDB() (PackageDB, error)

	// Unload unmaps the library. No other method may be called afterwards.
	Unload() error
}

// PackageDB is an open package database handle.
type PackageDB interface {
	// CountAll runs an unfiltered query and counts the matches.
	CountAll() (int, error)
	Close()
}

// LibraryOpener loads the packaging library at path and resolves its
// symbols. On error nothing stays loaded.
type LibraryOpener func(path string) (PackageLibrary, error)

// LibraryCounter counts packages through the native package database. It
// never fails: any problem along the way is logged and reported as zero
// packages.
type LibraryCounter struct {
	// BaseDir returns the installation prefix the library lives under.
	BaseDir func() (string, error)
	SubPath string
	Open    LibraryOpener
	Log     logrus.FieldLogger
}

// CountPackages implements PackageCounter.
func (c *LibraryCounter) CountPackages(_ context.Context) (int, error) {
	n, err := c.count()
	if err != nil {
		c.Log.WithError(err).Debug("Package database unavailable, reporting 0 packages")
		return 0, nil
	}
	return n, nil
}

func (c *LibraryCounter) count() (n int, err error) {
	base, err := c.BaseDir()
	if err != nil {
		return 0, err
	}

	lib, err := c.Open(base + c.SubPath)
	if err != nil {
		return 0, err
	}
	defer func() {
		if uerr := lib.Unload(); uerr != nil && err == nil {
			n, err = 0, uerr
		}
	}()

	if err := lib.Init(); err != nil {
		return 0, err
	}
	defer lib.Shutdown()

	db, err := lib.OpenDB()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	n, err = db.CountAll()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("package query returned count %d", n)
	}
	return n, nil
}

// CommandCounter counts the newline-terminated lines printed by a package
// listing command.
type CommandCounter struct {
	Argv []string
	Run  Runner
}

// CountPackages implements PackageCounter.
func (c CommandCounter) CountPackages(ctx context.Context) (int, error) {
	out, err := c.Run(ctx, c.Argv)
	if err != nil {
		return 0, err
	}
	return bytes.Count(out, []byte{'\n'}), nil
}

// NoPackageDB is used where no package database exists. It reports zero
// packages.
type NoPackageDB struct{}

// CountPackages implements PackageCounter.
func (NoPackageDB) CountPackages(context.Context) (int, error) {
	return 0, nil
}

// newPackageCounter picks the native package database when the platform has
// one and this binary can load it, and the listing command otherwise.
func newPackageCounter(p Platform, sysctl Sysctl, run Runner, log logrus.FieldLogger) PackageCounter {
	if p.PackageLibrary != "" && libpkgSupported {
		return &LibraryCounter{
			BaseDir: func() (string, error) { return sysctl.String(p.LocalBaseKey) },
			SubPath: p.PackageLibrary,
			Open:    openLibpkg,
			Log:     log,
		}
	}
	if len(p.PackageCommand) == 0 {
		return NoPackageDB{}
	}
	return CommandCounter{Argv: p.PackageCommand, Run: run}
}

// collectPackages prints the installed package count.
func (h *Host) collectPackages(ctx context.Context) ([]Field, error) {
	n, err := h.Packages.CountPackages(ctx)
	if err != nil {
		return nil, err
	}
	return []Field{{Label: "Packages", Value: strconv.Itoa(n)}}, nil
}
