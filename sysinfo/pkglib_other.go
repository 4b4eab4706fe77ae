//go:build !freebsd || !cgo

package sysinfo

const libpkgSupported = false

func openLibpkg(string) (PackageLibrary, error) {
	return nil, ErrLibraryUnavailable
}
