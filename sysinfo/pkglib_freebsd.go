//go:build freebsd && cgo

package sysinfo

/*
#include <dlfcn.h>
#include <stdlib.h>

struct pkgdb;
struct pkgdb_it;

typedef int (*pkg_init_fn)(const char *, const char *);
typedef void (*pkg_shutdown_fn)(void);
typedef int (*pkgdb_open_fn)(struct pkgdb **, int);
typedef void (*pkgdb_close_fn)(struct pkgdb *);
typedef struct pkgdb_it *(*pkgdb_query_fn)(struct pkgdb *, const char *, int);
typedef int (*pkgdb_it_count_fn)(struct pkgdb_it *);
typedef void (*pkgdb_it_free_fn)(struct pkgdb_it *);

static int call_pkg_init(void *f) {
	return ((pkg_init_fn)f)(NULL, NULL);
}

static void call_pkg_shutdown(void *f) {
	((pkg_shutdown_fn)f)();
}

// PKGDB_DEFAULT
static int call_pkgdb_open(void *f, void **db) {
	return ((pkgdb_open_fn)f)((struct pkgdb **)db, 0);
}

static void call_pkgdb_close(void *f, void *db) {
	((pkgdb_close_fn)f)((struct pkgdb *)db);
}

// MATCH_ALL with no pattern
static void *call_pkgdb_query(void *f, void *db) {
	return ((pkgdb_query_fn)f)((struct pkgdb *)db, NULL, 0);
}

static int call_pkgdb_it_count(void *f, void *it) {
	return ((pkgdb_it_count_fn)f)((struct pkgdb_it *)it);
}

static void call_pkgdb_it_free(void *f, void *it) {
	((pkgdb_it_free_fn)f)((struct pkgdb_it *)it);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

const libpkgSupported = true

// epkgOK is EPKG_OK from pkg.h.
const epkgOK = 0

// libpkg is libpkg.so mapped with dlopen(3).
type libpkg struct {
	path   string
	handle unsafe.Pointer

	pkgInit     unsafe.Pointer
	pkgShutdown unsafe.Pointer
	dbOpen      unsafe.Pointer
	dbClose     unsafe.Pointer
	dbQuery     unsafe.Pointer
	itCount     unsafe.Pointer
	itFree      unsafe.Pointer // optional
}

// openLibpkg maps the library at path and resolves the pkg(8) entry points.
// If any required symbol is missing the library is closed again before
// returning.
func openLibpkg(path string) (PackageLibrary, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	h := C.dlopen(cpath, C.RTLD_LAZY|C.RTLD_LOCAL)
	if h == nil {
		return nil, fmt.Errorf("dlopen %s: %s", path, dlerror())
	}

	lib := &libpkg{path: path, handle: h}
	required := []struct {
		name string
		dst  *unsafe.Pointer
	}{
		{"pkg_init", &lib.pkgInit},
		{"pkg_shutdown", &lib.pkgShutdown},
		{"pkgdb_open", &lib.dbOpen},
		{"pkgdb_close", &lib.dbClose},
		{"pkgdb_query", &lib.dbQuery},
		{"pkgdb_it_count", &lib.itCount},
	}
	for _, sym := range required {
		p, err := lib.lookup(sym.name)
		if err != nil {
			C.dlclose(h)
			return nil, err
		}
		*sym.dst = p
	}
	lib.itFree, _ = lib.lookup("pkgdb_it_free")

	return lib, nil
}

// lookup resolves one symbol in the mapped library.
func (l *libpkg) lookup(name string) (unsafe.Pointer, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	p := C.dlsym(l.handle, cname)
	if p == nil {
		return nil, fmt.Errorf("dlsym %s in %s: %s", name, l.path, dlerror())
	}
	return p, nil
}

// Init calls pkg_init with the default configuration.
func (l *libpkg) Init() error {
	if rc := C.call_pkg_init(l.pkgInit); rc != epkgOK {
		return fmt.Errorf("pkg_init: error %d", int(rc))
	}
	return nil
}

// Shutdown calls pkg_shutdown.
func (l *libpkg) Shutdown() {
	C.call_pkg_shutdown(l.pkgShutdown)
}

// OpenDB opens the local package database.
func (l *libpkg) OpenDB() (PackageDB, error) {
	var db unsafe.Pointer
	if rc := C.call_pkgdb_open(l.dbOpen, &db); rc != epkgOK || db == nil {
		return nil, fmt.Errorf("pkgdb_open: error %d", int(rc))
	}
	return &libpkgDB{lib: l, db: db}, nil
}

// Unload closes the dlopen handle.
func (l *libpkg) Unload() error {
	if C.dlclose(l.handle) != 0 {
		return fmt.Errorf("dlclose %s: %s", l.path, dlerror())
	}
	return nil
}

// libpkgDB is an open struct pkgdb.
type libpkgDB struct {
	lib *libpkg
	db  unsafe.Pointer
}

// CountAll queries every installed package and counts the iterator. The
// iterator is freed when the library exports pkgdb_it_free.
func (d *libpkgDB) CountAll() (int, error) {
	it := C.call_pkgdb_query(d.lib.dbQuery, d.db)
	if it == nil {
		return 0, errors.New("pkgdb_query: no iterator")
	}
	n := int(C.call_pkgdb_it_count(d.lib.itCount, it))
	if d.lib.itFree != nil {
		C.call_pkgdb_it_free(d.lib.itFree, it)
	}
	return n, nil
}

// Close calls pkgdb_close.
func (d *libpkgDB) Close() {
	C.call_pkgdb_close(d.lib.dbClose, d.db)
}

// dlerror returns the last dynamic linker error message.
func dlerror() string {
	if msg := C.dlerror(); msg != nil {
		return C.GoString(msg)
	}
	return "unknown error"
}
