package sysinfo

import (
	"context"
	"fmt"
	"strings"
)

// collectSystem prints the OS name, release, version and architecture from
// a single uname call.
func (h *Host) collectSystem(_ context.Context) ([]Field, error) {
	un, err := h.Uname()
	if err != nil {
		return nil, err
	}

	// NetBSD appends the build path and date after a colon.
	version, _, _ := strings.Cut(un.Version, ":")

	return []Field{
		{Label: "OS", Value: un.Sysname},
		{Label: "Release", Value: un.Release},
		{Label: "Version", Value: version},
		{Label: "Arch", Value: un.Machine},
	}, nil
}

// collectHostname prints the name the host reports through gethostname(3).
func (h *Host) collectHostname(_ context.Context) ([]Field, error) {
	name, err := h.Hostname()
	if err != nil {
		return nil, fmt.Errorf("gethostname: %w", err)
	}
	return []Field{{Label: "Host", Value: name}}, nil
}

// collectShell prefers $SHELL and falls back to the login shell in the
// passwd database. Only the program name is shown.
func (h *Host) collectShell(_ context.Context) ([]Field, error) {
	sh := h.Getenv("SHELL")
	if sh == "" {
		pw, err := h.Passwd()
		if err != nil {
			return nil, err
		}
		sh = pw.Shell
	}
	return []Field{{Label: "Shell", Value: shellName(sh)}}, nil
}

// collectUser prefers $USER and falls back to the login name in the passwd
// database.
func (h *Host) collectUser(_ context.Context) ([]Field, error) {
	user := h.Getenv("USER")
	if user == "" {
		pw, err := h.Passwd()
		if err != nil {
			return nil, err
		}
		user = pw.Name
	}
	return []Field{{Label: "User", Value: user}}, nil
}

// shellName strips the directory from a shell path. A path ending in "/" is
// returned unchanged.
func shellName(sh string) string {
	if i := strings.LastIndexByte(sh, '/'); i >= 0 && i+1 < len(sh) {
		return sh[i+1:]
	}
	return sh
}
