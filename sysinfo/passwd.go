package sysinfo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// passwdFile is the world-readable v7 passwd database present on every BSD.
const passwdFile = "/etc/passwd"

// ErrNoPasswdEntry is returned when the passwd database has no entry for a
// uid.
var ErrNoPasswdEntry = errors.New("no passwd entry")

// PasswdEntry is the part of a passwd(5) entry the collectors use.
type PasswdEntry struct {
	Name  string
	UID   int
	Home  string
	Shell string
}

// currentPasswdEntry looks up the real uid of the process in /etc/passwd.
func currentPasswdEntry() (PasswdEntry, error) {
	uid := unix.Getuid()
	f, err := os.Open(passwdFile)
	if err != nil {
		return PasswdEntry{}, fmt.Errorf("getpwuid(%d): %w", uid, err)
	}
	defer func() { _ = f.Close() }()

	e, err := lookupPasswd(f, uid)
	if err != nil {
		return PasswdEntry{}, fmt.Errorf("getpwuid(%d): %w", uid, err)
	}
	return e, nil
}

// lookupPasswd scans passwd(5) lines from r for uid. Comments, blank lines
// and NIS "+"/"-" entries are skipped.
func lookupPasswd(r io.Reader, uid int) (PasswdEntry, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == '#' || line[0] == '+' || line[0] == '-' {
			continue
		}

		parts := strings.Split(line, ":")
		if len(parts) != 7 {
			continue
		}
		id, err := strconv.Atoi(parts[2])
		if err != nil || id != uid {
			continue
		}
		return PasswdEntry{
			Name:  parts[0],
			UID:   id,
			Home:  parts[5],
			Shell: parts[6],
		}, nil
	}
	if err := scanner.Err(); err != nil {
		return PasswdEntry{}, err
	}
	return PasswdEntry{}, ErrNoPasswdEntry
}
