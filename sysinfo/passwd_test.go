package sysinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passwdFixture = `# $FreeBSD$
#
root:*:0:0:Charlie &:/root:/bin/csh
+nisuser::::::
daemon:*:1:1:Owner of many system processes:/root:/usr/sbin/nologin
broken:line
alice:*:1001:1001:Alice:/home/alice:/usr/local/bin/fish
`

func TestLookupPasswd(t *testing.T) {
	e, err := lookupPasswd(strings.NewReader(passwdFixture), 1001)
	require.NoError(t, err)
	assert.Equal(t, PasswdEntry{Name: "alice", UID: 1001, Home: "/home/alice", Shell: "/usr/local/bin/fish"}, e)

	e, err = lookupPasswd(strings.NewReader(passwdFixture), 0)
	require.NoError(t, err)
	assert.Equal(t, "root", e.Name)
	assert.Equal(t, "/bin/csh", e.Shell)
}

func TestLookupPasswdMissing(t *testing.T) {
	_, err := lookupPasswd(strings.NewReader(passwdFixture), 4242)
	assert.ErrorIs(t, err, ErrNoPasswdEntry)
}
