package sysinfo

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"
)

func TestRenderFixedOrder(t *testing.T) {
	h := newTestHost()
	var buf bytes.Buffer

	require.NoError(t, Render(context.Background(), NewPrinter(&buf, false), h.Collectors()))

	want := "OS: FreeBSD\n" +
		"Release: 14.0-RELEASE\n" +
		"Version: FreeBSD 14.0-RELEASE #0 releng/14.0-n265380\n" +
		"Arch: amd64\n" +
		"Host: beastie\n" +
		"Shell: zsh\n" +
		"User: alice\n" +
		"Packages: 0\n" +
		"Uptime: 1d 1h 1m\n" +
		"RAM: 3906 MB\n" +
		"Loadavg: 0.50 0.25 0.10\n" +
		"CPU: Intel(R) Xeon(R) CPU E5-2620 v4 @ 2.10GHz\n" +
		"Cores: 2 of 2 processors online\n" +
		" -> Core [1]: 26.9 °C\n" +
		" -> Core [2]: 36.9 °C\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderKeepsOutputBeforeFailure(t *testing.T) {
	h := newTestHost()
	h.Sysctl = fakeSysctl{}
	var buf bytes.Buffer

	err := Render(context.Background(), NewPrinter(&buf, false), h.Collectors())

	require.Error(t, err)
	assert.ErrorIs(t, err, unix.ENOENT)
	assert.Contains(t, err.Error(), "kern.boottime")
	assert.Contains(t, buf.String(), "Packages: 0\n")
	assert.NotContains(t, buf.String(), "Uptime")
	assert.NotContains(t, buf.String(), "RAM")
}

func TestRenderPrintsFieldsReturnedWithError(t *testing.T) {
	collectors := []Collector{
		{Name: "partial", Collect: func(context.Context) ([]Field, error) {
			return []Field{{Label: "CPU", Value: "x"}}, errors.New("envstat failed")
		}},
		{Name: "never", Collect: func(context.Context) ([]Field, error) {
			t.Fatal("collector after failure ran")
			return nil, nil
		}},
	}
	var buf bytes.Buffer

	err := Render(context.Background(), NewPrinter(&buf, false), collectors)

	assert.EqualError(t, err, "envstat failed")
	assert.Equal(t, "CPU: x\n", buf.String())
}

func TestIdentityFallsBackToPasswd(t *testing.T) {
	h := newTestHost()
	h.Getenv = func(string) string { return "" }

	shell, err := h.collectShell(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Field{{Label: "Shell", Value: "csh"}}, shell)

	user, err := h.collectUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Field{{Label: "User", Value: "root"}}, user)
}

func TestIdentityPasswdFailure(t *testing.T) {
	h := newTestHost()
	h.Getenv = func(string) string { return "" }
	h.Passwd = func() (PasswdEntry, error) { return PasswdEntry{}, ErrNoPasswdEntry }

	_, err := h.collectUser(context.Background())
	assert.ErrorIs(t, err, ErrNoPasswdEntry)
}

func TestShellName(t *testing.T) {
	assert.Equal(t, "sh", shellName("/bin/sh"))
	assert.Equal(t, "fish", shellName("fish"))
	assert.Equal(t, "/usr/bin/", shellName("/usr/bin/"))
}

func TestCPUModelFallback(t *testing.T) {
	h := newTestHost()
	h.Sysctl = fakeSysctl{strings: map[string]string{
		"machdep.cpu_brand": "AMD EPYC 7702",
		"hw.model":          "ignored",
	}}

	model, err := h.cpuModel()
	require.NoError(t, err)
	assert.Equal(t, "AMD EPYC 7702", model)

	h.Sysctl = fakeSysctl{}
	_, err = h.cpuModel()
	assert.ErrorIs(t, err, unix.ENOENT)
}

func TestCoreTemperaturesStopAtFirstFailure(t *testing.T) {
	h := newTestHost()
	h.Sysconf = func(name int) (int64, error) { return 4, nil }
	h.Sysctl = fakeSysctl{
		strings: map[string]string{"hw.model": "cpu"},
		uints: map[string]uint32{
			"dev.cpu.0.temperature": 3000,
			"dev.cpu.2.temperature": 3000,
		},
	}

	fields, err := h.collectCPU(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Field{
		{Label: "CPU", Value: "cpu"},
		{Label: "Cores", Value: "4 of 4 processors online"},
		{Label: "Core [1]", Value: "26.9 °C", Sub: true},
	}, fields)
}

func TestCollectMemoryFailure(t *testing.T) {
	h := newTestHost()
	h.Sysconf = func(name int) (int64, error) {
		if name == sysconf.SC_PHYS_PAGES {
			return 0, unix.EINVAL
		}
		return 4096, nil
	}

	_, err := h.collectMemory(context.Background())
	assert.ErrorIs(t, err, unix.EINVAL)
}

func TestLookupPlatform(t *testing.T) {
	for _, name := range []string{"FreeBSD", "MidnightBSD", "DragonFly", "OpenBSD", "NetBSD"} {
		p, ok := LookupPlatform(name)
		require.True(t, ok, name)
		assert.Equal(t, name, p.Name)
		assert.NotEmpty(t, p.PackageCommand, name)
		assert.NotEmpty(t, p.CPUModelKeys, name)
	}

	_, ok := LookupPlatform("Linux")
	assert.False(t, ok)

	p, _ := LookupPlatform("MidnightBSD")
	assert.Equal(t, []string{"/usr/sbin/mport", "list"}, p.PackageCommand)
}
