package sysinfo

// TemperatureProbe selects how per-CPU temperatures are read.
type TemperatureProbe int

const (
	// TempNone prints no temperature lines.
	TempNone TemperatureProbe = iota
	// TempSysctlPerCore reads dev.cpu.N.temperature, one line per core.
	TempSysctlPerCore
	// TempSensors reads the first temperature sensor of hw.sensors.
	TempSensors
	// TempEnvstat parses the output of envstat(8).
	TempEnvstat
)

// Platform is the static per-OS lookup table consulted by the collectors.
type Platform struct {
	// Name is the uname sysname the entry is keyed by.
	Name string

	// CPUModelKeys are sysctl names tried in order for the CPU model.
	CPUModelKeys []string

	Temperature TemperatureProbe

	// PackageCommand lists installed packages, one per line.
	PackageCommand []string

	// PackageLibrary is the packaging shared library, relative to the
	// directory reported by LocalBaseKey. Empty when the platform has none.
	PackageLibrary string
	LocalBaseKey   string
}

var cpuModelKeys = []string{"machdep.cpu_brand", "hw.model"}

var platforms = map[string]Platform{
	"FreeBSD": {
		Name:           "FreeBSD",
		CPUModelKeys:   cpuModelKeys,
		Temperature:    TempSysctlPerCore,
		PackageCommand: []string{"/usr/sbin/pkg", "info"},
		PackageLibrary: "/lib/libpkg.so",
		LocalBaseKey:   "user.localbase",
	},
	"MidnightBSD": {
		Name:           "MidnightBSD",
		CPUModelKeys:   cpuModelKeys,
		Temperature:    TempSysctlPerCore,
		PackageCommand: []string{"/usr/sbin/mport", "list"},
	},
	"DragonFly": {
		Name:           "DragonFly",
		CPUModelKeys:   cpuModelKeys,
		Temperature:    TempSysctlPerCore,
		PackageCommand: []string{"/usr/sbin/pkg", "info"},
	},
	"OpenBSD": {
		Name:           "OpenBSD",
		CPUModelKeys:   cpuModelKeys,
		Temperature:    TempSensors,
		PackageCommand: []string{"/usr/sbin/pkg_info"},
	},
	"NetBSD": {
		Name:           "NetBSD",
		CPUModelKeys:   cpuModelKeys,
		Temperature:    TempEnvstat,
		PackageCommand: []string{"/usr/sbin/pkg_info"},
	},
}

// LookupPlatform returns the table entry for a uname sysname.
func LookupPlatform(sysname string) (Platform, bool) {
	p, ok := platforms[sysname]
	return p, ok
}
