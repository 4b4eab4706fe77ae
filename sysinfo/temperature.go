package sysinfo

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

// envstatCommand prints the NetBSD envsys(4) sensor table.
var envstatCommand = []string{"/usr/sbin/envstat"}

var envstatCPULine = regexp.MustCompile(` cpu[0-9]+ temperature: `)

// OpenBSD sysctl identifiers from <sys/sysctl.h> and <sys/sensors.h>.
const (
	ctlHW      = 6  // CTL_HW
	hwSensors  = 11 // HW_SENSORS
	sensorTemp = 0  // SENSOR_TEMP
)

// sensorTempMIB addresses the first temperature sensor of the first sensor
// device. hw.sensors has no entry in the sysctl name table, so the node is
// queried by number.
var sensorTempMIB = []int32{ctlHW, hwSensors, 0, sensorTemp, 0}

// sensorValueOffset is the offset of the value field in struct sensor,
// after a 32 byte description and a struct timeval.
const sensorValueOffset = 32 + int(unsafe.Sizeof(unix.Timeval{}))

// temperatures returns the per-core temperature lines for the platform.
// Probing stops silently when the kernel stops answering; only a failing
// envstat command is an error.
func (h *Host) temperatures(ctx context.Context, ncpu int) ([]Field, error) {
	switch h.Platform.Temperature {
	case TempSysctlPerCore:
		return h.coreTemperatures(ncpu), nil
	case TempSensors:
		return h.sensorTemperature(), nil
	case TempEnvstat:
		return h.envstatTemperatures(ctx)
	default:
		return nil, nil
	}
}

// coreTemperatures reads dev.cpu.N.temperature for each online core and
// stops at the first core the kernel does not answer for.
func (h *Host) coreTemperatures(ncpu int) []Field {
	var fields []Field
	for i := 0; i < ncpu; i++ {
		key := fmt.Sprintf("dev.cpu.%d.temperature", i)
		raw, err := h.Sysctl.Uint32(key)
		if err != nil {
			h.Log.WithError(err).WithField("core", i).Debug("Temperature probing stopped")
			break
		}
		fields = append(fields, Field{
			Label: fmt.Sprintf("Core [%d]", i+1),
			Value: FormatCelsiusFromDeciKelvin(int64(int32(raw))),
			Sub:   true,
		})
	}
	return fields
}

// sensorTemperature reads the OpenBSD CPU temperature sensor. A missing
// sensor prints nothing.
func (h *Host) sensorTemperature() []Field {
	raw, err := h.Sysctl.RawMIB(sensorTempMIB)
	if err != nil {
		h.Log.WithError(err).Debug("No temperature sensor")
		return nil
	}
	value, err := decodeSensorValue(raw)
	if err != nil {
		h.Log.WithError(err).Debug("No temperature sensor")
		return nil
	}
	return []Field{{Label: "CPU Temp", Value: FormatCelsiusFromMicroKelvin(value)}}
}

// decodeSensorValue extracts the int64 value of an OpenBSD struct sensor.
func decodeSensorValue(b []byte) (int64, error) {
	if len(b) < sensorValueOffset+8 {
		return 0, fmt.Errorf("hw.sensors: short struct sensor (%d bytes)", len(b))
	}
	return int64(binary.NativeEndian.Uint64(b[sensorValueOffset:])), nil
}

// envstatTemperatures runs envstat(8) and prints one line per CPU sensor.
// The command failing is fatal.
func (h *Host) envstatTemperatures(ctx context.Context) ([]Field, error) {
	out, err := h.Run(ctx, envstatCommand)
	if err != nil {
		return nil, err
	}

	var fields []Field
	for i, temp := range parseEnvstat(bytes.NewReader(out)) {
		fields = append(fields, Field{
			Label: fmt.Sprintf("Core [%d]", i+1),
			Value: fmt.Sprintf("%.1f °C", temp),
			Sub:   true,
		})
	}
	return fields, nil
}

// parseEnvstat returns the third column of every " cpuN temperature: " line,
// stopping at the first value that is not a number.
func parseEnvstat(r io.Reader) []float64 {
	var temps []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !envstatCPULine.MatchString(line) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			break
		}
		temp, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			break
		}
		temps = append(temps, temp)
	}
	return temps
}
