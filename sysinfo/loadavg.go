package sysinfo

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/shirou/gopsutil/v3/load"
)

// loadAverages asks gopsutil first. Some BSDs are not served by gopsutil, so
// the kernel's vm.loadavg is decoded directly when it fails.
func (h *Host) loadAverages(ctx context.Context) ([3]float64, error) {
	avg, err := load.AvgWithContext(ctx)
	if err == nil {
		return [3]float64{avg.Load1, avg.Load5, avg.Load15}, nil
	}
	h.Log.WithError(err).Debug("gopsutil load average unavailable, reading vm.loadavg")

	raw, rerr := h.Sysctl.Raw("vm.loadavg")
	if rerr != nil {
		return [3]float64{}, fmt.Errorf("getloadavg: %w", rerr)
	}
	return decodeLoadAvg(raw)
}

// decodeLoadAvg decodes a struct loadavg: three fixpt_t (uint32) averages
// followed by a long scale factor, padded to 8 bytes on 64-bit systems.
func decodeLoadAvg(b []byte) ([3]float64, error) {
	var scale uint64
	switch len(b) {
	case 24:
		scale = binary.NativeEndian.Uint64(b[16:])
	case 16:
		scale = uint64(binary.NativeEndian.Uint32(b[12:]))
	default:
		return [3]float64{}, fmt.Errorf("getloadavg: unexpected struct loadavg size %d", len(b))
	}
	if scale == 0 {
		return [3]float64{}, fmt.Errorf("getloadavg: zero scale factor")
	}

	var avg [3]float64
	for i := range avg {
		avg[i] = float64(binary.NativeEndian.Uint32(b[i*4:])) / float64(scale)
	}
	return avg, nil
}
