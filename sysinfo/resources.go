package sysinfo

import (
	"context"
	"fmt"

	"github.com/tklauser/go-sysconf"
)

// collectUptime prints the time elapsed since kern.boottime.
func (h *Host) collectUptime(_ context.Context) ([]Field, error) {
	boot, err := h.Sysctl.Time("kern.boottime")
	if err != nil {
		return nil, fmt.Errorf("failed to get kern.boottime: %w", err)
	}
	return []Field{{Label: "Uptime", Value: FormatUptime(h.Now().Sub(boot))}}, nil
}

// collectMemory prints physical memory as page size times page count.
func (h *Host) collectMemory(_ context.Context) ([]Field, error) {
	pagesize, err := h.Sysconf(sysconf.SC_PAGESIZE)
	if err != nil {
		return nil, fmt.Errorf("error getting system page-size: %w", err)
	}
	pages, err := h.Sysconf(sysconf.SC_PHYS_PAGES)
	if err != nil {
		return nil, fmt.Errorf("error getting no. of system pages: %w", err)
	}
	return []Field{{Label: "RAM", Value: FormatMemory(pagesize, pages)}}, nil
}

// collectLoadAvg prints the 1, 5 and 15 minute load averages.
func (h *Host) collectLoadAvg(ctx context.Context) ([]Field, error) {
	avg, err := h.LoadAvg(ctx)
	if err != nil {
		return nil, err
	}
	return []Field{{Label: "Loadavg", Value: fmt.Sprintf("%.2f %.2f %.2f", avg[0], avg[1], avg[2])}}, nil
}

// collectCPU prints the CPU model, the online core count and, where the
// platform exposes them, the core temperatures.
func (h *Host) collectCPU(ctx context.Context) ([]Field, error) {
	online, err := h.Sysconf(sysconf.SC_NPROCESSORS_ONLN)
	if err != nil {
		return nil, err
	}
	configured, err := h.Sysconf(sysconf.SC_NPROCESSORS_CONF)
	if err != nil {
		return nil, err
	}

	model, err := h.cpuModel()
	if err != nil {
		return nil, err
	}

	fields := []Field{
		{Label: "CPU", Value: Squeeze(model)},
		{Label: "Cores", Value: fmt.Sprintf("%d of %d processors online", online, configured)},
	}

	temps, err := h.temperatures(ctx, int(online))
	return append(fields, temps...), err
}

// cpuModel returns the first CPU model string the platform's MIBs answer.
func (h *Host) cpuModel() (string, error) {
	var lastErr error
	for _, key := range h.Platform.CPUModelKeys {
		model, err := h.Sysctl.String(key)
		if err == nil {
			return model, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		return "", fmt.Errorf("error getting CPU info: no CPU model keys for %s", h.Platform.Name)
	}
	return "", fmt.Errorf("error getting CPU info: %w", lastErr)
}
