// Package sysinfo - Formatting utilities
package sysinfo

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// maxFieldWidth is the widest line, in terminal cells, a field may produce.
const maxFieldWidth = 1024

// ErrFieldOverflow is returned when a formatted field does not fit in
// maxFieldWidth cells.
var ErrFieldOverflow = errors.New("field too wide")

// celsiusOffset is 0 °C expressed in kelvin.
const celsiusOffset = 273.15

// Printer writes labeled fields to a terminal. Color is fixed at
// construction.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Field writes "label: value" on its own line.
func (p *Printer) Field(label, value string) error {
	return p.write("", label, value)
}

// SubField writes a per-core line, prefixed with an arrow.
func (p *Printer) SubField(label, value string) error {
	arrow := " -> "
	if p.color {
		arrow = ColorGreen + arrow + ColorReset
	}
	return p.write(arrow, label, value)
}

// Print writes f as a field or a sub-field.
func (p *Printer) Print(f Field) error {
	if f.Sub {
		return p.SubField(f.Label, f.Value)
	}
	return p.Field(f.Label, f.Value)
}

func (p *Printer) write(prefix, label, value string) error {
	if w := runewidth.StringWidth(label) + runewidth.StringWidth(value) + 2; w > maxFieldWidth {
		return fmt.Errorf("%s: %w (%d cells)", label, ErrFieldOverflow, w)
	}
	if p.color {
		label = ColorRed + label + ColorReset
	}
	_, err := fmt.Fprintf(p.w, "%s%s: %s\n", prefix, label, value)
	return err
}

// FormatUptime renders d as days, hours and minutes. Seconds are dropped,
// not rounded.
//
// Example: FormatUptime(90061 * time.Second) returns "1d 1h 1m"
func FormatUptime(d time.Duration) string {
	up := int64(d / time.Second)
	days := up / 86400
	up %= 86400
	hours := up / 3600
	up %= 3600
	mins := up / 60
	return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
}

// FormatMemory renders pagesize × pages in whole mebibytes.
//
// Example: FormatMemory(4096, 1000000) returns "3906 MB"
func FormatMemory(pagesize, pages int64) string {
	return fmt.Sprintf("%d MB", uint64(pagesize*pages)/(1024*1024))
}

// FormatCelsiusFromDeciKelvin converts a sysctl temperature in tenths of a
// kelvin to degrees Celsius with one decimal.
//
// Example: FormatCelsiusFromDeciKelvin(3000) returns "26.9 °C"
func FormatCelsiusFromDeciKelvin(raw int64) string {
	return fmt.Sprintf("%.1f °C", float64(raw)*0.1-celsiusOffset)
}

// FormatCelsiusFromMicroKelvin converts a sensor value in micro-kelvin to
// whole degrees Celsius.
func FormatCelsiusFromMicroKelvin(raw int64) string {
	return fmt.Sprintf("%d °C", int64(float64(raw-273150000)/1e6))
}

// Squeeze collapses every run of spaces and tabs into a single space.
//
// Example: Squeeze("Intel(R)  Core(TM)\ti7") returns "Intel(R) Core(TM) i7"
func Squeeze(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	blank := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
			if !blank {
				b.WriteByte(' ')
			}
			blank = true
			continue
		}
		blank = false
		b.WriteRune(r)
	}
	return b.String()
}
