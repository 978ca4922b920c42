package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

var byteUnits = []struct {
	size uint64
	name string
}{
	{size: humanize.Byte, name: "B"},
	{size: humanize.KiByte, name: "KB"},
	{size: humanize.MiByte, name: "MB"},
	{size: humanize.GiByte, name: "GB"},
	{size: humanize.TiByte, name: "TB"},
}

// ByteSize renders a byte count with one decimal in the largest binary unit
// whose value is at least 1, e.g. 1023 -> "1023.0 B", 1024 -> "1.0 KB".
// Negative input is a programming error and panics.
func ByteSize(bytes int64) string {
	if bytes < 0 {
		panic(fmt.Sprintf("format: negative byte size %d", bytes))
	}

	idx := 0
	for i := len(byteUnits) - 1; i > 0; i-- {
		if uint64(bytes) >= byteUnits[i].size {
			idx = i
			break
		}
	}

	value := roundTenth(float64(bytes) / float64(byteUnits[idx].size))
	// Rounding can carry into the next unit, e.g. 1023.96 KB.
	if value >= 1024 && idx < len(byteUnits)-1 {
		idx++
		value = roundTenth(float64(bytes) / float64(byteUnits[idx].size))
	}
	return fmt.Sprintf("%.1f %s", value, byteUnits[idx].name)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// Count renders an integer with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}
