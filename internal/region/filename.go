package region

import (
	"fmt"
	"strconv"
	"strings"
)

// Filename returns the conventional file name of the region at (rx, rz).
func Filename(rx, rz int) string {
	return fmt.Sprintf("r.%d.%d.mca", rx, rz)
}

// ParseFilename extracts region coordinates from a name like "r.-1.3.mca".
// ok is false for names that do not follow the convention.
func ParseFilename(name string) (rx, rz int, ok bool) {
	parts := strings.Split(name, ".")
	if len(parts) != 4 || parts[0] != "r" || parts[3] != "mca" {
		return 0, 0, false
	}

	x, err := strconv.ParseInt(parts[1], 10, 32)
	if err != nil {
		return 0, 0, false
	}
	z, err := strconv.ParseInt(parts[2], 10, 32)
	if err != nil {
		return 0, 0, false
	}
	return int(x), int(z), true
}
