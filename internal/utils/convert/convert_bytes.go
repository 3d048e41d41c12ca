package convert

import "fmt"

var byteUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

// HumanBytes formats a byte count with 1024-based units, e.g. 1536 -> "1.5 KB".
// Negative counts render as "0 B".
func HumanBytes(n int64) string {
	const unit = 1024
	if n < 0 {
		n = 0
	}
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for q := n / unit; q >= unit && exp < len(byteUnits)-1; q /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %s", float64(n)/float64(div), byteUnits[exp])
}
