// Package options provides shared checks for functional option sets.
package options

import "fmt"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources reports, per source, whether it was set. The returned error
// message carries the number of sources found.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}

	switch {
	case count == 0:
		return fmt.Errorf("%s (got 0)", noSourceMsg)
	case count > 1:
		return fmt.Errorf("%s (got %d)", multiSourceMsg, count)
	}
	return nil
}
