package shellattr

import "fmt"

// Describe renders an outcome as the lines the CLI prints, in stable order.
// It is pure: no resolver calls, no release, same input same output.
//
// A failure renders as a single line carrying the raw status in hex. A
// success renders a header with the full mask followed by one line per
// recognized bit that is set, in the fixed display order.
func Describe(o Outcome) []string {
	if o.Failed() {
		return []string{fmt.Sprintf("SHParseDisplayName failed: %s", o.Status)}
	}
	lines := []string{fmt.Sprintf("Attributes: %s", o.Mask)}
	lines = append(lines, o.Mask.Names()...)
	return lines
}
