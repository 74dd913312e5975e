package shellattr

import "fmt"

// Mask is a shell attribute bit-set (SFGAO-style) describing how the shell
// namespace classifies an item. Only three bits are interpreted by this tool;
// the rest exist on the platform and ride along untouched.
type Mask uint32

// Recognized attribute bits. Values match the Windows SFGAO_* constants.
const (
	// FileSystemAncestor marks an item that is not itself a file-system
	// entry but can contain or lead to one (a namespace container such as
	// a library root or network root).
	FileSystemAncestor Mask = 0x10000000

	// Folder marks an item that behaves as a container in shell UI.
	Folder Mask = 0x20000000

	// FileSystemObject marks a genuine addressable file-system entry.
	FileSystemObject Mask = 0x40000000

	// MaskAll requests every attribute bit from the resolver. The tool
	// always asks for the full mask and interprets a subset; narrowing the
	// request would change the resolver contract.
	MaskAll Mask = 0xFFFFFFFF
)

// flags lists the recognized bits in display order. FileSystemAncestor's bit
// value is numerically the lowest of the three but is conventionally listed
// second, so the order lives in this table rather than in the bit values.
var flags = []struct {
	bit   Mask
	label string
}{
	{FileSystemObject, "FileSystemObject"},
	{FileSystemAncestor, "FileSystemAncestor"},
	{Folder, "Folder"},
}

// Has reports whether every bit in b is set in m.
func (m Mask) Has(b Mask) bool { return m&b == b }

// Names returns the labels of the recognized bits set in m, in display order.
func (m Mask) Names() []string {
	var names []string
	for _, f := range flags {
		if m.Has(f.bit) {
			names = append(names, f.label)
		}
	}
	return names
}

func (m Mask) String() string { return fmt.Sprintf("0x%08X", uint32(m)) }
