package resfile

import "fmt"

// InvalidExtensionError reports an input path that is not a RES file.
type InvalidExtensionError struct {
	Path string
}

func (e *InvalidExtensionError) Error() string {
	return fmt.Sprintf("%s: input must be a .RES/.res file", e.Path)
}

// PlaneCountError reports a requested pole-figure count outside the catalog.
type PlaneCountError struct {
	Count int
	Max   int
}

func (e *PlaneCountError) Error() string {
	return fmt.Sprintf("pole figure count %d out of range 1..%d", e.Count, e.Max)
}

// MalformedHeaderError reports unusable metadata in the file preamble. The
// rest of the file's offsets are meaningless without it, so this is fatal.
type MalformedHeaderError struct {
	Line   int // 1-based line number in the RES file
	Reason string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("malformed RES metadata at line %d: %s", e.Line, e.Reason)
}

// HeaderNotFoundError reports a plane whose intensity header never appeared
// in the file for the requested mode.
type HeaderNotFoundError struct {
	Plane string
	Mode  Mode
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("no %s intensity header found for plane %s", e.Mode, e.Plane)
}

// BlockSizeError reports a polar ring whose eight-line block did not carry
// exactly one intensity per azimuthal column.
type BlockSizeError struct {
	Plane string
	Mode  Mode
	Ring  int
	Got   int
	Want  int
}

func (e *BlockSizeError) Error() string {
	return fmt.Sprintf("plane %s (%s): ring %d has %d intensity values, want %d",
		e.Plane, e.Mode, e.Ring, e.Got, e.Want)
}
