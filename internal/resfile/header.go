package resfile

import (
	"fmt"
	"strings"
)

// Header is one plane's located intensity block for one mode.
type Header struct {
	Plane     string
	Signature string
	Offset    int // 0-based index of the header line in RawFile.Lines
}

// Signature reconstructs the fixed-column header line the instrument writes
// above each intensity block. The column widths and the %.2f step formatting
// are part of the format: "5" never matches the instrument's "5.00", so the
// comparison has to be textual, not numeric.
func Signature(plane string, f Format, m Mode) string {
	return fmt.Sprintf(" %s       %.2f   %d    0 %.2f   %d    0",
		plane, f.StepAzimuthal, f.AzimuthalCount(), f.StepPolar, f.PolarCount(m))
}

// LocateHeaders finds each plane's header line for the given mode. The file
// is scanned once; the first line equal to a plane's signature (after
// trimming trailing whitespace) resolves that plane, and later duplicates
// are ignored. Every requested plane must resolve or the scan fails.
func LocateHeaders(raw *RawFile, planes []string, f Format, m Mode) ([]Header, error) {
	headers := make([]Header, len(planes))
	for i, plane := range planes {
		headers[i] = Header{Plane: plane, Signature: Signature(plane, f, m), Offset: -1}
	}

	for n, line := range raw.Lines {
		line = strings.TrimRight(line, " \t")
		for i := range headers {
			if headers[i].Offset < 0 && line == headers[i].Signature {
				headers[i].Offset = n
				break
			}
		}
	}

	for i := range headers {
		if headers[i].Offset < 0 {
			return nil, &HeaderNotFoundError{Plane: headers[i].Plane, Mode: m}
		}
	}
	return headers, nil
}
