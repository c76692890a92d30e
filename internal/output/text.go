// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"resmap-core/align"
)

// Formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// WriteText prints the alignment block and a one-line quality summary.
func WriteText(w io.Writer, p Pair) error {
	if _, err := io.WriteString(w, align.Format(p.Aln)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Mismatches: %d/%d  Identity: %.1f%%\n",
		p.Report.Mismatches, p.Report.Compared, 100*p.Report.Identity())
	return err
}

// Write dispatches on format.
func Write(w io.Writer, format string, p Pair) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, p)
	case FormatText:
		return WriteText(w, p)
	}
	return fmt.Errorf("unsupported report format %q", format)
}
