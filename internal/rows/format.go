package rows

import (
	"fmt"
	"io"

	"github.com/litetable/litetable-go/internal/litetable"
)

// FormatHeader writes the column header FormatResult lines sit under.
func FormatHeader(w io.Writer) error {
	_, err := fmt.Fprintln(w, "ROW\t\t\t COLUMN+CELL")
	return err
}

// FormatResult writes one line per cell of r:
//
//	2002			 column=info:age, timestamp=1665990556548, value=20
func FormatResult(w io.Writer, r *litetable.Result) error {
	if r == nil {
		return nil
	}
	for _, c := range r.Cells {
		_, err := fmt.Fprintf(w, "%s\t\t\t column=%s:%s, timestamp=%d, value=%s\n",
			litetable.String(c.Row), litetable.String(c.Family), litetable.String(c.Qualifier),
			c.Timestamp, litetable.String(c.Value))
		if err != nil {
			return err
		}
	}
	return nil
}
