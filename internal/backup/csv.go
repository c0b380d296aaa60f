package backup

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes the one-row-per-invoice projection. encoding/csv takes
// care of quoting fields containing commas, quotes, or newlines.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer) error {
	invoices, err := s.listNormalized(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(stringRow(tableHeader)); err != nil {
		return err
	}
	for _, inv := range invoices {
		if err := cw.Write(stringRow(invoiceRow(inv))); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func stringRow(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprintf("%v", v)
	}
	return out
}
