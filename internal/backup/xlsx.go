package backup

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Invoices"

// WriteXLSX writes the same invoice projection as WriteCSV into a
// spreadsheet workbook.
func (s *Service) WriteXLSX(ctx context.Context, w io.Writer) error {
	invoices, err := s.listNormalized(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &tableHeader); err != nil {
		return err
	}
	for i, inv := range invoices {
		row := invoiceRow(inv)
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
