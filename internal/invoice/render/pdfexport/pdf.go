// Package pdfexport produces a vector-layout PDF of the invoice. Unlike
// the raster path it does not depend on a capture backend, so it works in
// a fully headless deployment.
package pdfexport

import (
	"strconv"

	"github.com/inkvoice/inkvoice/internal/invoice/render"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render lays out the invoice and returns the PDF bytes.
func (r *Renderer) Render(view render.View) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)
	primary := hexToColor(view.Theme.Primary)
	muted := hexToColor(view.Theme.MutedText)

	m.AddRow(12,
		text.NewCol(8, "Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
			Color: primary,
		}),
		text.NewCol(4, view.CompanyName, props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)

	m.AddRow(18,
		col.New(6).Add(
			text.New("Invoice number: "+view.Number, props.Text{Top: 0, Size: 9}),
			text.New("Date issued: "+view.Date, props.Text{Top: 4, Size: 9}),
			text.New("Date due: "+view.DueDate, props.Text{Top: 8, Size: 9}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.New(view.CustomerName, props.Text{Top: 4, Size: 9}),
		),
	)

	m.AddRow(8,
		text.NewCol(4, "Description", props.Text{Style: fontstyle.Bold, Size: 8, Color: muted}),
		text.NewCol(1, "Qty", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: muted}),
		text.NewCol(2, "Unit", props.Text{Style: fontstyle.Bold, Size: 8, Color: muted}),
		text.NewCol(2, "Rate", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: muted}),
		text.NewCol(1, "Disc", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: muted}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: muted}),
	)

	if view.HasItems {
		for _, item := range view.Rows {
			m.AddRows(itemRow(item))
		}
	} else {
		m.AddRow(10, text.NewCol(12, render.NoItemsLabel, props.Text{
			Size:  9,
			Align: align.Center,
			Color: muted,
		}))
	}

	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9, Color: muted}),
		text.NewCol(2, view.SubTotal, props.Text{Size: 9, Align: align.Right}),
	)
	if view.HasDiscount {
		m.AddRow(8,
			col.New(8),
			text.NewCol(2, view.DiscountLabel, props.Text{Size: 9, Color: muted}),
			text.NewCol(2, "-"+view.DiscountAmount, props.Text{Size: 9, Align: align.Right}),
		)
	}
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 10, Color: primary}),
		text.NewCol(2, view.Total, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	if view.Notes != "" {
		m.AddRow(14, text.NewCol(12, view.Notes, props.Text{Size: 8, Top: 6, Color: muted}))
	}
	if view.Terms != "" {
		m.AddRow(14, text.NewCol(12, view.Terms, props.Text{Size: 8, Top: 2, Color: muted}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func itemRow(item render.Row) core.Row {
	description := item.Description
	if item.DateRange != "" {
		description += "\n" + item.DateRange
	}
	height := 8.0
	if item.DateRange != "" {
		height = 12.0
	}
	return row.New(height).Add(
		text.NewCol(4, description, props.Text{Size: 9}),
		text.NewCol(1, item.Quantity, props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, item.Unit, props.Text{Size: 9}),
		text.NewCol(2, item.Rate, props.Text{Size: 9, Align: align.Right}),
		text.NewCol(1, item.Discount, props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, item.Amount, props.Text{Size: 9, Align: align.Right}),
	)
}

func hexToColor(hex string) *props.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return &props.Color{Red: 26, Green: 31, Blue: 54}
	}
	r, err1 := strconv.ParseInt(hex[1:3], 16, 0)
	g, err2 := strconv.ParseInt(hex[3:5], 16, 0)
	b, err3 := strconv.ParseInt(hex[5:7], 16, 0)
	if err1 != nil || err2 != nil || err3 != nil {
		return &props.Color{Red: 26, Green: 31, Blue: 54}
	}
	return &props.Color{Red: int(r), Green: int(g), Blue: int(b)}
}
