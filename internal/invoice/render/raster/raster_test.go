package raster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/inkvoice/inkvoice/internal/invoice/render"
	"github.com/inkvoice/inkvoice/internal/invoice/render/preview"
	"github.com/inkvoice/inkvoice/internal/invoice/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRasterizer struct {
	width, height int
	lastScale     float64
	lastHTML      string
	err           error
}

func (f *fakeRasterizer) Capture(_ context.Context, html string, scale float64) (image.Image, error) {
	f.lastHTML = html
	f.lastScale = scale
	if f.err != nil {
		return nil, f.err
	}
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for i := range img.Pix {
		img.Pix[i] = 0xee
	}
	img.Set(1, 1, color.Black)
	return img, nil
}

func testView(t *testing.T) render.View {
	t.Helper()
	inv := domain.Invoice{
		InvoiceNumber: "INV-1",
		CompanyName:   "Acme Studio",
		CustomerName:  "Globex LLC",
		Items:         []domain.LineItem{{Description: "Design", Quantity: 2, Rate: 100}},
	}
	inv.Normalize()
	return render.BuildView(inv, theme.ModeLight, zap.NewNop())
}

func TestExportJPEG(t *testing.T) {
	ras := &fakeRasterizer{width: 120, height: 160}
	exp := NewExporter(preview.NewRenderer(), ras, DefaultOptions())

	data, err := exp.ExportJPEG(context.Background(), testView(t))
	require.NoError(t, err)

	assert.Equal(t, 1.5, ras.lastScale)
	assert.Contains(t, ras.lastHTML, "INV-1")
	// JPEG SOI marker
	require.True(t, len(data) > 2)
	assert.Equal(t, []byte{0xff, 0xd8}, data[:2])
}

func TestExportPDF_EmbedsBitmapSizedPage(t *testing.T) {
	ras := &fakeRasterizer{width: 120, height: 160}
	exp := NewExporter(preview.NewRenderer(), ras, DefaultOptions())

	data, err := exp.ExportPDF(context.Background(), testView(t))
	require.NoError(t, err)

	assert.Equal(t, 2.0, ras.lastScale)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExport_ZeroDimensionCaptureIsHardFailure(t *testing.T) {
	ras := &fakeRasterizer{width: 0, height: 0}
	exp := NewExporter(preview.NewRenderer(), ras, DefaultOptions())

	data, err := exp.ExportJPEG(context.Background(), testView(t))
	assert.ErrorIs(t, err, ErrEmptyCapture)
	assert.Nil(t, data)

	data, err = exp.ExportPDF(context.Background(), testView(t))
	assert.ErrorIs(t, err, ErrEmptyCapture)
	assert.Nil(t, data)
}

func TestExport_NoOpRasterizerFailsCleanly(t *testing.T) {
	exp := NewExporter(preview.NewRenderer(), NoOpRasterizer{}, DefaultOptions())

	_, err := exp.ExportJPEG(context.Background(), testView(t))
	assert.ErrorIs(t, err, ErrRasterizerUnavailable)
}
