package export

import (
	"context"
	"image"
	"sync"
	"testing"

	"github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/inkvoice/inkvoice/internal/invoice/render/docexport"
	"github.com/inkvoice/inkvoice/internal/invoice/render/pdfexport"
	"github.com/inkvoice/inkvoice/internal/invoice/render/preview"
	"github.com/inkvoice/inkvoice/internal/invoice/render/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type blockingRasterizer struct {
	release chan struct{}
	started chan struct{}
	once    sync.Once
}

func (b *blockingRasterizer) Capture(context.Context, string, float64) (image.Image, error) {
	b.once.Do(func() { close(b.started) })
	<-b.release
	return image.NewRGBA(image.Rect(0, 0, 10, 10)), nil
}

func newManager(ras raster.Rasterizer) *Manager {
	screen := preview.NewRenderer()
	return NewManager(
		docexport.NewRenderer(),
		raster.NewExporter(screen, ras, raster.DefaultOptions()),
		pdfexport.NewRenderer(),
		nil,
		zap.NewNop(),
	)
}

func testInvoice() domain.Invoice {
	inv := domain.Invoice{
		ID:            "55",
		InvoiceNumber: "INV-55",
		CompanyName:   "Acme Studio",
		CustomerName:  "Globex LLC",
		Items:         []domain.LineItem{{Description: "Design", Quantity: 1, Rate: 100}},
	}
	inv.Normalize()
	return inv
}

func TestExport_DOC(t *testing.T) {
	m := newManager(raster.NoOpRasterizer{})

	res, err := m.Export(context.Background(), testInvoice(), FormatDOC)
	require.NoError(t, err)

	assert.Equal(t, "Invoice-INV-55.doc", res.Filename)
	assert.Equal(t, docexport.MIMEType, res.MIMEType)
	assert.Contains(t, string(res.Data), "INV-55")
	assert.Equal(t, StateIdle, m.State())
}

func TestExport_PrintPDF(t *testing.T) {
	m := newManager(raster.NoOpRasterizer{})

	res, err := m.Export(context.Background(), testInvoice(), FormatPDFPrint)
	require.NoError(t, err)
	assert.Equal(t, "Invoice-INV-55.pdf", res.Filename)
	assert.Equal(t, "application/pdf", res.MIMEType)
}

func TestExport_FailureReturnsToIdle(t *testing.T) {
	m := newManager(raster.NoOpRasterizer{})

	_, err := m.Export(context.Background(), testInvoice(), FormatJPEG)
	assert.ErrorIs(t, err, raster.ErrRasterizerUnavailable)
	assert.Equal(t, StateIdle, m.State())

	// the manager recovers: a following export succeeds
	_, err = m.Export(context.Background(), testInvoice(), FormatDOC)
	assert.NoError(t, err)
}

func TestExport_SecondRequestWhileGeneratingIsRejected(t *testing.T) {
	ras := &blockingRasterizer{release: make(chan struct{}), started: make(chan struct{})}
	m := newManager(ras)

	done := make(chan error, 1)
	go func() {
		_, err := m.Export(context.Background(), testInvoice(), FormatJPEG)
		done <- err
	}()

	<-ras.started
	assert.Equal(t, StateGenerating, m.State())

	_, err := m.Export(context.Background(), testInvoice(), FormatDOC)
	assert.ErrorIs(t, err, ErrExportInFlight)

	close(ras.release)
	require.NoError(t, <-done)
	assert.Equal(t, StateIdle, m.State())
}

func TestParseFormat(t *testing.T) {
	for _, ok := range []string{"pdf", "jpeg", "doc", "pdf-print", " PDF "} {
		_, err := ParseFormat(ok)
		assert.NoError(t, err, ok)
	}

	_, err := ParseFormat("docx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFilenameBase(t *testing.T) {
	assert.Equal(t, "Invoice-INV_2024_001", filenameBase("INV/2024 001", "id"))
	assert.Equal(t, "Invoice-77", filenameBase("", "77"))
	assert.Equal(t, "invoice", filenameBase("", ""))
}
