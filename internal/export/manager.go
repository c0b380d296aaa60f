// Package export orchestrates invoice downloads across the output
// surfaces. One export runs at a time; a second request while one is
// generating is rejected rather than queued.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/inkvoice/inkvoice/internal/invoice/render"
	"github.com/inkvoice/inkvoice/internal/invoice/render/docexport"
	"github.com/inkvoice/inkvoice/internal/invoice/render/pdfexport"
	"github.com/inkvoice/inkvoice/internal/invoice/render/raster"
	"github.com/inkvoice/inkvoice/internal/invoice/theme"
	"github.com/inkvoice/inkvoice/internal/metrics"
	"go.uber.org/zap"
)

// Format selects the export surface.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatJPEG     Format = "jpeg"
	FormatDOC      Format = "doc"
	FormatPDFPrint Format = "pdf-print"
)

// State is the export flow state. There is no queued state on purpose.
type State string

const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
)

var (
	ErrExportInFlight    = errors.New("export_in_flight")
	ErrUnsupportedFormat = errors.New("unsupported_export_format")
)

// Result is a finished export ready for download.
type Result struct {
	Filename string
	MIMEType string
	Data     []byte
}

// Manager runs the Idle -> Generating -> Idle export flow.
type Manager struct {
	generating atomic.Bool

	doc      *docexport.Renderer
	rasterer *raster.Exporter
	printer  *pdfexport.Renderer
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func NewManager(
	doc *docexport.Renderer,
	rasterer *raster.Exporter,
	printer *pdfexport.Renderer,
	m *metrics.Metrics,
	log *zap.Logger,
) *Manager {
	return &Manager{
		doc:      doc,
		rasterer: rasterer,
		printer:  printer,
		metrics:  m,
		log:      log,
	}
}

// State reports whether an export is in flight.
func (m *Manager) State() State {
	if m.generating.Load() {
		return StateGenerating
	}
	return StateIdle
}

// Export produces a downloadable document for the invoice. Exported
// documents always use the light variant of the invoice theme. The state
// returns to idle on success and failure alike.
func (m *Manager) Export(ctx context.Context, inv domain.Invoice, format Format) (Result, error) {
	if !m.generating.CompareAndSwap(false, true) {
		return Result{}, ErrExportInFlight
	}
	defer m.generating.Store(false)

	result, err := m.generate(ctx, inv, format)
	outcome := "success"
	if err != nil {
		outcome = "failure"
		m.log.Warn("export failed",
			zap.String("invoice_id", inv.ID),
			zap.String("format", string(format)),
			zap.Error(err),
		)
	}
	if m.metrics != nil {
		m.metrics.ExportsTotal.WithLabelValues(string(format), outcome).Inc()
	}
	return result, err
}

func (m *Manager) generate(ctx context.Context, inv domain.Invoice, format Format) (Result, error) {
	view := render.BuildView(inv, theme.ModeLight, m.log)
	base := filenameBase(inv.InvoiceNumber, inv.ID)

	switch format {
	case FormatDOC:
		html, err := m.doc.Render(view)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Filename: base + docexport.Extension,
			MIMEType: docexport.MIMEType,
			Data:     []byte(html),
		}, nil

	case FormatJPEG:
		data, err := m.rasterer.ExportJPEG(ctx, view)
		if err != nil {
			return Result{}, err
		}
		return Result{Filename: base + ".jpg", MIMEType: "image/jpeg", Data: data}, nil

	case FormatPDF:
		data, err := m.rasterer.ExportPDF(ctx, view)
		if err != nil {
			return Result{}, err
		}
		return Result{Filename: base + ".pdf", MIMEType: "application/pdf", Data: data}, nil

	case FormatPDFPrint:
		data, err := m.printer.Render(view)
		if err != nil {
			return Result{}, err
		}
		return Result{Filename: base + ".pdf", MIMEType: "application/pdf", Data: data}, nil

	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func filenameBase(number, id string) string {
	name := strings.TrimSpace(number)
	if name == "" {
		name = id
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "invoice"
	}
	return "Invoice-" + b.String()
}

// ParseFormat validates a user-supplied format string.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatJPEG:
		return FormatJPEG, nil
	case FormatDOC:
		return FormatDOC, nil
	case FormatPDFPrint:
		return FormatPDFPrint, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, raw)
	}
}
