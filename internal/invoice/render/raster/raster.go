// Package raster turns the rendered preview surface into bitmap-backed
// exports: a JPEG, or a PDF carrying the bitmap as a single full page.
package raster

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"

	"github.com/inkvoice/inkvoice/internal/invoice/render"
	"github.com/inkvoice/inkvoice/internal/invoice/render/preview"
	"github.com/jung-kurt/gofpdf"
)

var (
	// ErrEmptyCapture means the capture target had zero rendered
	// dimensions. This is a hard failure; an empty file must never be
	// produced silently.
	ErrEmptyCapture = errors.New("capture_produced_empty_bitmap")

	ErrRasterizerUnavailable = errors.New("rasterizer_not_configured")
)

// Rasterizer is the capture collaborator: it renders a page of HTML into
// a bitmap at the given device-pixel scale factor. It returns only when
// layout has settled, which replaces the fixed pre-capture delay the
// original flow relied on.
type Rasterizer interface {
	Capture(ctx context.Context, html string, scale float64) (image.Image, error)
}

// NoOpRasterizer is wired when no capture backend is configured. Raster
// exports then fail cleanly instead of producing empty files.
type NoOpRasterizer struct{}

func (NoOpRasterizer) Capture(context.Context, string, float64) (image.Image, error) {
	return nil, ErrRasterizerUnavailable
}

// Options hold the per-format capture scale factors.
type Options struct {
	PDFScale    float64
	JPEGScale   float64
	JPEGQuality int
}

func DefaultOptions() Options {
	return Options{PDFScale: 2.0, JPEGScale: 1.5, JPEGQuality: 90}
}

// Exporter captures the preview surface and assembles JPEG or PDF output.
type Exporter struct {
	screen *preview.Renderer
	ras    Rasterizer
	opts   Options
}

func NewExporter(screen *preview.Renderer, ras Rasterizer, opts Options) *Exporter {
	if opts.PDFScale <= 0 {
		opts.PDFScale = 2.0
	}
	if opts.JPEGScale <= 0 {
		opts.JPEGScale = 1.5
	}
	if opts.JPEGQuality <= 0 || opts.JPEGQuality > 100 {
		opts.JPEGQuality = 90
	}
	return &Exporter{screen: screen, ras: ras, opts: opts}
}

// ExportJPEG captures the preview at JPEG quality scale and encodes it.
func (e *Exporter) ExportJPEG(ctx context.Context, view render.View) ([]byte, error) {
	img, err := e.capture(ctx, view, e.opts.JPEGScale)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: e.opts.JPEGQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportPDF captures the preview at print scale and embeds the bitmap as
// a single page sized to the bitmap's pixel dimensions.
func (e *Exporter) ExportPDF(ctx context.Context, view render.View) ([]byte, error) {
	img, err := e.capture(ctx, view, e.opts.PDFScale)
	if err != nil {
		return nil, err
	}

	var jpg bytes.Buffer
	if err := jpeg.Encode(&jpg, img, &jpeg.Options{Quality: 95}); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.RegisterImageOptionsReader("invoice", gofpdf.ImageOptions{ImageType: "JPG"}, &jpg)
	pdf.ImageOptions("invoice", 0, 0, w, h, false, gofpdf.ImageOptions{ImageType: "JPG"}, 0, "")
	if pdf.Err() {
		return nil, pdf.Error()
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (e *Exporter) capture(ctx context.Context, view render.View, scale float64) (image.Image, error) {
	if e.ras == nil {
		return nil, ErrRasterizerUnavailable
	}

	html, err := e.screen.Render(view)
	if err != nil {
		return nil, err
	}

	img, err := e.ras.Capture(ctx, html, scale)
	if err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		return nil, ErrEmptyCapture
	}
	return img, nil
}
