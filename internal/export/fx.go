package export

import (
	"github.com/inkvoice/inkvoice/internal/config"
	"github.com/inkvoice/inkvoice/internal/invoice/render/preview"
	"github.com/inkvoice/inkvoice/internal/invoice/render/raster"
	"go.uber.org/fx"
)

func newRasterOptions(cfg config.Config) raster.Options {
	opts := raster.DefaultOptions()
	if cfg.PDFCaptureScale > 0 {
		opts.PDFScale = cfg.PDFCaptureScale
	}
	if cfg.JPEGCaptureScale > 0 {
		opts.JPEGScale = cfg.JPEGCaptureScale
	}
	if cfg.JPEGQuality > 0 {
		opts.JPEGQuality = cfg.JPEGQuality
	}
	return opts
}

// newRasterizer is the default binding. Deployments with a real capture
// backend override this provider with fx.Replace.
func newRasterizer() raster.Rasterizer {
	return raster.NoOpRasterizer{}
}

func newExporter(screen *preview.Renderer, ras raster.Rasterizer, opts raster.Options) *raster.Exporter {
	return raster.NewExporter(screen, ras, opts)
}

var Module = fx.Module("export",
	fx.Provide(newRasterOptions),
	fx.Provide(newRasterizer),
	fx.Provide(newExporter),
	fx.Provide(NewManager),
)
