package invoice

import (
	"github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/inkvoice/inkvoice/internal/invoice/render/docexport"
	"github.com/inkvoice/inkvoice/internal/invoice/render/pdfexport"
	"github.com/inkvoice/inkvoice/internal/invoice/render/preview"
	"github.com/inkvoice/inkvoice/internal/invoice/service"
	"github.com/inkvoice/inkvoice/internal/store"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func newStore(db *gorm.DB) store.Store[domain.Invoice] {
	return store.ForKind[domain.Invoice](db, service.StoreKind)
}

var Module = fx.Module("invoice.service",
	fx.Provide(newStore),
	fx.Provide(preview.NewRenderer),
	fx.Provide(docexport.NewRenderer),
	fx.Provide(pdfexport.NewRenderer),
	fx.Provide(service.NewService),
)
