package profile

import (
	"github.com/inkvoice/inkvoice/internal/store"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func newProfileStore(db *gorm.DB) store.Store[CompanyProfile] {
	return store.ForKind[CompanyProfile](db, CompanyProfileKind)
}

func newClientStore(db *gorm.DB) store.Store[Client] {
	return store.ForKind[Client](db, ClientKind)
}

func newSavedItemStore(db *gorm.DB) store.Store[SavedItem] {
	return store.ForKind[SavedItem](db, SavedItemKind)
}

var Module = fx.Module("profile.service",
	fx.Provide(newProfileStore),
	fx.Provide(newClientStore),
	fx.Provide(newSavedItemStore),
	fx.Provide(NewService),
)
