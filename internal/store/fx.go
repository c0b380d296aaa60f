package store

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Migrate creates the documents table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Record{})
}

// Module wires store migrations.
var Module = fx.Module("store",
	fx.Invoke(Migrate),
)
