package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/inkvoice/inkvoice/internal/backup"
	"github.com/inkvoice/inkvoice/internal/config"
	"github.com/inkvoice/inkvoice/internal/export"
	"github.com/inkvoice/inkvoice/internal/invoice"
	"github.com/inkvoice/inkvoice/internal/logger"
	"github.com/inkvoice/inkvoice/internal/metrics"
	"github.com/inkvoice/inkvoice/internal/profile"
	"github.com/inkvoice/inkvoice/internal/server"
	"github.com/inkvoice/inkvoice/internal/store"
	"github.com/inkvoice/inkvoice/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		store.Module,
		metrics.Module,

		// Functional domains
		invoice.Module,
		profile.Module,
		export.Module,
		backup.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
