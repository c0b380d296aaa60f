// Package server is the HTTP surface of the application.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkvoice/inkvoice/internal/backup"
	"github.com/inkvoice/inkvoice/internal/config"
	"github.com/inkvoice/inkvoice/internal/export"
	invoicedomain "github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/inkvoice/inkvoice/internal/invoice/render/preview"
	"github.com/inkvoice/inkvoice/internal/metrics"
	"github.com/inkvoice/inkvoice/internal/profile"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, m *metrics.Metrics, log *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogMiddleware(log))
	r.Use(metrics.GinMiddleware(m))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	invoiceSvc invoicedomain.Service
	profileSvc *profile.Service
	backupSvc  *backup.Service
	exportMgr  *export.Manager
	previewer  *preview.Renderer
	log        *zap.Logger
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	InvoiceSvc invoicedomain.Service
	ProfileSvc *profile.Service
	BackupSvc  *backup.Service
	ExportMgr  *export.Manager
	Previewer  *preview.Renderer
	Log        *zap.Logger
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		invoiceSvc: p.InvoiceSvc,
		profileSvc: p.ProfileSvc,
		backupSvc:  p.BackupSvc,
		exportMgr:  p.ExportMgr,
		previewer:  p.Previewer,
		log:        p.Log,
	}

	s.registerAPIRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1")

	// -------- Invoices --------
	api.GET("/invoices", s.ListInvoices)
	api.POST("/invoices", s.SaveInvoice)
	api.GET("/invoices/prefill", s.PrefillInvoice)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.PUT("/invoices/:id", s.UpdateInvoice)
	api.DELETE("/invoices/:id", s.DeleteInvoice)
	api.POST("/invoices/:id/duplicate", s.DuplicateInvoice)
	api.GET("/invoices/:id/preview", s.PreviewInvoice)
	api.POST("/invoices/:id/export", s.ExportInvoice)

	// -------- Export state --------
	api.GET("/export/state", s.GetExportState)

	// -------- Company profile --------
	api.GET("/company-profile", s.GetCompanyProfile)
	api.PUT("/company-profile", s.SetCompanyProfile)

	// -------- Clients --------
	api.GET("/clients", s.ListClients)
	api.POST("/clients", s.SaveClient)
	api.PUT("/clients/:id", s.UpdateClient)
	api.DELETE("/clients/:id", s.DeleteClient)

	// -------- Saved items --------
	api.GET("/saved-items", s.ListSavedItems)
	api.POST("/saved-items", s.SaveSavedItem)
	api.PUT("/saved-items/:id", s.UpdateSavedItem)
	api.DELETE("/saved-items/:id", s.DeleteSavedItem)

	// -------- Backup / restore / reports --------
	api.GET("/backup", s.DownloadBackup)
	api.POST("/restore", s.RestoreBackup)
	api.GET("/invoices.csv", s.DownloadInvoicesCSV)
	api.GET("/invoices.xlsx", s.DownloadInvoicesXLSX)
}
