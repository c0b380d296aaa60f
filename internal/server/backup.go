package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkvoice/inkvoice/internal/backup"
	"go.uber.org/zap"
)

// DownloadBackup snapshots every persisted category into one JSON file.
func (s *Server) DownloadBackup(c *gin.Context) {
	env, err := s.backupSvc.Export(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filename := "inkvoice-backup-" + time.Now().UTC().Format("2006-01-02") + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.JSON(http.StatusOK, env)
}

// RestoreBackup replaces all application state with the uploaded
// envelope. This is destructive, not a merge.
func (s *Server) RestoreBackup(c *gin.Context) {
	var env backup.Envelope
	if err := c.ShouldBindJSON(&env); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.backupSvc.Restore(c.Request.Context(), env); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "restored"})
}

func (s *Server) DownloadInvoicesCSV(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="invoices.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := s.backupSvc.WriteCSV(c.Request.Context(), c.Writer); err != nil {
		s.log.Error("csv export failed", zap.Error(err))
	}
}

func (s *Server) DownloadInvoicesXLSX(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="invoices.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	if err := s.backupSvc.WriteXLSX(c.Request.Context(), c.Writer); err != nil {
		s.log.Error("xlsx export failed", zap.Error(err))
	}
}
