package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkvoice/inkvoice/internal/export"
)

// ExportInvoice produces a downloadable document. Only one export runs
// at a time; a concurrent request maps to 409.
func (s *Server) ExportInvoice(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	inv, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	result, err := s.exportMgr.Export(c.Request.Context(), inv, format)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.MIMEType, result.Data)
}

func (s *Server) GetExportState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"state": string(s.exportMgr.State())})
}
