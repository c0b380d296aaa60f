package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/inkvoice/inkvoice/internal/invoice/domain"
	"github.com/inkvoice/inkvoice/internal/invoice/render"
	"github.com/inkvoice/inkvoice/internal/invoice/theme"
)

func (s *Server) ListInvoices(c *gin.Context) {
	invoices, err := s.invoiceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (s *Server) GetInvoiceByID(c *gin.Context) {
	inv, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (s *Server) SaveInvoice(c *gin.Context) {
	var inv invoicedomain.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	saved, err := s.invoiceSvc.Save(c.Request.Context(), inv)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// UpdateInvoice saves against the path id, ignoring any id in the body.
func (s *Server) UpdateInvoice(c *gin.Context) {
	var inv invoicedomain.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	inv.ID = c.Param("id")

	saved, err := s.invoiceSvc.Save(c.Request.Context(), inv)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	if err := s.invoiceSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) DuplicateInvoice(c *gin.Context) {
	dup, err := s.invoiceSvc.Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dup)
}

func (s *Server) PrefillInvoice(c *gin.Context) {
	draft, err := s.profileSvc.PrefillInvoice(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// PreviewInvoice renders the on-screen invoice page. The mode query
// selects light or dark; anything else falls back to light.
func (s *Server) PreviewInvoice(c *gin.Context) {
	inv, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	mode := theme.ModeLight
	if c.Query("mode") == string(theme.ModeDark) {
		mode = theme.ModeDark
	}

	view := render.BuildView(inv, mode, s.log)
	html, err := s.previewer.Render(view)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
