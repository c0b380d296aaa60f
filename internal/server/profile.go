package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkvoice/inkvoice/internal/profile"
)

func (s *Server) GetCompanyProfile(c *gin.Context) {
	p, err := s.profileSvc.GetCompanyProfile(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) SetCompanyProfile(c *gin.Context) {
	var p profile.CompanyProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	saved, err := s.profileSvc.SetCompanyProfile(c.Request.Context(), p)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) ListClients(c *gin.Context) {
	clients, err := s.profileSvc.ListClients(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (s *Server) SaveClient(c *gin.Context) {
	var client profile.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	saved, err := s.profileSvc.SaveClient(c.Request.Context(), client)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) UpdateClient(c *gin.Context) {
	var client profile.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	client.ID = c.Param("id")

	saved, err := s.profileSvc.SaveClient(c.Request.Context(), client)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) DeleteClient(c *gin.Context) {
	if err := s.profileSvc.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) ListSavedItems(c *gin.Context) {
	items, err := s.profileSvc.ListSavedItems(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"savedItems": items})
}

func (s *Server) SaveSavedItem(c *gin.Context) {
	var item profile.SavedItem
	if err := c.ShouldBindJSON(&item); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	saved, err := s.profileSvc.SaveSavedItem(c.Request.Context(), item)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) UpdateSavedItem(c *gin.Context) {
	var item profile.SavedItem
	if err := c.ShouldBindJSON(&item); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	item.ID = c.Param("id")

	saved, err := s.profileSvc.SaveSavedItem(c.Request.Context(), item)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) DeleteSavedItem(c *gin.Context) {
	if err := s.profileSvc.DeleteSavedItem(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
