package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/proactivefit/backend/internal/middleware"
	"github.com/proactivefit/backend/internal/service"
)

type GalleryHandler struct {
	galleryService *service.GalleryService
	authService    *service.AuthService
}

func NewGalleryHandler(galleryService *service.GalleryService, authService *service.AuthService) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
		authService:    authService,
	}
}

func (h *GalleryHandler) RegisterRoutes(router *gin.RouterGroup) {
	gallery := router.Group("/events/gallery")
	{
		gallery.GET("", h.ListImages)
		gallery.POST("", middleware.AuthMiddleware(h.authService), h.AddImage)
		gallery.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.RemoveImage)
	}
}

type addImageRequest struct {
	URL     string `json:"url" binding:"required,url"`
	Caption string `json:"caption"`
}

func (h *GalleryHandler) ListImages(c *gin.Context) {
	images, err := h.galleryService.ListImages(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching gallery: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery"})
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *GalleryHandler) AddImage(c *gin.Context) {
	var req addImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := h.galleryService.AddImage(c.Request.Context(), req.URL, req.Caption)
	if err != nil {
		log.Printf("Error adding gallery image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *GalleryHandler) RemoveImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}

	if err := h.galleryService.RemoveImage(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		log.Printf("Error removing gallery image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
