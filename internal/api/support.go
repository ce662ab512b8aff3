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

type SupportHandler struct {
	supportService *service.SupportService
	topicLimiter   *middleware.RateLimiter
	postLimiter    *middleware.RateLimiter
}

func NewSupportHandler(supportService *service.SupportService) *SupportHandler {
	return &SupportHandler{supportService: supportService}
}

// NewSupportHandlerWithRateLimit wires per-IP creation limits when redis is
// available.
func NewSupportHandlerWithRateLimit(supportService *service.SupportService, topicLimiter, postLimiter *middleware.RateLimiter) *SupportHandler {
	return &SupportHandler{
		supportService: supportService,
		topicLimiter:   topicLimiter,
		postLimiter:    postLimiter,
	}
}

func (h *SupportHandler) RegisterRoutes(router *gin.RouterGroup) {
	support := router.Group("/support")
	{
		topics := support.Group("/topics")
		topics.GET("", h.ListTopics)
		topics.POST("", h.creationLimit(h.topicLimiter), h.CreateTopic)
		topics.PUT("/:id", h.UpdateTopic)
		topics.DELETE("/:id", h.DeleteTopic)
		topics.POST("/:id/increment-views", h.IncrementViews)

		posts := support.Group("/posts")
		posts.GET("/:topicId", h.ListPosts)
		posts.POST("", h.creationLimit(h.postLimiter), h.CreatePost)
		posts.PUT("/:id", h.UpdatePost)
		posts.DELETE("/:id", h.DeletePost)
	}
}

func (h *SupportHandler) creationLimit(limiter *middleware.RateLimiter) gin.HandlerFunc {
	if limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return limiter.RateLimitMiddleware()
}

type createTopicRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
}

type updateTopicRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type createPostRequest struct {
	TopicID  string `json:"topicId" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Username string `json:"username"`
}

type updatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *SupportHandler) ListTopics(c *gin.Context) {
	topics, err := h.supportService.ListTopics(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching topics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch topics"})
		return
	}
	c.JSON(http.StatusOK, topics)
}

func (h *SupportHandler) CreateTopic(c *gin.Context) {
	var req createTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := h.supportService.CreateTopic(c.Request.Context(), req.Title, req.Description, req.Category)
	if err != nil {
		log.Printf("Error creating topic: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create topic"})
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (h *SupportHandler) UpdateTopic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic ID"})
		return
	}

	var req updateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := h.supportService.UpdateTopic(c.Request.Context(), id, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrTopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
			return
		}
		log.Printf("Error updating topic: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update topic"})
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (h *SupportHandler) DeleteTopic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic ID"})
		return
	}

	if err := h.supportService.DeleteTopic(c.Request.Context(), id); err != nil {
		log.Printf("Error deleting topic: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete topic"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *SupportHandler) IncrementViews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic ID"})
		return
	}

	if err := h.supportService.IncrementViews(c.Request.Context(), id); err != nil {
		log.Printf("Error incrementing views: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to increment views"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *SupportHandler) ListPosts(c *gin.Context) {
	topicID, err := uuid.Parse(c.Param("topicId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic ID"})
		return
	}

	posts, err := h.supportService.ListPosts(c.Request.Context(), topicID)
	if err != nil {
		log.Printf("Error fetching posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *SupportHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topicID, err := uuid.Parse(req.TopicID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic ID"})
		return
	}

	post, err := h.supportService.CreatePost(c.Request.Context(), topicID, req.Content, req.Username)
	if err != nil {
		if errors.Is(err, service.ErrTopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
			return
		}
		log.Printf("Error creating post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *SupportHandler) UpdatePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.supportService.UpdatePost(c.Request.Context(), id, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		log.Printf("Error updating post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *SupportHandler) DeletePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	if err := h.supportService.DeletePost(c.Request.Context(), id); err != nil {
		log.Printf("Error deleting post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
