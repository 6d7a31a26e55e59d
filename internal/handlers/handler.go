package handlers

import (
	"net/http"
	"strconv"

	"blogapi/internal/logger"
	"blogapi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID, h.requestLogger, observeMetrics)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerArticleRoutes(router)
	h.registerCommentRoutes(router)
	h.registerUserRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

func (h *Handler) registerArticleRoutes(r *gin.Engine) {
	articles := r.Group("/articles")
	{
		articles.GET("", h.listArticles)
		articles.POST("/search", h.searchArticles)
		articles.GET("/:id", h.getArticle)
		articles.GET("/:id/comments", h.listComments)
	}

	protected := articles.Group("", h.authenticate)
	{
		protected.POST("", h.createArticle)
		protected.PUT("/:id", h.updateArticle)
		protected.DELETE("/:id", h.authorizeAdmin, h.deleteArticle)
		protected.POST("/:id/comments", h.createComment)
	}
}

func (h *Handler) registerCommentRoutes(r *gin.Engine) {
	comments := r.Group("/comments")
	{
		comments.GET("/:id", h.getComment)
		comments.DELETE("/:id", h.authenticate, h.deleteComment)
	}
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	users := r.Group("/users", h.authenticate)
	{
		users.GET("", h.authorizeAdmin, h.listUsers)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.authorizeAdmin, h.deleteUser)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseIDParam reads a positive integer path parameter. On failure it
// writes 400 and returns false.
func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID})
		return 0, false
	}
	return id, true
}
