package handlers

import (
	"net/http"

	"blogapi/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errListArticles  = "failed to load articles"
	errGetArticle    = "failed to load article"
	errCreateArticle = "failed to create article"
	errUpdateArticle = "failed to update article"
	errDeleteArticle = "failed to delete article"
)

// ArticleRequest is the create/update payload.
type ArticleRequest struct {
	Title   string `json:"title" example:"Hello"`
	Content string `json:"content" example:"First post"`
}

// SearchRequest is the title search payload.
type SearchRequest struct {
	Title string `json:"title" example:"go"`
}

// @Summary      List articles
// @Tags         articles
// @Produce      json
// @Success      200  {array}   models.Article
// @Failure      500  {object}  map[string]string
// @Router       /articles [get]
func (h *Handler) listArticles(c *gin.Context) {
	articles, err := h.services.Articles.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, errListArticles, "article_list_failed")
		return
	}
	c.JSON(http.StatusOK, articles)
}

// @Summary      Search articles by title
// @Description  Case-insensitive substring match; % and _ are literal
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body      SearchRequest  true  "Needle"
// @Success      200   {array}   models.Article
// @Failure      400   {object}  map[string]string
// @Router       /articles/search [post]
func (h *Handler) searchArticles(c *gin.Context) {
	var req SearchRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	articles, err := h.services.Articles.Search(c.Request.Context(), req.Title)
	if err != nil {
		h.respondError(c, err, errListArticles, "article_search_failed", "title", req.Title)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// @Summary      Get article
// @Tags         articles
// @Produce      json
// @Param        id   path      int  true  "Article ID"
// @Success      200  {object}  models.Article
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id} [get]
func (h *Handler) getArticle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	article, err := h.services.Articles.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, errGetArticle, "article_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, article)
}

// @Summary      Create article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body      ArticleRequest  true  "Article"
// @Success      201   {object}  map[string]interface{}  "message, article"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /articles [post]
// @Security     BearerAuth
func (h *Handler) createArticle(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req ArticleRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	article, err := h.services.Articles.Create(c.Request.Context(), p, service.ArticleInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.respondError(c, err, errCreateArticle, "article_create_failed", "author_id", p.ID)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "article created", "article": article})
}

// @Summary      Update article
// @Description  Author or admin only
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Article ID"
// @Param        body  body      ArticleRequest  true  "Article"
// @Success      200   {object}  map[string]interface{}  "message, article"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /articles/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateArticle(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ArticleRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	article, err := h.services.Articles.Update(c.Request.Context(), p, id, service.ArticleInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.respondError(c, err, errUpdateArticle, "article_update_failed", "id", id, "user_id", p.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article updated", "article": article})
}

// @Summary      Delete article
// @Description  Admin only
// @Tags         articles
// @Produce      json
// @Param        id   path      int  true  "Article ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteArticle(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.services.Articles.Delete(c.Request.Context(), p, id); err != nil {
		h.respondError(c, err, errDeleteArticle, "article_delete_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}
