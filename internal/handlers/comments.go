package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errListComments  = "failed to load comments"
	errGetComment    = "failed to load comment"
	errCreateComment = "failed to add comment"
	errDeleteComment = "failed to delete comment"
)

// CommentRequest is the add-comment payload.
type CommentRequest struct {
	Content string `json:"content" example:"Nice post"`
}

// @Summary      List comments of an article
// @Tags         comments
// @Produce      json
// @Param        id   path      int  true  "Article ID"
// @Success      200  {array}   models.Comment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id}/comments [get]
func (h *Handler) listComments(c *gin.Context) {
	articleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	comments, err := h.services.Comments.ListByArticle(c.Request.Context(), articleID)
	if err != nil {
		h.respondError(c, err, errListComments, "comment_list_failed", "article_id", articleID)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// @Summary      Get comment
// @Tags         comments
// @Produce      json
// @Param        id   path      int  true  "Comment ID"
// @Success      200  {object}  models.Comment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [get]
func (h *Handler) getComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	comment, err := h.services.Comments.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, errGetComment, "comment_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// @Summary      Add comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Article ID"
// @Param        body  body      CommentRequest  true  "Comment"
// @Success      201   {object}  map[string]interface{}  "message, comment"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /articles/{id}/comments [post]
// @Security     BearerAuth
func (h *Handler) createComment(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	articleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req CommentRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	comment, err := h.services.Comments.Create(c.Request.Context(), p, articleID, req.Content)
	if err != nil {
		h.respondError(c, err, errCreateComment, "comment_create_failed", "article_id", articleID, "user_id", p.ID)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "comment added", "comment": comment})
}

// @Summary      Delete comment
// @Description  Author or admin only
// @Tags         comments
// @Produce      json
// @Param        id   path      int  true  "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteComment(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.services.Comments.Delete(c.Request.Context(), p, id); err != nil {
		h.respondError(c, err, errDeleteComment, "comment_delete_failed", "id", id, "user_id", p.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
