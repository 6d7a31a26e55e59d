package handlers

import (
	"net/http"

	"blogapi/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errListUsers  = "failed to load users"
	errGetUser    = "failed to load user"
	errUpdateUser = "failed to update user"
	errDeleteUser = "failed to delete user"
)

// UserUpdateRequest is a partial update. Omitted or empty fields are left
// unchanged; a whitespace-only value counts as supplied and fails validation.
type UserUpdateRequest struct {
	Username string `json:"username,omitempty" example:"alice2"`
	Email    string `json:"email,omitempty" example:"alice2@example.com"`
	Password string `json:"password,omitempty"`
	// Admin only. Allowed: user, admin
	Role string `json:"role,omitempty" example:"user"`
}

// @Summary      List users
// @Description  Admin only
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	users, err := h.services.Users.List(c.Request.Context(), p)
	if err != nil {
		h.respondError(c, err, errListUsers, "user_list_failed")
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      Get user
// @Description  Self or admin
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.services.Users.Get(c.Request.Context(), p, id)
	if err != nil {
		h.respondError(c, err, errGetUser, "user_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Update user
// @Description  Self or admin; role changes are admin only
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User ID"
// @Param        body  body      UserUpdateRequest  true  "Fields to change"
// @Success      200   {object}  map[string]interface{}  "message, user"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateUser(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UserUpdateRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	user, err := h.services.Users.Update(c.Request.Context(), p, id, service.UserUpdateInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.respondError(c, err, errUpdateUser, "user_update_failed", "id", id, "by", p.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated", "user": user})
}

// @Summary      Delete user
// @Description  Admin only; an admin cannot delete their own account
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.services.Users.Delete(c.Request.Context(), p, id); err != nil {
		h.respondError(c, err, errDeleteUser, "user_delete_failed", "id", id)
		return
	}
	if h.log != nil {
		h.log.Infow("user_deleted", "id", id, "by", p.ID)
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
