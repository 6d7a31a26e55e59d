package handlers

import (
	"errors"
	"net/http"

	"blogapi/internal/metrics"
	"blogapi/internal/models"
	"blogapi/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"s3cret!"`
}

// LoginRequest is the sign-in payload.
type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"s3cret!"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Account"
// @Success      201   {object}  map[string]interface{}  "message, id"
// @Failure      400   {object}  map[string]string
// @Router       /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_register_failed", "username", input.Username, "err", err)
		}
		h.respondError(c, err, "failed to register user", "auth_register_error")
		return
	}

	metrics.RegistrationsTotal.Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "user registered", "id": id})
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  LoginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, user, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthentication) {
			metrics.AuthFailure(metrics.ReasonInvalidCredentials)
		}
		if h.log != nil {
			h.log.Infow("auth_login_failed", "email", input.Email, "err", err)
		}
		h.respondError(c, err, "failed to log in", "auth_login_error")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Message: "login successful", Token: token, User: user})
}
