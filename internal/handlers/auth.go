package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mmyatt91/message.ly/internal/apperr"
	"github.com/mmyatt91/message.ly/internal/auth"
	"github.com/mmyatt91/message.ly/internal/dto"
	"github.com/mmyatt91/message.ly/internal/service"
)

// AuthHandler handles login and registration. Both end the same way: a
// signed bearer token and a last-login update.
type AuthHandler struct {
	userSvc  *service.UserService
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(userSvc *service.UserService, secret []byte, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{userSvc: userSvc, secret: secret, tokenTTL: tokenTTL}
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.Validation(err.Error()))
		return
	}
	user, err := h.userSvc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	h.issueToken(c, user.Username)
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "New user"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  map[string]interface{}
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.Validation(err.Error()))
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), req.Username, req.Password,
		req.FirstName, req.LastName, req.Phone)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	h.issueToken(c, user.Username)
}

// issueToken signs a token for username, records the login, and writes the
// {token} response.
func (h *AuthHandler) issueToken(c *gin.Context, username string) {
	token, err := auth.IssueToken(username, h.secret, h.tokenTTL)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	if err := h.userSvc.TouchLastLogin(c.Request.Context(), username); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
