package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmyatt91/message.ly/internal/apperr"
	"github.com/mmyatt91/message.ly/internal/dto"
	"github.com/mmyatt91/message.ly/internal/service"
)

// UserHandler serves the user directory, profiles and message feeds.
type UserHandler struct {
	svc *service.UserService
}

// NewUserHandler returns a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UsersEnvelope
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	list, err := h.svc.All(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UsersEnvelope{Users: dto.SummariesToResponses(list)})
}

// Get godoc
// @Summary      Get a user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  dto.UserEnvelope
// @Failure      401       {object}  map[string]interface{}
// @Failure      403       {object}  map[string]interface{}
// @Failure      404       {object}  map[string]interface{}
// @Router       /users/{username} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.svc.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserEnvelope{User: dto.UserToResponse(user)})
}

// MessagesTo godoc
// @Summary      List messages received by a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  dto.InboxEnvelope
// @Failure      401       {object}  map[string]interface{}
// @Failure      403       {object}  map[string]interface{}
// @Router       /users/{username}/to [get]
func (h *UserHandler) MessagesTo(c *gin.Context) {
	list, err := h.svc.MessagesTo(c.Request.Context(), c.Param("username"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.InboxEnvelope{Messages: dto.InboxToResponses(list)})
}

// MessagesFrom godoc
// @Summary      List messages sent by a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  dto.OutboxEnvelope
// @Failure      401       {object}  map[string]interface{}
// @Failure      403       {object}  map[string]interface{}
// @Router       /users/{username}/from [get]
func (h *UserHandler) MessagesFrom(c *gin.Context) {
	list, err := h.svc.MessagesFrom(c.Request.Context(), c.Param("username"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OutboxEnvelope{Messages: dto.OutboxToResponses(list)})
}
