package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mmyatt91/message.ly/internal/apperr"
	"github.com/mmyatt91/message.ly/internal/auth"
	"github.com/mmyatt91/message.ly/internal/dto"
	"github.com/mmyatt91/message.ly/internal/service"
)

// MessageHandler serves message viewing, sending and read receipts.
type MessageHandler struct {
	svc *service.MessageService
}

// NewMessageHandler returns a new MessageHandler.
func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// Get godoc
// @Summary      Get a message
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Message ID"
// @Success      200  {object}  dto.MessageDetailEnvelope
// @Failure      401  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /messages/{id} [get]
func (h *MessageHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	msg, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	// Only the sender or the recipient may view a message. The comparison
	// uses the stored participants, never anything client-supplied.
	username := auth.CurrentUsername(c)
	if msg.From.Username != username && msg.To.Username != username {
		apperr.Respond(c, apperr.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, dto.MessageDetailEnvelope{Message: dto.DetailToResponse(msg)})
}

// Send godoc
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.SendMessageRequest  true  "Message"
// @Success      200   {object}  dto.MessageEnvelope
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]interface{}
// @Router       /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.Validation(err.Error()))
		return
	}
	msg, err := h.svc.Send(c.Request.Context(), auth.CurrentUsername(c), req.ToUsername, req.Body)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageEnvelope{Message: dto.MessageToResponse(msg)})
}

// MarkRead godoc
// @Summary      Mark a message as read
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Message ID"
// @Success      200  {object}  dto.ReadReceiptEnvelope
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	// The recipient check runs against the stored message before the write.
	msg, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	if msg.To.Username != auth.CurrentUsername(c) {
		apperr.Respond(c, apperr.ErrUnauthorized)
		return
	}
	updated, err := h.svc.MarkRead(c.Request.Context(), id)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReadReceiptEnvelope{Message: dto.ReadReceiptResponse{
		ID:     updated.ID,
		ReadAt: updated.ReadAt,
	}})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		apperr.Respond(c, apperr.Validation("invalid id"))
		return 0, false
	}
	return id, true
}
