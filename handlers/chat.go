package handlers

import (
	"net/http"

	"fixify/models"
	"fixify/services/chat"
	"fixify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler drives per-user chat sessions: connect, open a booking's
// room, send, poll messages, close.
type ChatHandler struct {
	Manager *chat.Manager
	Logger  *zap.Logger
}

// NewChatHandler creates the chat handler.
func NewChatHandler(manager *chat.Manager, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Manager: manager, Logger: logger}
}

// Connect establishes the user's live socket connection.
func (h *ChatHandler) Connect(c *gin.Context) {
	user := models.User{ID: c.GetString("userID")}
	if _, err := h.Manager.Session(user, c.GetString("token")); err != nil {
		h.Logger.Error("chat socket connect failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "chat service unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "connected"})
}

// Disconnect tears the connection down.
func (h *ChatHandler) Disconnect(c *gin.Context) {
	h.Manager.Disconnect(c.GetString("userID"))
	c.JSON(http.StatusOK, gin.H{"status": "disconnected"})
}

// Open joins a booking's room, replacing local state with its history.
func (h *ChatHandler) Open(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	if err := sess.OpenChat(c.Request.Context(), c.Param("bookingID")); err != nil {
		h.Logger.Error("chat open failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to open chat"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"activeBookingId": sess.ActiveBookingID(),
		"messages":        sess.Messages(),
	})
}

// Send emits a message to the active room.
func (h *ChatHandler) Send(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := sess.SendMessage(input.Message); err != nil {
		h.Logger.Error("chat send failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

// Messages returns the current room's message list.
func (h *ChatHandler) Messages(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"activeBookingId": sess.ActiveBookingID(),
		"messages":        sess.Messages(),
	})
}

// Close leaves the overlay: clears room id and message list.
func (h *ChatHandler) Close(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	sess.CloseChat()
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}

func (h *ChatHandler) session(c *gin.Context) (*chat.Session, bool) {
	sess, ok := h.Manager.Active(c.GetString("userID"))
	if !ok {
		utils.JSONError(c, http.StatusConflict, "chat socket is not connected", "call connect before opening a room")
		return nil, false
	}
	return sess, true
}
