package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/bot"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/dto"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/middleware"
	"github.com/gin-gonic/gin"
)

// MessageSender delivers a reply back to a chat. Satisfied by telegram.Client.
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// telegramHandler handles inbound Bot API webhook updates
type telegramHandler struct {
	dispatcher *bot.Dispatcher
	sender     MessageSender
}

func newTelegramHandler(dispatcher *bot.Dispatcher, sender MessageSender) *telegramHandler {
	return &telegramHandler{
		dispatcher: dispatcher,
		sender:     sender,
	}
}

// registerTelegramRoutes registers the webhook endpoint
func registerTelegramRoutes(r *gin.Engine, dispatcher *bot.Dispatcher, sender MessageSender) {
	h := newTelegramHandler(dispatcher, sender)
	r.POST("/telegram-bot", h.handleUpdate)
}

// handleUpdate processes one webhook update. Updates without a text message
// are acknowledged without action so Telegram stops retrying them.
func (h *telegramHandler) handleUpdate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var update dto.TelegramUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		logger.Warn("Malformed webhook payload", slog.String("error", err.Error()))
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	if update.Message == nil || update.Message.Text == "" {
		c.String(http.StatusOK, "OK")
		return
	}

	chatID := update.Message.Chat.ID
	logger = logger.With(slog.Int64("chat_id", chatID), slog.Int64("update_id", update.UpdateID))
	logger.Info("Received webhook update")

	reply := h.dispatcher.HandleMessage(c.Request.Context(), chatID, update.Message.Text)

	if err := h.sender.SendMessage(c.Request.Context(), chatID, reply); err != nil {
		logger.Error("Failed to send reply", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Error")
		return
	}

	c.String(http.StatusOK, "OK")
}
