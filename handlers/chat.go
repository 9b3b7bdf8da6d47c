package handlers

import (
	"net/http"
	"strings"

	"carelink/services/chat"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler serves the advisory chat.
type ChatHandler struct {
	Chat chat.ChatService
}

func NewChatHandler(chatSvc chat.ChatService) *ChatHandler {
	return &ChatHandler{Chat: chatSvc}
}

// SendChatMessageHandler appends a patient message and returns the advisor
// reply. Blank input is still answered with the general-guidance fallback;
// "no information" is a valid triage outcome, not a client error.
func (h *ChatHandler) SendChatMessageHandler(c *gin.Context) {
	logger := getLogger(c)
	patientID := c.GetString("patientID")

	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	reply, err := h.Chat.Send(c.Request.Context(), patientID, strings.TrimSpace(input.Text))
	if err != nil {
		logger.Error("SendChatMessageHandler: send failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to process message", err.Error())
		return
	}
	c.JSON(http.StatusOK, reply)
}

// ChatHistoryHandler returns the full conversation, oldest first.
func (h *ChatHandler) ChatHistoryHandler(c *gin.Context) {
	patientID := c.GetString("patientID")
	msgs, err := h.Chat.History(c.Request.Context(), patientID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load conversation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// ResetChatHandler clears the conversation.
func (h *ChatHandler) ResetChatHandler(c *gin.Context) {
	patientID := c.GetString("patientID")
	if err := h.Chat.Reset(c.Request.Context(), patientID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to reset conversation", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
