package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteldesk/models"
	"hoteldesk/services/agent"
	"hoteldesk/services/session"
	"hoteldesk/utils"
)

// ChatHandler exposes the conversational agent over HTTP.
type ChatHandler struct {
	Agent agent.Service
}

func NewChatHandler(svc agent.Service) *ChatHandler {
	return &ChatHandler{Agent: svc}
}

// StartSession opens a new conversation and returns the greeting.
func (h *ChatHandler) StartSession(c *gin.Context) {
	var req models.StartSessionRequest
	// Body is optional; an anonymous caller gets a session without a user id.
	_ = c.ShouldBindJSON(&req)

	resp, err := h.Agent.StartSession(c.Request.Context(), req.UserID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start session", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PostMessage feeds one utterance into the session's dialogue.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	reply, err := h.Agent.PostMessage(c.Request.Context(), sessionID, req.Text)
	if err != nil {
		if errors.Is(err, session.ErrUnknownSession) {
			utils.JSONError(c, http.StatusNotFound, "session not found or expired", sessionID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to process message", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.ChatResponse{Response: reply})
}

// GetHistory returns the ordered turn log of a session.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	sessionID := c.Param("sessionID")
	turns, err := h.Agent.GetHistory(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, session.ErrUnknownSession) {
			utils.JSONError(c, http.StatusNotFound, "session not found or expired", sessionID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load history", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.HistoryResponse{SessionID: sessionID, Turns: turns})
}

// EndSession closes a conversation. Calling it twice is a no-op.
func (h *ChatHandler) EndSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Agent.EndSession(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to end session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ended", "sessionId": sessionID})
}
