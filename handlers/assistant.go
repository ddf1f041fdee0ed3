package handlers

import (
	"errors"
	"net/http"

	"smartmeet/services/assistant"
	"smartmeet/services/resolver"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the scheduling conversation over HTTP. Every
// endpoint returns the assistant response envelope on success.
type AssistantHandler struct {
	Svc    assistant.AssistantService
	Logger *zap.Logger
}

func NewAssistantHandler(svc assistant.AssistantService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{Svc: svc, Logger: logger}
}

// ProcessMessage handles a free-text scheduling request.
func (h *AssistantHandler) ProcessMessage(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId"`
		Text      string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Svc.ProcessMessage(c.Request.Context(), input.SessionID, input.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmParticipant resolves one ambiguous participant query.
func (h *AssistantHandler) ConfirmParticipant(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Query string `json:"query" binding:"required"`
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Svc.ConfirmParticipant(c.Request.Context(), sessionID, input.Query, input.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddExternalParticipant resolves a query to an out-of-directory email.
func (h *AssistantHandler) AddExternalParticipant(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Query string `json:"query"`
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Svc.AddExternalParticipant(c.Request.Context(), sessionID, input.Query, input.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SelectSlot picks one of the suggested slots for the draft.
func (h *AssistantHandler) SelectSlot(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		SlotIndex *int `json:"slotIndex" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Svc.SelectSlot(c.Request.Context(), sessionID, *input.SlotIndex)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ScheduleMeeting commits the drafted meeting.
func (h *AssistantHandler) ScheduleMeeting(c *gin.Context) {
	resp, err := h.Svc.ScheduleMeeting(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RequestTimeChange asks for alternatives to the drafted start time.
func (h *AssistantHandler) RequestTimeChange(c *gin.Context) {
	resp, err := h.Svc.RequestTimeChange(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CancelSession discards the conversation.
func (h *AssistantHandler) CancelSession(c *gin.Context) {
	resp, err := h.Svc.CancelSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AssistantHandler) respondError(c *gin.Context, err error) {
	var validationErr *resolver.ValidationError
	var sessionErr *assistant.SessionError
	var storeErr *assistant.StoreError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &sessionErr):
		c.JSON(http.StatusConflict, gin.H{"error": sessionErr.Message})
	case errors.As(err, &storeErr):
		h.Logger.Error("meeting save failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to save the meeting, please retry"})
	default:
		h.Logger.Error("assistant operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
