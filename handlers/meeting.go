package handlers

import (
	"net/http"
	"time"

	meetingRepo "smartmeet/database/repository/meeting"

	"github.com/gin-gonic/gin"
)

// MeetingHandler exposes scheduled meetings for calendar-style views.
type MeetingHandler struct {
	Repo meetingRepo.Repository
}

func NewMeetingHandler(repo meetingRepo.Repository) *MeetingHandler {
	return &MeetingHandler{Repo: repo}
}

// GetMeetingByID fetches one meeting.
func (h *MeetingHandler) GetMeetingByID(c *gin.Context) {
	meeting, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch meeting"})
		return
	}
	if meeting == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meeting not found"})
		return
	}
	c.JSON(http.StatusOK, meeting)
}

// ListMeetings returns scheduled meetings in [from, to): ?from=&to= using
// the 2006-01-02 date format. Defaults cover the next seven days.
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" {
		from = time.Now().Format("2006-01-02")
	}
	if to == "" {
		day, err := time.Parse("2006-01-02", from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		to = day.AddDate(0, 0, 7).Format("2006-01-02")
	}

	meetings, err := h.Repo.ListByDateRange(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list meetings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}
