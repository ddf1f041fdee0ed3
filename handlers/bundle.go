package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Assistant endpoints
	ProcessMessage         gin.HandlerFunc
	ConfirmParticipant     gin.HandlerFunc
	AddExternalParticipant gin.HandlerFunc
	SelectSlot             gin.HandlerFunc
	ScheduleMeeting        gin.HandlerFunc
	RequestTimeChange      gin.HandlerFunc
	CancelSession          gin.HandlerFunc

	// Directory endpoints
	ListParticipants   gin.HandlerFunc
	SearchParticipants gin.HandlerFunc

	// Meeting endpoints
	GetMeetingByID gin.HandlerFunc
	ListMeetings   gin.HandlerFunc

	// Auth endpoints
	IssueToken gin.HandlerFunc
}
