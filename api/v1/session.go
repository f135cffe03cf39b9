package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/timekeep-simple/dto"
	"github.com/timekeep-simple/services"
)

// SessionController handles session-related API endpoints
type SessionController struct {
	sessionService *services.SessionService
}

// NewSessionController creates a new session controller
func NewSessionController() *SessionController {
	return &SessionController{
		sessionService: services.NewSessionService(),
	}
}

// RegisterRoutes registers session routes
func (sc *SessionController) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/sessions")
	{
		// The collection endpoint lists open sessions only: closed sessions
		// are always read through their timer.
		sessions.GET("", sc.ListRunningSessions)
		sessions.PUT("/:id/note", sc.UpdateNote)
		sessions.PUT("/:id/deliverable", sc.AssignDeliverable)
		sessions.DELETE("/:id", sc.DeleteSession)
	}
}

// ListRunningSessions retrieves all currently open sessions across the
// user's customers. Elapsed time is recomputed from the stored start
// timestamp on every call; there is no server-side ticking.
func (sc *SessionController) ListRunningSessions(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	running, err := sc.sessionService.ListRunningSessions(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	now := time.Now()
	responses := make([]dto.RunningSessionResponse, 0, len(running))
	for _, session := range running {
		responses = append(responses, dto.RunningSessionResponse{
			SessionResponse: services.SessionResponse(session, session.Timer.HourlyRate, now),
			TaskName:        session.Timer.TaskName,
			ProjectName:     session.Timer.Project.Name,
			CustomerName:    session.Timer.Project.Customer.Name,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   responses,
	})
}

// UpdateNote edits a session's note
func (sc *SessionController) UpdateNote(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSessionNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	session, err := sc.sessionService.UpdateSessionNote(ctx.Param("id"), req.Note, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"sessionId": session.ID,
			"note":      session.Note,
		},
	})
}

// AssignDeliverable tags a session with one of its project's deliverables,
// or clears the tag when deliverableId is null
func (sc *SessionController) AssignDeliverable(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.AssignDeliverableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	session, err := sc.sessionService.AssignDeliverable(ctx.Param("id"), req.DeliverableID, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"sessionId":     session.ID,
			"deliverableId": session.DeliverableID,
		},
	})
}

// DeleteSession removes a single session
func (sc *SessionController) DeleteSession(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if err := sc.sessionService.DeleteSession(ctx.Param("id"), userID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Session deleted successfully",
	})
}
