package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/timekeep-simple/dto"
	"github.com/timekeep-simple/models"
	"github.com/timekeep-simple/services"
)

// TimerController handles timer-related API endpoints
type TimerController struct {
	timerService   *services.TimerService
	sessionService *services.SessionService
	billingService *services.BillingService
}

// NewTimerController creates a new timer controller
func NewTimerController() *TimerController {
	return &TimerController{
		timerService:   services.NewTimerService(),
		sessionService: services.NewSessionService(),
		billingService: services.NewBillingService(),
	}
}

// RegisterRoutes registers timer routes
func (tc *TimerController) RegisterRoutes(router *gin.RouterGroup) {
	timers := router.Group("/timers")
	{
		timers.GET("/:id", tc.GetTimer)
		timers.PUT("/:id", tc.UpdateTimer)
		timers.DELETE("/:id", tc.DeleteTimer)
		timers.POST("/:id/start", tc.StartTimer)
		timers.POST("/:id/stop", tc.StopTimer)
		timers.GET("/:id/total", tc.GetTimerTotal)
		timers.GET("/:id/sessions", tc.ListSessions)
	}

	projects := router.Group("/projects")
	{
		projects.GET("/:id/timers", tc.ListTimers)
		projects.POST("/:id/timers", tc.CreateTimer)
	}
}

func timerResponse(timer models.Timer, running bool) dto.TimerResponse {
	return dto.TimerResponse{
		ID:         timer.ID,
		TaskName:   timer.TaskName,
		ProjectID:  timer.ProjectID,
		HourlyRate: timer.HourlyRate.StringFixed(2),
		Running:    running,
		CreatedAt:  timer.CreatedAt,
		UpdatedAt:  timer.UpdatedAt,
	}
}

// ListTimers retrieves all timers under a project
func (tc *TimerController) ListTimers(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	timers, err := tc.timerService.ListTimers(ctx.Param("id"), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   timers,
	})
}

// GetTimer retrieves a timer with its sessions, each with derived duration
// and cost
func (tc *TimerController) GetTimer(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	timer, err := tc.timerService.GetTimer(ctx.Param("id"), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	now := time.Now()
	running := false
	sessions := make([]dto.SessionResponse, 0, len(timer.Sessions))
	for _, session := range timer.Sessions {
		if session.IsOpen() {
			running = true
		}
		sessions = append(sessions, services.SessionResponse(session, timer.HourlyRate, now))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"timer":    timerResponse(timer, running),
			"sessions": sessions,
		},
	})
}

// CreateTimer creates a new timer under a project
func (tc *TimerController) CreateTimer(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateTimerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	timer, err := tc.timerService.CreateTimer(ctx.Param("id"), req.TaskName, req.HourlyRate, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   timerResponse(timer, false),
	})
}

// UpdateTimer modifies a timer's task name and hourly rate
func (tc *TimerController) UpdateTimer(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTimerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	timer, err := tc.timerService.UpdateTimer(ctx.Param("id"), req.TaskName, req.HourlyRate, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	// The rename does not touch sessions, so report the live state
	running, err := tc.timerService.TimerRunning(timer.ID, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   timerResponse(timer, running),
	})
}

// DeleteTimer deletes a timer and its sessions
func (tc *TimerController) DeleteTimer(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if err := tc.timerService.DeleteTimer(ctx.Param("id"), userID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Timer deleted successfully",
	})
}

// StartTimer opens a new session on the timer
func (tc *TimerController) StartTimer(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	session, err := tc.sessionService.StartTimer(ctx.Param("id"), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data": gin.H{
			"sessionId": session.ID,
			"startTime": session.StartTime,
		},
	})
}

// StopTimer closes the timer's open session and attaches the note
func (tc *TimerController) StopTimer(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	// Body is optional: stopping without a note is valid
	var req dto.StopTimerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	session, err := tc.sessionService.StopTimer(ctx.Param("id"), req.Note, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"sessionId": session.ID,
			"endTime":   session.EndTime,
		},
	})
}

// GetTimerTotal returns the timer's aggregated duration and cost
func (tc *TimerController) GetTimerTotal(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	total, err := tc.billingService.TimerTotal(ctx.Param("id"), userID, time.Now())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   total,
	})
}

// ListSessions retrieves all sessions of a timer
func (tc *TimerController) ListSessions(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	timer, err := tc.timerService.GetTimer(ctx.Param("id"), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	now := time.Now()
	sessions := make([]dto.SessionResponse, 0, len(timer.Sessions))
	for _, session := range timer.Sessions {
		sessions = append(sessions, services.SessionResponse(session, timer.HourlyRate, now))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   sessions,
	})
}
