package api

import (
	"fitmanager/routine-service/internal/domain"
	"fitmanager/routine-service/internal/repository"
	"fitmanager/routine-service/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// WorkoutLogHandler holds the workout log service dependency.
type WorkoutLogHandler struct {
	workoutLogService service.WorkoutLogService
	log               logrus.FieldLogger
}

// NewWorkoutLogHandler creates a new WorkoutLogHandler.
func NewWorkoutLogHandler(workoutLogService service.WorkoutLogService, log logrus.FieldLogger) *WorkoutLogHandler {
	return &WorkoutLogHandler{workoutLogService: workoutLogService, log: log}
}

// --- DTOs for API (Data Transfer Objects) ---

type LoggedExerciseResponse struct {
	ExerciseID string            `json:"exerciseId"`
	Exercise   *ExerciseResponse `json:"exercise"`
	Sets       []domain.Set      `json:"sets"`
	Notes      string            `json:"notes,omitempty"`
}

// RoutineRefResponse is the routine attached to a log. It carries the routine's own
// fields; its exercises are not resolved.
type RoutineRefResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description,omitempty"`
	Difficulty        domain.Difficulty `json:"difficulty"`
	Category          domain.Category   `json:"category"`
	EstimatedDuration int               `json:"estimatedDuration"`
	IsPublic          bool              `json:"isPublic"`
}

// WorkoutLogResponse is the DTO for returning a workout log. Routine is null when the
// routine was deleted or is no longer visible to the caller.
type WorkoutLogResponse struct {
	ID        string                   `json:"id"`
	UserID    string                   `json:"userId"`
	RoutineID string                   `json:"routineId"`
	Routine   *RoutineRefResponse      `json:"routine"`
	Exercises []LoggedExerciseResponse `json:"exercises"`
	StartTime time.Time                `json:"startTime"`
	EndTime   *time.Time               `json:"endTime,omitempty"`
	Duration  *float64                 `json:"duration,omitempty"`
	Notes     string                   `json:"notes,omitempty"`
	Rating    *int                     `json:"rating,omitempty"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

type WorkoutLogListResponse struct {
	Logs []WorkoutLogResponse `json:"logs"`
	PageResponse
}

func mapRoutineRef(rt *domain.Routine) *RoutineRefResponse {
	if rt == nil {
		return nil
	}
	return &RoutineRefResponse{
		ID:                rt.ID.Hex(),
		Name:              rt.Name,
		Description:       rt.Description,
		Difficulty:        rt.Difficulty,
		Category:          rt.Category,
		EstimatedDuration: rt.EstimatedDuration,
		IsPublic:          rt.IsPublic,
	}
}

// MapWorkoutLogToResponse converts a resolved workout log to WorkoutLogResponse DTO.
func MapWorkoutLogToResponse(l *service.ResolvedWorkoutLog) WorkoutLogResponse {
	entries := make([]LoggedExerciseResponse, len(l.WorkoutLog.Exercises))
	for i, le := range l.WorkoutLog.Exercises {
		var resolved *domain.Exercise
		if i < len(l.Exercises) {
			resolved = l.Exercises[i]
		}
		entries[i] = LoggedExerciseResponse{
			ExerciseID: le.ExerciseID.Hex(),
			Exercise:   mapExerciseRef(resolved),
			Sets:       orEmpty(le.Sets),
			Notes:      le.Notes,
		}
	}
	return WorkoutLogResponse{
		ID:        l.ID.Hex(),
		UserID:    l.OwnerID,
		RoutineID: l.RoutineID.Hex(),
		Routine:   mapRoutineRef(l.Routine),
		Exercises: entries,
		StartTime: l.StartTime,
		EndTime:   l.EndTime,
		Duration:  l.Duration,
		Notes:     l.Notes,
		Rating:    l.Rating,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// MapWorkoutLogsToResponse converts a slice of resolved workout logs.
func MapWorkoutLogsToResponse(logs []service.ResolvedWorkoutLog) []WorkoutLogResponse {
	responses := make([]WorkoutLogResponse, len(logs))
	for i := range logs {
		responses[i] = MapWorkoutLogToResponse(&logs[i])
	}
	return responses
}

// --- Handler Methods ---

// ListWorkoutLogs godoc
// @Summary List the caller's workout logs
// @Tags WorkoutLogs
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Inclusive lower bound on createdAt (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound on createdAt (RFC 3339 or YYYY-MM-DD)"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} WorkoutLogListResponse
// @Router /workout-logs [get]
func (h *WorkoutLogHandler) ListWorkoutLogs(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	page, ok := parsePage(c, defaultPageSize)
	if !ok {
		return
	}
	from, ok := queryDate(c, "startDate")
	if !ok {
		return
	}
	to, ok := queryDate(c, "endDate")
	if !ok {
		return
	}

	filter := repository.WorkoutLogFilter{OwnerID: userID, From: from, To: to}
	logs, total, err := h.workoutLogService.ListWorkoutLogs(c.Request.Context(), filter, page)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, WorkoutLogListResponse{
		Logs:         MapWorkoutLogsToResponse(logs),
		PageResponse: newPageResponse(page, total),
	})
}

// CreateWorkoutLog godoc
// @Summary Record a performed session
// @Tags WorkoutLogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param log body service.WorkoutLogInput true "Workout log"
// @Success 201 {object} WorkoutLogResponse
// @Failure 400 {object} gin.H "Validation error"
// @Router /workout-logs [post]
func (h *WorkoutLogHandler) CreateWorkoutLog(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req service.WorkoutLogInput
	if !bindJSON(c, &req) {
		return
	}

	workoutLog, err := h.workoutLogService.CreateWorkoutLog(c.Request.Context(), userID, req)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, MapWorkoutLogToResponse(workoutLog))
}
