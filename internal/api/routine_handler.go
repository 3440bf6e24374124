package api

import (
	"fitmanager/routine-service/internal/domain"
	"fitmanager/routine-service/internal/repository"
	"fitmanager/routine-service/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoutineHandler holds the routine service dependency.
type RoutineHandler struct {
	routineService service.RoutineService
	log            logrus.FieldLogger
}

// NewRoutineHandler creates a new RoutineHandler.
func NewRoutineHandler(routineService service.RoutineService, log logrus.FieldLogger) *RoutineHandler {
	return &RoutineHandler{routineService: routineService, log: log}
}

// --- DTOs for API (Data Transfer Objects) ---

// WorkoutExerciseResponse is one routine entry. Exercise is null when the referenced
// catalog entry no longer exists.
type WorkoutExerciseResponse struct {
	ExerciseID string            `json:"exerciseId"`
	Exercise   *ExerciseResponse `json:"exercise"`
	Sets       []domain.Set      `json:"sets"`
	Notes      string            `json:"notes,omitempty"`
	Order      int               `json:"order"`
}

// RoutineResponse is the DTO for returning routine details.
type RoutineResponse struct {
	ID                string                    `json:"id"`
	Name              string                    `json:"name"`
	Description       string                    `json:"description,omitempty"`
	UserID            string                    `json:"userId"`
	Exercises         []WorkoutExerciseResponse `json:"exercises"`
	Tags              []string                  `json:"tags"`
	Difficulty        domain.Difficulty         `json:"difficulty"`
	EstimatedDuration int                       `json:"estimatedDuration"`
	IsPublic          bool                      `json:"isPublic"`
	Category          domain.Category           `json:"category"`
	Equipment         []domain.Equipment        `json:"equipment"`
	IsActive          bool                      `json:"isActive"`
	CreatedAt         time.Time                 `json:"createdAt"`
	UpdatedAt         time.Time                 `json:"updatedAt"`
}

type RoutineListResponse struct {
	Routines []RoutineResponse `json:"routines"`
	PageResponse
}

type PopularRoutinesResponse struct {
	Routines []RoutineResponse `json:"routines"`
}

type RoutineSummaryResponse struct {
	Total        int64                `json:"total"`
	ByCategory   []domain.CountBucket `json:"byCategory"`
	ByDifficulty []domain.CountBucket `json:"byDifficulty"`
	ByDuration   []domain.CountBucket `json:"byDuration"`
}

func mapExerciseRef(ex *domain.Exercise) *ExerciseResponse {
	if ex == nil {
		return nil
	}
	resp := MapExerciseToResponse(ex)
	return &resp
}

// MapRoutineToResponse converts a resolved routine to RoutineResponse DTO.
func MapRoutineToResponse(rt *service.ResolvedRoutine) RoutineResponse {
	entries := make([]WorkoutExerciseResponse, len(rt.Routine.Exercises))
	for i, we := range rt.Routine.Exercises {
		var resolved *domain.Exercise
		if i < len(rt.Exercises) {
			resolved = rt.Exercises[i]
		}
		entries[i] = WorkoutExerciseResponse{
			ExerciseID: we.ExerciseID.Hex(),
			Exercise:   mapExerciseRef(resolved),
			Sets:       orEmpty(we.Sets),
			Notes:      we.Notes,
			Order:      we.Order,
		}
	}
	return RoutineResponse{
		ID:                rt.ID.Hex(),
		Name:              rt.Name,
		Description:       rt.Description,
		UserID:            rt.OwnerID,
		Exercises:         entries,
		Tags:              orEmpty(rt.Tags),
		Difficulty:        rt.Difficulty,
		EstimatedDuration: rt.EstimatedDuration,
		IsPublic:          rt.IsPublic,
		Category:          rt.Category,
		Equipment:         orEmpty(rt.Equipment),
		IsActive:          rt.IsActive,
		CreatedAt:         rt.CreatedAt,
		UpdatedAt:         rt.UpdatedAt,
	}
}

// MapRoutinesToResponse converts a slice of resolved routines.
func MapRoutinesToResponse(routines []service.ResolvedRoutine) []RoutineResponse {
	responses := make([]RoutineResponse, len(routines))
	for i := range routines {
		responses[i] = MapRoutineToResponse(&routines[i])
	}
	return responses
}

// --- Handler Methods ---

// ListRoutines godoc
// @Summary List the caller's active routines
// @Tags Routines
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category"
// @Param difficulty query string false "Difficulty"
// @Param isPublic query bool false "Public flag"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} RoutineListResponse
// @Router /routines [get]
func (h *RoutineHandler) ListRoutines(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	page, ok := parsePage(c, defaultPageSize)
	if !ok {
		return
	}
	isPublic, ok := queryBool(c, "isPublic")
	if !ok {
		return
	}
	filter := repository.RoutineFilter{
		OwnerID:    userID,
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		IsPublic:   isPublic,
	}

	routines, total, err := h.routineService.ListRoutines(c.Request.Context(), filter, page)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, RoutineListResponse{
		Routines:     MapRoutinesToResponse(routines),
		PageResponse: newPageResponse(page, total),
	})
}

// ListPopularRoutines godoc
// @Summary Newest public routines of all users
// @Tags Routines
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max results (default 10, max 100)"
// @Success 200 {object} PopularRoutinesResponse
// @Router /routines/popular [get]
func (h *RoutineHandler) ListPopularRoutines(c *gin.Context) {
	limit, ok := parseLimit(c, defaultPageSize)
	if !ok {
		return
	}
	routines, err := h.routineService.ListPopularRoutines(c.Request.Context(), limit)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, PopularRoutinesResponse{Routines: MapRoutinesToResponse(routines)})
}

// SummarizeRoutines godoc
// @Summary Group the caller's active routines
// @Tags Routines
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RoutineSummaryResponse
// @Router /routines/summary [get]
func (h *RoutineHandler) SummarizeRoutines(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	summary, err := h.routineService.SummarizeRoutines(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, RoutineSummaryResponse{
		Total:        summary.Total,
		ByCategory:   orEmpty(summary.ByCategory),
		ByDifficulty: orEmpty(summary.ByDifficulty),
		ByDuration:   orEmpty(summary.ByDuration),
	})
}

// GetRoutine godoc
// @Summary Get a routine owned by the caller or public
// @Tags Routines
// @Produce json
// @Security BearerAuth
// @Param id path string true "Routine ID"
// @Success 200 {object} RoutineResponse
// @Failure 404 {object} gin.H "Routine not found"
// @Router /routines/{id} [get]
func (h *RoutineHandler) GetRoutine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	routineID, ok := routineIDParam(c)
	if !ok {
		return
	}

	routine, err := h.routineService.GetRoutine(c.Request.Context(), routineID, userID)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapRoutineToResponse(routine))
}

// CreateRoutine godoc
// @Summary Create a routine owned by the caller
// @Tags Routines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param routine body service.RoutineInput true "Routine"
// @Success 201 {object} RoutineResponse
// @Failure 400 {object} gin.H "Validation error"
// @Router /routines [post]
func (h *RoutineHandler) CreateRoutine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req service.RoutineInput
	if !bindJSON(c, &req) {
		return
	}

	routine, err := h.routineService.CreateRoutine(c.Request.Context(), userID, req)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, MapRoutineToResponse(routine))
}

// UpdateRoutine godoc
// @Summary Replace an owned routine
// @Tags Routines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Routine ID"
// @Param routine body service.RoutineInput true "Routine"
// @Success 200 {object} RoutineResponse
// @Failure 400 {object} gin.H "Validation error"
// @Failure 404 {object} gin.H "Routine not found"
// @Router /routines/{id} [put]
func (h *RoutineHandler) UpdateRoutine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	routineID, ok := routineIDParam(c)
	if !ok {
		return
	}
	var req service.RoutineInput
	if !bindJSON(c, &req) {
		return
	}

	routine, err := h.routineService.UpdateRoutine(c.Request.Context(), routineID, userID, req)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapRoutineToResponse(routine))
}

// DeleteRoutine godoc
// @Summary Delete an owned routine
// @Tags Routines
// @Produce json
// @Security BearerAuth
// @Param id path string true "Routine ID"
// @Success 200 {object} gin.H "Routine deleted successfully"
// @Failure 404 {object} gin.H "Routine not found"
// @Router /routines/{id} [delete]
func (h *RoutineHandler) DeleteRoutine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	routineID, ok := routineIDParam(c)
	if !ok {
		return
	}

	if err := h.routineService.DeleteRoutine(c.Request.Context(), routineID, userID); err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Routine deleted successfully"})
}

// routineIDParam parses :id. A malformed id never matches a routine.
func routineIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	routineID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Routine not found")
		return primitive.NilObjectID, false
	}
	return routineID, true
}
