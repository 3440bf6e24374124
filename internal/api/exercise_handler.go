package api

import (
	"bytes"
	"encoding/json"
	"fitmanager/routine-service/internal/domain"
	"fitmanager/routine-service/internal/repository"
	"fitmanager/routine-service/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	log             logrus.FieldLogger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, log logrus.FieldLogger) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, log: log}
}

// --- DTOs for API (Data Transfer Objects) ---

// BulkCreateExercisesRequest wraps the batch so the array check can report its own message.
type BulkCreateExercisesRequest struct {
	Exercises json.RawMessage `json:"exercises"`
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description,omitempty"`
	MuscleGroups []domain.MuscleGroup `json:"muscleGroups"`
	Equipment    []domain.Equipment   `json:"equipment"`
	Difficulty   domain.Difficulty    `json:"difficulty"`
	Instructions []string             `json:"instructions"`
	Tips         []string             `json:"tips"`
	ImageURL     string               `json:"imageUrl,omitempty"`
	VideoURL     string               `json:"videoUrl,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

type ExerciseListResponse struct {
	Exercises []ExerciseResponse `json:"exercises"`
	PageResponse
}

type ExerciseBatchResponse struct {
	Message   string             `json:"message"`
	Exercises []ExerciseResponse `json:"exercises"`
}

type ExerciseStatsResponse struct {
	TotalExercises int64 `json:"totalExercises"`
	Stats          struct {
		ByMuscleGroup []domain.CountBucket `json:"byMuscleGroup"`
		ByDifficulty  []domain.CountBucket `json:"byDifficulty"`
		ByEquipment   []domain.CountBucket `json:"byEquipment"`
	} `json:"stats"`
	RecentExercises []domain.RecentExercise `json:"recentExercises"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:           ex.ID.Hex(),
		Name:         ex.Name,
		Description:  ex.Description,
		MuscleGroups: orEmpty(ex.MuscleGroups),
		Equipment:    orEmpty(ex.Equipment),
		Difficulty:   ex.Difficulty,
		Instructions: orEmpty(ex.Instructions),
		Tips:         orEmpty(ex.Tips),
		ImageURL:     ex.ImageURL,
		VideoURL:     ex.VideoURL,
		CreatedAt:    ex.CreatedAt,
		UpdatedAt:    ex.UpdatedAt,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to a slice of ExerciseResponse DTO.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

// MapExerciseStatsToResponse shapes the catalog aggregation for the dashboard.
func MapExerciseStatsToResponse(stats *domain.ExerciseStats) ExerciseStatsResponse {
	var resp ExerciseStatsResponse
	resp.TotalExercises = stats.Total
	resp.Stats.ByMuscleGroup = orEmpty(stats.ByMuscleGroup)
	resp.Stats.ByDifficulty = orEmpty(stats.ByDifficulty)
	resp.Stats.ByEquipment = orEmpty(stats.ByEquipment)
	resp.RecentExercises = orEmpty(stats.Recent)
	return resp
}

// --- Handler Methods ---

// ListExercises godoc
// @Summary List catalog exercises
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param muscleGroup query string false "Muscle group"
// @Param equipment query string false "Equipment"
// @Param difficulty query string false "Difficulty"
// @Param search query string false "Case-insensitive name substring"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} ExerciseListResponse
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	page, ok := parsePage(c, defaultExercisePageSize)
	if !ok {
		return
	}
	filter := repository.ExerciseFilter{
		MuscleGroup: c.Query("muscleGroup"),
		Equipment:   c.Query("equipment"),
		Difficulty:  c.Query("difficulty"),
		Search:      c.Query("search"),
	}

	exercises, total, err := h.exerciseService.ListExercises(c.Request.Context(), filter, page)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, ExerciseListResponse{
		Exercises:    MapExercisesToResponse(exercises),
		PageResponse: newPageResponse(page, total),
	})
}

// GetExerciseStats godoc
// @Summary Catalog statistics
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ExerciseStatsResponse
// @Router /exercises/stats [get]
func (h *ExerciseHandler) GetExerciseStats(c *gin.Context) {
	stats, err := h.exerciseService.GetExerciseStats(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseStatsToResponse(stats))
}

// GetExerciseByID godoc
// @Summary Get one exercise
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} ExerciseResponse
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExerciseByID(c *gin.Context) {
	// Malformed ids cannot exist.
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Exercise not found")
		return
	}

	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), exerciseID)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// CreateExercise godoc
// @Summary Create a new exercise
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body service.ExerciseInput true "Exercise details"
// @Success 201 {object} ExerciseResponse "Exercise created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req service.ExerciseInput
	if !bindJSON(c, &req) {
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), req)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, MapExerciseToResponse(exercise))
}

// BulkCreateExercises godoc
// @Summary Create many exercises at once
// @Description Every element is validated before anything is written.
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BulkCreateExercisesRequest true "{exercises: [...]}"
// @Success 201 {object} ExerciseBatchResponse
// @Failure 400 {object} gin.H "Validation error for exercise ..."
// @Router /exercises/bulk [post]
func (h *ExerciseHandler) BulkCreateExercises(c *gin.Context) {
	var req BulkCreateExercisesRequest
	if !bindJSON(c, &req) {
		return
	}
	raw := bytes.TrimSpace(req.Exercises)
	if len(raw) == 0 || raw[0] != '[' {
		abortWithError(c, http.StatusBadRequest, "exercises must be an array")
		return
	}
	var inputs []service.ExerciseInput
	if err := json.Unmarshal(raw, &inputs); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	exercises, err := h.exerciseService.BulkCreateExercises(c.Request.Context(), inputs)
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, ExerciseBatchResponse{
		Message:   fmt.Sprintf("Successfully created %d exercises", len(exercises)),
		Exercises: MapExercisesToResponse(exercises),
	})
}

// SeedExercises godoc
// @Summary Insert the default catalog into an empty store
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 201 {object} ExerciseBatchResponse
// @Failure 400 {object} gin.H "Exercises already exist in database (with count)"
// @Router /exercises/seed [post]
func (h *ExerciseHandler) SeedExercises(c *gin.Context) {
	exercises, err := h.exerciseService.SeedExercises(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, ExerciseBatchResponse{
		Message:   fmt.Sprintf("Successfully seeded %d exercises", len(exercises)),
		Exercises: MapExercisesToResponse(exercises),
	})
}

// orEmpty keeps empty lists as [] rather than null in responses.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
