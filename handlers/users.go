package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/syhrzkwn/boilerplate-project-exercisetracker/repository"
	"github.com/syhrzkwn/boilerplate-project-exercisetracker/types"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct {
	usersRepo     *repository.UsersRepository
	exercisesRepo *repository.ExercisesRepository
}

func NewUsersHandler(ur *repository.UsersRepository, er *repository.ExercisesRepository) *UsersHandler {
	return &UsersHandler{usersRepo: ur, exercisesRepo: er}
}

func (h *UsersHandler) CreateUser(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "username is required"))
		return
	}
	user, err := h.usersRepo.CreateUser(username)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, types.NewErrorResponse(types.ErrorCodeConflict, "username already taken"))
			return
		}
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, types.UserResponse{Username: user.Username, ID: user.ID})
}

func (h *UsersHandler) GetUsers(c *gin.Context) {
	users, err := h.usersRepo.GetUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UsersHandler) CreateExercise(c *gin.Context) {
	userID := c.Param("id")
	var req struct {
		Description string `json:"description"`
		Duration    any    `json:"duration"`
		Date        string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "description is required"))
		return
	}
	duration, err := parseDuration(req.Duration)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	date := coerceDate(req.Date)

	exercise, err := h.exercisesRepo.CreateExercise(userID, req.Description, duration, date)
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}

	// Re-fetch the owner for the username. No atomicity is promised between
	// the insert and this lookup.
	user, err := h.usersRepo.GetUserByID(exercise.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "User not found"))
		return
	}

	c.JSON(http.StatusCreated, types.ExerciseResponse{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.DateString(),
		UserID:      user.ID,
	})
}

func (h *UsersHandler) GetLogs(c *gin.Context) {
	user, err := h.usersRepo.GetUserByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "User not found"))
		return
	}

	query, err := types.ParseLogQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}

	exercises, err := h.exercisesRepo.FindExercises(repository.ExerciseFilter{
		UserID: user.ID,
		From:   query.From,
		To:     query.To,
		Limit:  query.Limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}

	log := make([]types.LogEntry, 0, len(exercises))
	for _, e := range exercises {
		log = append(log, types.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.DateString(),
		})
	}
	c.JSON(http.StatusOK, types.LogResponse{
		Username: user.Username,
		Count:    len(log),
		UserID:   user.ID,
		Log:      log,
	})
}

// parseDuration accepts the duration field as a JSON number or numeric string.
func parseDuration(v any) (int, error) {
	switch d := v.(type) {
	case float64:
		return int(d), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(d))
		if err != nil {
			return 0, errors.New("duration must be an integer")
		}
		return n, nil
	case nil:
		return 0, errors.New("duration is required")
	default:
		return 0, errors.New("duration must be an integer")
	}
}

// coerceDate turns the optional date field into a UTC calendar date.
// Absent or unparseable input falls back to today.
func coerceDate(raw string) time.Time {
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		if t, err := types.ParseDate(trimmed); err == nil {
			return midnightUTC(t)
		}
	}
	return midnightUTC(time.Now())
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
