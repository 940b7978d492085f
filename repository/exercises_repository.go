package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/syhrzkwn/boilerplate-project-exercisetracker/models"

	"github.com/google/uuid"
)

type ExercisesRepository struct {
	db *sql.DB
}

func NewExercisesRepository(db *sql.DB) *ExercisesRepository {
	return &ExercisesRepository{db: db}
}

// ExerciseFilter selects a user's exercises with optional inclusive date bounds.
// A Limit of zero or less means no cap.
type ExerciseFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
}

func (r *ExercisesRepository) CreateExercise(userID, description string, duration int, date time.Time) (*models.Exercise, error) {
	exercise := &models.Exercise{
		ID:          uuid.NewString(),
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := r.db.Exec(`
		INSERT INTO exercises (id, user_id, description, duration, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, exercise.ID, exercise.UserID, exercise.Description, exercise.Duration, exercise.Date, exercise.CreatedAt)
	if err != nil {
		return nil, err
	}
	return exercise, nil
}

// buildFindQuery composes the filtered lookup. Bounds are inclusive and
// independently optional; LIMIT is appended only for a positive cap, so that
// "no limit" never turns into "zero rows".
func buildFindQuery(f ExerciseFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, user_id, description, duration, date, created_at
		FROM exercises
		WHERE user_id = $1`)
	args := []any{f.UserID}

	if f.From != nil {
		args = append(args, *f.From)
		fmt.Fprintf(&sb, " AND date >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		fmt.Fprintf(&sb, " AND date <= $%d", len(args))
	}
	sb.WriteString(" ORDER BY seq")
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	return sb.String(), args
}

func (r *ExercisesRepository) FindExercises(f ExerciseFilter) ([]*models.Exercise, error) {
	query, args := buildFindQuery(f)
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := []*models.Exercise{}
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date, &e.CreatedAt); err != nil {
			return nil, err
		}
		exercises = append(exercises, &e)
	}
	return exercises, rows.Err()
}
