package repository

import (
	"database/sql"
	"time"

	"github.com/syhrzkwn/boilerplate-project-exercisetracker/models"

	"github.com/google/uuid"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// CreateUser inserts a new user with a generated id. The username must already
// be trimmed by the caller. Returns ErrDuplicateUsername when the username is taken.
func (r *UsersRepository) CreateUser(username string) (*models.User, error) {
	user := &models.User{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.Exec(`
		INSERT INTO users (id, username, created_at)
		VALUES ($1, $2, $3)
	`, user.ID, user.Username, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return user, nil
}

func (r *UsersRepository) GetUserByID(id string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(`
		SELECT id, username, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsersRepository) GetUsers() ([]*models.User, error) {
	rows, err := r.db.Query(`
		SELECT id, username, created_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}
