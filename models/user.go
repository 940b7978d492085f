package models

import "time"

type User struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"-"`
}
