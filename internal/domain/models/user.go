package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	Password     []byte    `db:"password" json:"-"`
	RegisteredAt time.Time `db:"registered_at,omitempty" json:"registered_at,omitempty"`
}
