package models

import (
	"time"
)

type Customer struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Contact   *string   `json:"contact" db:"contact"`
	JoinDate  time.Time `json:"join_date" db:"join_date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
