package models

import (
	"time"
)

type Employee struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Contact    *string   `json:"contact" db:"contact"`
	HireDate   time.Time `json:"hire_date" db:"hire_date"`
	Department string    `json:"department" db:"department"`
	Salary     float64   `json:"salary" db:"salary"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
