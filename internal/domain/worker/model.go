package worker

import "time"

// Status represents whether a worker is currently on the roster
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Worker represents a crew member
type Worker struct {
	ID         string    `json:"id" validate:"required"`
	Name       string    `json:"name" validate:"required"`
	Role       string    `json:"role"`
	Email      string    `json:"email" validate:"omitempty,email"`
	Phone      string    `json:"phone"`
	HourlyRate float64   `json:"hourly_rate" validate:"gte=0"`
	PhotoRef   string    `json:"photo_ref,omitempty"`
	Skills     []string  `json:"skills,omitempty"`
	Status     Status    `json:"status" validate:"required,oneof=active inactive"`
	CreatedAt  time.Time `json:"created_at"`
}
