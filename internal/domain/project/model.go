package project

import (
	"time"

	"github.com/quarrylabs/sitekeeper/internal/domain/material"
)

// Status represents the lifecycle state of a project
type Status string

const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
)

// Project represents a construction project
type Project struct {
	ID          string              `json:"id" validate:"required"`
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description"`
	StartDate   string              `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string              `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status      Status              `json:"status" validate:"required,oneof=planning active completed paused"`
	Budget      float64             `json:"budget" validate:"gte=0"`
	Progress    int                 `json:"progress" validate:"gte=0,lte=100"`
	Location    string              `json:"location"`
	Materials   []material.Material `json:"materials,omitempty" validate:"dive"`
	CreatedAt   time.Time           `json:"created_at"`
}
