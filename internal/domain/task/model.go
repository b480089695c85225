package task

import (
	"time"

	"github.com/quarrylabs/sitekeeper/internal/domain/material"
)

// Status represents the workflow state of a task
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Priority represents task urgency
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task represents a unit of work on a project. ProjectID is an opaque
// reference with no integrity enforcement; a dangling reference resolves to
// "unknown" at read time. AssignedTo may contain duplicates; they are
// harmless.
type Task struct {
	ID          string              `json:"id" validate:"required"`
	ProjectID   string              `json:"project_id" validate:"required"`
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description"`
	AssignedTo  []string            `json:"assigned_to,omitempty"`
	Status      Status              `json:"status" validate:"required,oneof=pending in-progress completed"`
	Priority    Priority            `json:"priority" validate:"required,oneof=low medium high"`
	DueDate     string              `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Progress    int                 `json:"progress" validate:"gte=0,lte=100"`
	Materials   []material.Material `json:"materials,omitempty" validate:"dive"`
	Images      []string            `json:"images,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}
