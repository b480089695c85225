package attendance

import "time"

// Record represents one worker's attendance on one date. WorkerID, ProjectID
// and TaskID are opaque references; dangling values resolve to "unknown" at
// read time. Date uses YYYY-MM-DD, CheckIn/CheckOut use HH:MM.
type Record struct {
	ID          string    `json:"id" validate:"required"`
	WorkerID    string    `json:"worker_id" validate:"required"`
	ProjectID   string    `json:"project_id" validate:"required"`
	TaskID      string    `json:"task_id,omitempty"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"`
	CheckIn     string    `json:"check_in" validate:"required,datetime=15:04"`
	CheckOut    string    `json:"check_out,omitempty" validate:"omitempty,datetime=15:04"`
	HoursWorked float64   `json:"hours_worked" validate:"gte=0"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SheetRow is one line of the multi-row entry form. Rows arrive unvalidated;
// incomplete ones are skipped rather than failing the sheet.
type SheetRow struct {
	WorkerID    string  `json:"worker_id"`
	ProjectID   string  `json:"project_id"`
	TaskID      string  `json:"task_id,omitempty"`
	Date        string  `json:"date"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out,omitempty"`
	HoursWorked float64 `json:"hours_worked,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// SheetResult reports the outcome of a multi-row submission.
type SheetResult struct {
	Saved   int      `json:"saved"`
	Skipped int      `json:"skipped"`
	IDs     []string `json:"ids"`
}
