package report

import (
	"fmt"

	"github.com/quarrylabs/sitekeeper/internal/domain/attendance"
	"github.com/quarrylabs/sitekeeper/internal/domain/project"
	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
)

// unknownRef is how a dangling worker/project reference renders at read time.
const unknownRef = "Unknown"

// AttendanceReport renders a snapshot of attendance records with resolved
// worker and project names. Records appear in input order.
func AttendanceReport(records []attendance.Record, workers []worker.Worker, projects []project.Project, opts Options) ([]byte, error) {
	pdf := newDoc()
	docTitle(pdf, "Attendance Report", opts.now())

	summary := SummarizeAttendance(records)
	fieldLine(pdf, "Total hours", FormatHours(summary.TotalHours))
	fieldLine(pdf, "Workers", fmt.Sprintf("%d", summary.DistinctWorkers))
	fieldLine(pdf, "Records", fmt.Sprintf("%d", summary.RecordCount))
	pdf.Ln(4)

	workerNames := workerNameIndex(workers)
	projectNames := projectNameIndex(projects)

	widths := []float64{35, 35, 22, 17, 20, 15, 36}
	tableHeader(pdf, widths, []string{"Worker", "Project", "Date", "In", "Out", "Hours", "Notes"})
	for _, rec := range records {
		checkOut := rec.CheckOut
		if checkOut == "" {
			checkOut = "no checkout"
		}
		tableRow(pdf, widths, []string{
			resolveName(workerNames, rec.WorkerID),
			resolveName(projectNames, rec.ProjectID),
			rec.Date,
			rec.CheckIn,
			checkOut,
			FormatHours(rec.HoursWorked),
			rec.Notes,
		})
	}

	return output(pdf)
}

func workerNameIndex(workers []worker.Worker) map[string]string {
	index := make(map[string]string, len(workers))
	for _, w := range workers {
		index[w.ID] = w.Name
	}
	return index
}

func projectNameIndex(projects []project.Project) map[string]string {
	index := make(map[string]string, len(projects))
	for _, p := range projects {
		index[p.ID] = p.Name
	}
	return index
}

func resolveName(index map[string]string, id string) string {
	if name, ok := index[id]; ok {
		return name
	}
	return unknownRef
}
