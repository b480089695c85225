package report

import (
	"fmt"

	"github.com/quarrylabs/sitekeeper/internal/domain/attendance"
	"github.com/quarrylabs/sitekeeper/internal/domain/project"
	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
)

// recentRecordLimit caps how many attendance rows the worker report shows.
const recentRecordLimit = 10

// WorkerReport renders one worker's identity, computed totals and most
// recent attendance records.
func WorkerReport(w *worker.Worker, records []attendance.Record, projects []project.Project, opts Options) ([]byte, error) {
	pdf := newDoc()
	docTitle(pdf, "Worker Report: "+w.Name, opts.now())

	fieldLine(pdf, "Role", orDash(w.Role))
	fieldLine(pdf, "Email", orDash(w.Email))
	fieldLine(pdf, "Phone", orDash(w.Phone))
	fieldLine(pdf, "Hourly rate", FormatMoney(w.HourlyRate))
	fieldLine(pdf, "Status", string(w.Status))
	pdf.Ln(4)

	summary := SummarizeWorker(w, records)
	sectionTitle(pdf, "Summary")
	fieldLine(pdf, "Total days", fmt.Sprintf("%d", summary.TotalDays))
	fieldLine(pdf, "Total hours", FormatHours(summary.TotalHours))
	fieldLine(pdf, "Total earnings", FormatMoney(summary.TotalEarnings))
	pdf.Ln(4)

	projectNames := projectNameIndex(projects)
	recent := RecentRecords(records, recentRecordLimit)

	sectionTitle(pdf, fmt.Sprintf("Recent attendance (%d)", len(recent)))
	widths := []float64{45, 25, 20, 25, 20, 25}
	tableHeader(pdf, widths, []string{"Project", "Date", "In", "Out", "Hours", "Pay"})
	for _, rec := range recent {
		checkOut := rec.CheckOut
		if checkOut == "" {
			checkOut = "no checkout"
		}
		tableRow(pdf, widths, []string{
			resolveName(projectNames, rec.ProjectID),
			rec.Date,
			rec.CheckIn,
			checkOut,
			FormatHours(rec.HoursWorked),
			FormatMoney(Pay(rec.HoursWorked, w.HourlyRate)),
		})
	}

	return output(pdf)
}
