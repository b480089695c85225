package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/quarrylabs/sitekeeper/internal/domain/attendance"
	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
)

// AttendanceSummary is the header block of the attendance report.
type AttendanceSummary struct {
	TotalHours      float64
	DistinctWorkers int
	RecordCount     int
}

// SummarizeAttendance computes report totals over a snapshot of records.
// An empty snapshot yields zero totals, never an error.
func SummarizeAttendance(records []attendance.Record) AttendanceSummary {
	seen := map[string]struct{}{}
	var total float64
	for _, rec := range records {
		total += rec.HoursWorked
		seen[rec.WorkerID] = struct{}{}
	}
	return AttendanceSummary{
		TotalHours:      round2(total),
		DistinctWorkers: len(seen),
		RecordCount:     len(records),
	}
}

// WorkerSummary is the computed block of the worker report.
type WorkerSummary struct {
	TotalDays     int
	TotalHours    float64
	TotalEarnings float64
}

// SummarizeWorker computes days, hours and earnings for one worker's records.
func SummarizeWorker(w *worker.Worker, records []attendance.Record) WorkerSummary {
	var hours float64
	for _, rec := range records {
		hours += rec.HoursWorked
	}
	return WorkerSummary{
		TotalDays:     len(records),
		TotalHours:    round2(hours),
		TotalEarnings: round2(hours * w.HourlyRate),
	}
}

// Pay computes per-record pay, rounded to two decimals.
func Pay(hours, rate float64) float64 {
	return round2(hours * rate)
}

// RecentRecords returns up to n records sorted descending by date. The input
// is left untouched.
func RecentRecords(records []attendance.Record, n int) []attendance.Record {
	sorted := make([]attendance.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Percent renders part of total as a whole percentage, with 0 for an empty
// total rather than a division error.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatHours renders an hour figure with two decimals.
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2f", hours)
}

// FormatMoney renders a currency amount with a dollar sign, thousands
// separators and two decimals.
func FormatMoney(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var grouped []string
	for len(whole) > 3 {
		grouped = append([]string{whole[len(whole)-3:]}, grouped...)
		whole = whole[:len(whole)-3]
	}
	grouped = append([]string{whole}, grouped[0:]...)

	return sign + "$" + strings.Join(grouped, ",") + "." + parts[1]
}
