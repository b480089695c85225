package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarrylabs/sitekeeper/internal/domain/attendance"
	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
)

func TestSummarizeAttendanceEmpty(t *testing.T) {
	summary := SummarizeAttendance(nil)
	require.Equal(t, 0.0, summary.TotalHours)
	require.Equal(t, 0, summary.DistinctWorkers)
	require.Equal(t, 0, summary.RecordCount)
}

func TestSummarizeAttendance(t *testing.T) {
	records := []attendance.Record{
		{WorkerID: "w1", HoursWorked: 8},
		{WorkerID: "w1", HoursWorked: 7.5},
		{WorkerID: "w2", HoursWorked: 4.25},
	}
	summary := SummarizeAttendance(records)
	require.Equal(t, 19.75, summary.TotalHours)
	require.Equal(t, 2, summary.DistinctWorkers)
	require.Equal(t, 3, summary.RecordCount)
}

func TestSummarizeWorker(t *testing.T) {
	w := &worker.Worker{ID: "w1", HourlyRate: 20}
	records := []attendance.Record{
		{WorkerID: "w1", HoursWorked: 4},
		{WorkerID: "w1", HoursWorked: 6},
	}
	summary := SummarizeWorker(w, records)
	require.Equal(t, 2, summary.TotalDays)
	require.Equal(t, 10.0, summary.TotalHours)
	require.Equal(t, 200.0, summary.TotalEarnings)
}

func TestPay(t *testing.T) {
	require.Equal(t, 80.0, Pay(4, 20))
	require.Equal(t, 120.0, Pay(6, 20))
	require.Equal(t, 101.9, Pay(3.33, 30.6))
}

func TestRecentRecords(t *testing.T) {
	records := []attendance.Record{
		{ID: "a1", Date: "2026-03-01"},
		{ID: "a2", Date: "2026-03-05"},
		{ID: "a3", Date: "2026-03-03"},
	}
	recent := RecentRecords(records, 2)
	require.Len(t, recent, 2)
	require.Equal(t, "a2", recent[0].ID)
	require.Equal(t, "a3", recent[1].ID)

	// Input order untouched.
	require.Equal(t, "a1", records[0].ID)
}

func TestPercent(t *testing.T) {
	require.Equal(t, 0, Percent(5, 0))
	require.Equal(t, 50, Percent(1, 2))
	require.Equal(t, 33, Percent(1, 3))
	require.Equal(t, 100, Percent(3, 3))
}

func TestFormatHours(t *testing.T) {
	require.Equal(t, "8.50", FormatHours(8.5))
	require.Equal(t, "0.00", FormatHours(0))
}

func TestFormatMoney(t *testing.T) {
	require.Equal(t, "$0.00", FormatMoney(0))
	require.Equal(t, "$999.50", FormatMoney(999.5))
	require.Equal(t, "$1,250.00", FormatMoney(1250))
	require.Equal(t, "$1,250,000.00", FormatMoney(1250000))
	require.Equal(t, "-$42.75", FormatMoney(-42.75))
}
