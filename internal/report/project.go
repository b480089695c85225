package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/quarrylabs/sitekeeper/internal/domain/material"
	"github.com/quarrylabs/sitekeeper/internal/domain/project"
	"github.com/quarrylabs/sitekeeper/internal/domain/task"
	"github.com/quarrylabs/sitekeeper/internal/domain/worker"
)

// ProjectReport renders one project with its tasks and workers. Tasks and
// workers appear in input order; the caller decides the snapshot and any
// ordering. Malformed task images are skipped.
func ProjectReport(p *project.Project, tasks []task.Task, workers []worker.Worker, opts Options) ([]byte, error) {
	pdf := newDoc()
	docTitle(pdf, "Project Report: "+p.Name, opts.now())

	fieldLine(pdf, "Status", string(p.Status))
	fieldLine(pdf, "Start date", orDash(p.StartDate))
	fieldLine(pdf, "End date", orDash(p.EndDate))
	fieldLine(pdf, "Progress", fmt.Sprintf("%d%%", p.Progress))
	fieldLine(pdf, "Budget", FormatMoney(p.Budget))
	fieldLine(pdf, "Location", orDash(p.Location))
	if p.Description != "" {
		fieldLine(pdf, "Description", p.Description)
	}
	pdf.Ln(4)

	completed := 0
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			completed++
		}
	}

	sectionTitle(pdf, fmt.Sprintf("Tasks (%d)", len(tasks)))
	fieldLine(pdf, "Completed", fmt.Sprintf("%d of %d (%d%%)", completed, len(tasks), Percent(completed, len(tasks))))
	taskWidths := []float64{60, 25, 20, 20, 25, 30}
	tableHeader(pdf, taskWidths, []string{"Title", "Status", "Priority", "Progress", "Due date", "Assigned"})
	for _, t := range tasks {
		tableRow(pdf, taskWidths, []string{
			t.Title,
			string(t.Status),
			string(t.Priority),
			fmt.Sprintf("%d%%", t.Progress),
			orDash(t.DueDate),
			fmt.Sprintf("%d", len(t.AssignedTo)),
		})
	}
	pdf.Ln(4)

	for i, t := range tasks {
		if len(t.Materials) == 0 && len(t.Images) == 0 {
			continue
		}
		sectionTitle(pdf, "Task: "+t.Title)
		if len(t.Materials) > 0 {
			materialTable(pdf, t.Materials)
		}
		if len(t.Images) > 0 {
			drawImageGrid(pdf, t.Images, fmt.Sprintf("task-%d", i))
		}
		pdf.Ln(2)
	}

	if len(p.Materials) > 0 {
		sectionTitle(pdf, "Project materials")
		materialTable(pdf, p.Materials)
		pdf.Ln(2)
	}

	sectionTitle(pdf, fmt.Sprintf("Workers (%d)", len(workers)))
	workerWidths := []float64{45, 35, 50, 30, 20}
	tableHeader(pdf, workerWidths, []string{"Name", "Role", "Email", "Phone", "Rate"})
	for _, w := range workers {
		tableRow(pdf, workerWidths, []string{
			w.Name,
			orDash(w.Role),
			orDash(w.Email),
			orDash(w.Phone),
			FormatMoney(w.HourlyRate),
		})
	}

	return output(pdf)
}

func materialTable(pdf *fpdf.Fpdf, materials []material.Material) {
	widths := []float64{60, 25, 20, 30, 45}
	tableHeader(pdf, widths, []string{"Material", "Quantity", "Unit", "Cost", "Supplier"})
	for _, m := range materials {
		cost := "-"
		if m.Cost > 0 {
			cost = FormatMoney(m.Cost)
		}
		tableRow(pdf, widths, []string{
			m.Name,
			fmt.Sprintf("%g", m.Quantity),
			orDash(m.Unit),
			cost,
			orDash(m.Supplier),
		})
	}
	pdf.Ln(2)
}

// drawImageGrid places decodable images into a fixed-width grid, three per
// row, breaking to a new page when a row would overflow.
func drawImageGrid(pdf *fpdf.Fpdf, images []string, prefix string) {
	const perRow = 3

	col := 0
	for i, payload := range images {
		data, imageType, ok := decodeEmbeddedImage(payload)
		if !ok {
			continue
		}

		name := fmt.Sprintf("%s-img-%d", prefix, i)
		imgOpts := fpdf.ImageOptions{ImageType: imageType}
		pdf.RegisterImageOptionsReader(name, imgOpts, bytes.NewReader(data))

		if col == 0 {
			_, pageH := pdf.GetPageSize()
			if pdf.GetY()+imageCellH > pageH-pageMargin {
				pdf.AddPage()
			}
		}

		x := pageMargin + float64(col)*(imageCellW+imageGap)
		pdf.ImageOptions(name, x, pdf.GetY(), imageCellW, imageCellH, false, imgOpts, 0, "")

		col++
		if col == perRow {
			pdf.SetY(pdf.GetY() + imageCellH + imageGap)
			col = 0
		}
	}
	if col != 0 {
		pdf.SetY(pdf.GetY() + imageCellH + imageGap)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
