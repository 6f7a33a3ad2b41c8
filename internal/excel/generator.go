package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/ops-backend/internal/model"
)

const (
	summarySheet = "Summary"
	tasksSheet   = "Tasks"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders a project report as an xlsx workbook with a summary sheet
// and one row per task.
func (g *Generator) Generate(report model.ProjectReport) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	if _, err := file.NewSheet(tasksSheet); err != nil {
		return nil, err
	}
	if err := g.writeTasks(file, tasksSheet, report.Tasks); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.ProjectReport) error {
	project := report.Project
	stats := report.Statistics

	rows := [][2]interface{}{
		{"Project", project.Name},
		{"Client", project.CompanyName},
		{"Area", project.Area},
		{"Status", string(project.Status)},
		{"Start date", formatDate(project.StartDate)},
		{"End date", formatDatePtr(project.EndDate)},
		{"Total hours", formatDecimal(project.TotalHours)},
		{},
		{"Tasks", stats.Total},
		{string(model.TaskStatusDone), stats.Done},
		{string(model.TaskStatusInProgress), stats.InProgress},
		{string(model.TaskStatusUnderRevision), stats.UnderRevision},
		{string(model.TaskStatusDelayed), stats.Delayed},
		{string(model.TaskStatusPostponed), stats.Postponed},
		{string(model.TaskStatusNotStarted), stats.NotStarted},
		{string(model.TaskStatusCancelled), stats.Cancelled},
	}
	for i, row := range rows {
		if row[0] == nil {
			continue
		}
		if err := file.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &[]interface{}{row[0], row[1]}); err != nil {
			return err
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "B", 45)
	return nil
}

func (g *Generator) writeTasks(file *excelize.File, sheet string, tasks []model.TaskView) error {
	headers := []interface{}{
		"Title",
		"Status",
		"Assignee",
		"Waiting for",
		"Start date",
		"Due date",
		"Worked hours",
	}
	if err := file.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for i, task := range tasks {
		row := []interface{}{
			task.Title,
			string(task.Status),
			assigneeName(task),
			formatString(task.WaitingFor),
			formatDate(task.StartDate),
			formatDatePtr(task.DueDate),
			formatDecimal(task.WorkedHours),
		}
		if err := file.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 40)
	_ = file.SetColWidth(sheet, "B", "D", 20)
	_ = file.SetColWidth(sheet, "E", "G", 14)
	return nil
}

func assigneeName(task model.TaskView) string {
	return strings.TrimSpace(task.EmployeeFirstName + " " + task.EmployeeLastName)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

func formatString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func formatDecimal(value *decimal.Decimal) string {
	if value == nil {
		return ""
	}
	return value.StringFixed(2)
}
