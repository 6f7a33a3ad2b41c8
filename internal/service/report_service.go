package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/ops-backend/internal/model"
)

type ExcelGenerator interface {
	Generate(report model.ProjectReport) ([]byte, error)
}

type ReportService struct {
	projects    ProjectStore
	companies   CompanyStore
	tasks       TaskStore
	assignments AssignmentStore
	employees   EmployeeStore
	excel       ExcelGenerator
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func NewReportService(
	projects ProjectStore,
	companies CompanyStore,
	tasks TaskStore,
	assignments AssignmentStore,
	employees EmployeeStore,
	excel ExcelGenerator,
) *ReportService {
	return &ReportService{
		projects:    projects,
		companies:   companies,
		tasks:       tasks,
		assignments: assignments,
		employees:   employees,
		excel:       excel,
	}
}

// BuildReport assembles the execution report of a project: the project with
// its company name, every task with the name of its assignee, and the task
// counters per status.
func (s *ReportService) BuildReport(ctx context.Context, projectID uuid.UUID) (*model.ProjectReport, error) {
	project, err := s.projects.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, unexpected("get project", err)
	}

	company, err := s.companies.GetCompany(ctx, project.CompanyID)
	if err != nil {
		return nil, unexpected("get project company", err)
	}

	tasks, err := s.tasks.ListTasksByProject(ctx, project.ID)
	if err != nil {
		return nil, unexpected("list project tasks", err)
	}

	taskIDs := make([]uuid.UUID, 0, len(tasks))
	for _, task := range tasks {
		taskIDs = append(taskIDs, task.ID)
	}
	assignments, err := s.assignments.ListAssignmentsByTasks(ctx, taskIDs)
	if err != nil {
		return nil, unexpected("list task assignments", err)
	}

	assigneeByTask := make(map[uuid.UUID]uuid.UUID, len(assignments))
	employeeIDs := make([]uuid.UUID, 0, len(assignments))
	seen := make(map[uuid.UUID]struct{}, len(assignments))
	for _, assignment := range assignments {
		if _, ok := assigneeByTask[assignment.TaskID]; ok {
			continue
		}
		assigneeByTask[assignment.TaskID] = assignment.EmployeeID
		if _, ok := seen[assignment.EmployeeID]; !ok {
			seen[assignment.EmployeeID] = struct{}{}
			employeeIDs = append(employeeIDs, assignment.EmployeeID)
		}
	}

	employees, err := s.employees.ListEmployeesByIDs(ctx, employeeIDs)
	if err != nil {
		return nil, unexpected("list assigned employees", err)
	}
	employeeByID := make(map[uuid.UUID]model.Employee, len(employees))
	for _, employee := range employees {
		employeeByID[employee.ID] = employee
	}

	stats := model.NewProjectStatistics(len(tasks))
	views := make([]model.TaskView, 0, len(tasks))
	for _, task := range tasks {
		view := model.TaskView{Task: task}
		if employeeID, ok := assigneeByTask[task.ID]; ok {
			if employee, ok := employeeByID[employeeID]; ok {
				view.EmployeeFirstName = employee.FirstName
				view.EmployeeLastName = employee.LastName
			}
		}
		views = append(views, view)
		stats.Count(string(task.Status))
	}

	return &model.ProjectReport{
		Project: model.ProjectView{
			Project:     *project,
			CompanyName: company.Name,
		},
		Tasks:      views,
		Statistics: stats,
	}, nil
}

// ExportReport renders the project report as an xlsx workbook.
func (s *ReportService) ExportReport(ctx context.Context, projectID uuid.UUID) (*ExportResult, error) {
	report, err := s.BuildReport(ctx, projectID)
	if err != nil {
		return nil, err
	}

	content, err := s.excel.Generate(*report)
	if err != nil {
		return nil, unexpected("render project report", err)
	}

	return &ExportResult{
		FileName: buildFileName(report.Project, time.Now().UTC()),
		Content:  content,
	}, nil
}

func buildFileName(project model.ProjectView, at time.Time) string {
	name := sanitizeFileName(project.Name)
	if name == "" {
		name = project.ID.String()
	}
	return fmt.Sprintf("project-report-%s-%s.xlsx", strings.ToLower(name), at.Format("20060102"))
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
