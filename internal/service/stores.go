package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/ops-backend/internal/model"
	"github.com/nurpe/ops-backend/internal/repository"
)

// Persistence collaborators. The repository package provides the gorm
// implementations; tests use in-memory fakes.

type CompanyStore interface {
	GetCompany(ctx context.Context, id uuid.UUID) (*model.Company, error)
	ListCompanies(ctx context.Context, archived *bool) ([]model.Company, error)
	ListCompaniesByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Company, error)
	CreateCompany(ctx context.Context, company *model.Company) error
	UpdateCompany(ctx context.Context, company *model.Company) error
	DeleteCompany(ctx context.Context, id uuid.UUID) (*model.Company, error)
}

type ProjectStore interface {
	GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListProjects(ctx context.Context, filter repository.ProjectFilter) ([]model.Project, error)
	ListProjectsByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Project, error)
	CreateProject(ctx context.Context, project *model.Project) error
	UpdateProject(ctx context.Context, project *model.Project) error
	UpdateProjectStatus(ctx context.Context, id uuid.UUID, status model.ProjectStatus) error
	DeleteProject(ctx context.Context, id uuid.UUID) (*model.Project, error)
}

type TaskStore interface {
	GetTask(ctx context.Context, id uuid.UUID) (*model.Task, error)
	ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error)
	ListTasksByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Task, error)
	CreateTask(ctx context.Context, task *model.Task, employeeID *uuid.UUID) error
	UpdateTask(ctx context.Context, task *model.Task) error
	UpdateTaskStatus(ctx context.Context, id uuid.UUID, status model.TaskStatus) error
	DeleteTask(ctx context.Context, id uuid.UUID) (*model.Task, error)
}

type AssignmentStore interface {
	ListAssignmentsByTasks(ctx context.Context, taskIDs []uuid.UUID) ([]model.EmployeeTask, error)
	ListAssignmentsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.EmployeeTask, error)
	AssignEmployee(ctx context.Context, taskID, employeeID uuid.UUID) (*model.EmployeeTask, error)
}

type EmployeeStore interface {
	GetEmployee(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (*model.Employee, error)
	ListEmployeesByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Employee, error)
	UpdateEmployeeRole(ctx context.Context, employeeID, roleID uuid.UUID) error
}

type RoleStore interface {
	GetRole(ctx context.Context, id uuid.UUID) (*model.Role, error)
	GetRoleByEmail(ctx context.Context, email string) (*model.Role, error)
	ListRoles(ctx context.Context) ([]model.Role, error)
	CreateRole(ctx context.Context, role *model.Role) error
	DeleteRole(ctx context.Context, id uuid.UUID) (*model.Role, error)
}

type ExpenseStore interface {
	GetExpenseReport(ctx context.Context, id uuid.UUID) (*model.ExpenseReport, error)
	ListExpenseReports(ctx context.Context) ([]model.ExpenseReport, error)
	ListExpenseReportsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.ExpenseReport, error)
	CreateExpenseReport(ctx context.Context, report *model.ExpenseReport) error
	DeleteExpenseReport(ctx context.Context, id uuid.UUID) (*model.ExpenseReport, error)
}
