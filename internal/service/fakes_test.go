package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/ops-backend/internal/model"
	"github.com/nurpe/ops-backend/internal/repository"
)

// memStore is an in-memory implementation of every store interface.
type memStore struct {
	companies   map[uuid.UUID]model.Company
	projects    map[uuid.UUID]model.Project
	tasks       map[uuid.UUID]model.Task
	assignments []model.EmployeeTask
	employees   map[uuid.UUID]model.Employee
	roles       map[uuid.UUID]model.Role
	reports     map[uuid.UUID]model.ExpenseReport

	// failWith makes every read return this error when set.
	failWith error
	// duplicateTask makes CreateTask report a duplicate key.
	duplicateTask bool

	taskWrites int
}

func newMemStore() *memStore {
	return &memStore{
		companies: map[uuid.UUID]model.Company{},
		projects:  map[uuid.UUID]model.Project{},
		tasks:     map[uuid.UUID]model.Task{},
		employees: map[uuid.UUID]model.Employee{},
		roles:     map[uuid.UUID]model.Role{},
		reports:   map[uuid.UUID]model.ExpenseReport{},
	}
}

func (m *memStore) addRole(title string) model.Role {
	role := model.Role{ID: uuid.New(), Title: title}
	m.roles[role.ID] = role
	return role
}

func (m *memStore) addEmployee(first, last, email string, role model.Role) model.Employee {
	employee := model.Employee{ID: uuid.New(), FirstName: first, LastName: last, Email: email, RoleID: role.ID}
	m.employees[employee.ID] = employee
	return employee
}

func (m *memStore) addCompany(name string) model.Company {
	company := model.Company{ID: uuid.New(), Name: name}
	m.companies[company.ID] = company
	return company
}

func (m *memStore) addProject(name string, status model.ProjectStatus, area string, company model.Company) model.Project {
	project := model.Project{ID: uuid.New(), Name: name, Status: status, Area: area, CompanyID: company.ID}
	m.projects[project.ID] = project
	return project
}

func (m *memStore) addTask(title string, status model.TaskStatus, project model.Project) model.Task {
	task := model.Task{ID: uuid.New(), Title: title, Status: status, ProjectID: project.ID}
	m.tasks[task.ID] = task
	return task
}

func (m *memStore) assign(task model.Task, employee model.Employee) {
	m.assignments = append(m.assignments, model.EmployeeTask{ID: uuid.New(), TaskID: task.ID, EmployeeID: employee.ID})
}

// companies

func (m *memStore) GetCompany(_ context.Context, id uuid.UUID) (*model.Company, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	company, ok := m.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &company, nil
}

func (m *memStore) ListCompanies(_ context.Context, archived *bool) ([]model.Company, error) {
	var result []model.Company
	for _, company := range m.companies {
		if archived == nil || company.Archived == *archived {
			result = append(result, company)
		}
	}
	return result, nil
}

func (m *memStore) ListCompaniesByIDs(_ context.Context, ids []uuid.UUID) ([]model.Company, error) {
	var result []model.Company
	for _, id := range ids {
		if company, ok := m.companies[id]; ok {
			result = append(result, company)
		}
	}
	return result, nil
}

func (m *memStore) CreateCompany(_ context.Context, company *model.Company) error {
	m.companies[company.ID] = *company
	return nil
}

func (m *memStore) UpdateCompany(_ context.Context, company *model.Company) error {
	if _, ok := m.companies[company.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.companies[company.ID] = *company
	return nil
}

func (m *memStore) DeleteCompany(_ context.Context, id uuid.UUID) (*model.Company, error) {
	company, ok := m.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(m.companies, id)
	return &company, nil
}

// projects

func (m *memStore) GetProject(_ context.Context, id uuid.UUID) (*model.Project, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	project, ok := m.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &project, nil
}

func (m *memStore) ListProjects(_ context.Context, filter repository.ProjectFilter) ([]model.Project, error) {
	var result []model.Project
	for _, project := range m.projects {
		if filter.CompanyID != nil && project.CompanyID != *filter.CompanyID {
			continue
		}
		if !filter.AllAreas && !contains(filter.Areas, project.Area) {
			continue
		}
		result = append(result, project)
	}
	return result, nil
}

func (m *memStore) ListProjectsByIDs(_ context.Context, ids []uuid.UUID) ([]model.Project, error) {
	var result []model.Project
	for _, id := range ids {
		if project, ok := m.projects[id]; ok {
			result = append(result, project)
		}
	}
	return result, nil
}

func (m *memStore) CreateProject(_ context.Context, project *model.Project) error {
	m.projects[project.ID] = *project
	return nil
}

func (m *memStore) UpdateProject(_ context.Context, project *model.Project) error {
	if _, ok := m.projects[project.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.projects[project.ID] = *project
	return nil
}

func (m *memStore) UpdateProjectStatus(_ context.Context, id uuid.UUID, status model.ProjectStatus) error {
	project, ok := m.projects[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	project.Status = status
	m.projects[id] = project
	return nil
}

func (m *memStore) DeleteProject(_ context.Context, id uuid.UUID) (*model.Project, error) {
	project, ok := m.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(m.projects, id)
	return &project, nil
}

// tasks

func (m *memStore) GetTask(_ context.Context, id uuid.UUID) (*model.Task, error) {
	task, ok := m.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &task, nil
}

func (m *memStore) ListTasksByProject(_ context.Context, projectID uuid.UUID) ([]model.Task, error) {
	var result []model.Task
	for _, task := range m.tasks {
		if task.ProjectID == projectID {
			result = append(result, task)
		}
	}
	return result, nil
}

func (m *memStore) ListTasksByIDs(_ context.Context, ids []uuid.UUID) ([]model.Task, error) {
	var result []model.Task
	for _, id := range ids {
		if task, ok := m.tasks[id]; ok {
			result = append(result, task)
		}
	}
	return result, nil
}

func (m *memStore) CreateTask(_ context.Context, task *model.Task, employeeID *uuid.UUID) error {
	if m.duplicateTask {
		return gorm.ErrDuplicatedKey
	}
	m.taskWrites++
	m.tasks[task.ID] = *task
	if employeeID != nil {
		m.assignments = append(m.assignments, model.EmployeeTask{ID: uuid.New(), TaskID: task.ID, EmployeeID: *employeeID})
	}
	return nil
}

func (m *memStore) UpdateTask(_ context.Context, task *model.Task) error {
	current, ok := m.tasks[task.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	updated := *task
	updated.ProjectID = current.ProjectID
	m.tasks[task.ID] = updated
	return nil
}

func (m *memStore) UpdateTaskStatus(_ context.Context, id uuid.UUID, status model.TaskStatus) error {
	task, ok := m.tasks[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	task.Status = status
	m.tasks[id] = task
	return nil
}

func (m *memStore) DeleteTask(_ context.Context, id uuid.UUID) (*model.Task, error) {
	task, ok := m.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(m.tasks, id)
	return &task, nil
}

// assignments

func (m *memStore) ListAssignmentsByTasks(_ context.Context, taskIDs []uuid.UUID) ([]model.EmployeeTask, error) {
	var result []model.EmployeeTask
	for _, assignment := range m.assignments {
		for _, id := range taskIDs {
			if assignment.TaskID == id {
				result = append(result, assignment)
				break
			}
		}
	}
	return result, nil
}

func (m *memStore) ListAssignmentsByEmployee(_ context.Context, employeeID uuid.UUID) ([]model.EmployeeTask, error) {
	var result []model.EmployeeTask
	for _, assignment := range m.assignments {
		if assignment.EmployeeID == employeeID {
			result = append(result, assignment)
		}
	}
	return result, nil
}

func (m *memStore) AssignEmployee(_ context.Context, taskID, employeeID uuid.UUID) (*model.EmployeeTask, error) {
	kept := m.assignments[:0]
	for _, assignment := range m.assignments {
		if assignment.TaskID != taskID {
			kept = append(kept, assignment)
		}
	}
	assignment := model.EmployeeTask{ID: uuid.New(), TaskID: taskID, EmployeeID: employeeID}
	m.assignments = append(kept, assignment)
	return &assignment, nil
}

// employees

func (m *memStore) GetEmployee(_ context.Context, id uuid.UUID) (*model.Employee, error) {
	employee, ok := m.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &employee, nil
}

func (m *memStore) GetEmployeeByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, employee := range m.employees {
		if strings.EqualFold(employee.Email, email) {
			return &employee, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) ListEmployeesByIDs(_ context.Context, ids []uuid.UUID) ([]model.Employee, error) {
	var result []model.Employee
	for _, id := range ids {
		if employee, ok := m.employees[id]; ok {
			result = append(result, employee)
		}
	}
	return result, nil
}

func (m *memStore) UpdateEmployeeRole(_ context.Context, employeeID, roleID uuid.UUID) error {
	employee, ok := m.employees[employeeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	employee.RoleID = roleID
	m.employees[employeeID] = employee
	return nil
}

// roles

func (m *memStore) GetRole(_ context.Context, id uuid.UUID) (*model.Role, error) {
	role, ok := m.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &role, nil
}

func (m *memStore) GetRoleByEmail(ctx context.Context, email string) (*model.Role, error) {
	employee, err := m.GetEmployeeByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return m.GetRole(ctx, employee.RoleID)
}

func (m *memStore) ListRoles(_ context.Context) ([]model.Role, error) {
	var result []model.Role
	for _, role := range m.roles {
		result = append(result, role)
	}
	return result, nil
}

func (m *memStore) CreateRole(_ context.Context, role *model.Role) error {
	if _, ok := m.roles[role.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.roles[role.ID] = *role
	return nil
}

func (m *memStore) DeleteRole(_ context.Context, id uuid.UUID) (*model.Role, error) {
	role, ok := m.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(m.roles, id)
	return &role, nil
}

// expense reports

func (m *memStore) GetExpenseReport(_ context.Context, id uuid.UUID) (*model.ExpenseReport, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	report, ok := m.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &report, nil
}

func (m *memStore) ListExpenseReports(_ context.Context) ([]model.ExpenseReport, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var result []model.ExpenseReport
	for _, report := range m.reports {
		result = append(result, report)
	}
	return result, nil
}

func (m *memStore) ListExpenseReportsByEmployee(_ context.Context, employeeID uuid.UUID) ([]model.ExpenseReport, error) {
	var result []model.ExpenseReport
	for _, report := range m.reports {
		if report.EmployeeID == employeeID {
			result = append(result, report)
		}
	}
	return result, nil
}

func (m *memStore) CreateExpenseReport(_ context.Context, report *model.ExpenseReport) error {
	m.reports[report.ID] = *report
	return nil
}

func (m *memStore) DeleteExpenseReport(_ context.Context, id uuid.UUID) (*model.ExpenseReport, error) {
	report, ok := m.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(m.reports, id)
	return &report, nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

var errBackend = errors.New("connection reset")
