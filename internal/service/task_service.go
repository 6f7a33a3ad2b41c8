package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/ops-backend/internal/model"
)

type TaskService struct {
	tasks       TaskStore
	projects    ProjectStore
	assignments AssignmentStore
	employees   EmployeeStore
}

type CreateTaskInput struct {
	Title       string
	Description string
	Status      model.TaskStatus
	WaitingFor  *string
	StartDate   time.Time
	DueDate     *time.Time
	WorkedHours *decimal.Decimal
	ProjectID   uuid.UUID
	EmployeeID  *uuid.UUID
}

// UpdateTaskInput carries only the fields to change. The project of a task
// cannot be changed.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *model.TaskStatus
	WaitingFor  *string
	StartDate   *time.Time
	DueDate     *time.Time
	EndDate     *time.Time
	WorkedHours *decimal.Decimal
}

func NewTaskService(tasks TaskStore, projects ProjectStore, assignments AssignmentStore, employees EmployeeStore) *TaskService {
	return &TaskService{
		tasks:       tasks,
		projects:    projects,
		assignments: assignments,
		employees:   employees,
	}
}

// CreateTask stores a new task for an existing project. It returns a nil
// task and a nil error when the task already exists.
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, invalidInput("title is required")
	}
	if !input.Status.Valid() {
		return nil, invalidInput("unknown task status %q", input.Status)
	}
	if input.ProjectID == uuid.Nil {
		return nil, invalidInput("idProject is required")
	}

	if _, err := s.projects.GetProject(ctx, input.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, unexpected("get project", err)
	}
	if input.EmployeeID != nil {
		if err := s.ensureEmployee(ctx, *input.EmployeeID); err != nil {
			return nil, err
		}
	}

	task := &model.Task{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      input.Status,
		WaitingFor:  input.WaitingFor,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
		WorkedHours: input.WorkedHours,
		ProjectID:   input.ProjectID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.tasks.CreateTask(ctx, task, input.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil
		}
		return nil, unexpected("create task", err)
	}
	return task, nil
}

func (s *TaskService) FindTaskByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, unexpected("get task", err)
	}
	return task, nil
}

func (s *TaskService) ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	if _, err := s.projects.GetProject(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, unexpected("get project", err)
	}
	tasks, err := s.tasks.ListTasksByProject(ctx, projectID)
	if err != nil {
		return nil, unexpected("list project tasks", err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// FindTasksByEmployeeID returns the tasks assigned to an employee, or an
// empty slice when there are none.
func (s *TaskService) FindTasksByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]model.Task, error) {
	assignments, err := s.ListAssignments(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return []model.Task{}, nil
	}

	ids := make([]uuid.UUID, 0, len(assignments))
	for _, assignment := range assignments {
		ids = append(ids, assignment.TaskID)
	}
	tasks, err := s.tasks.ListTasksByIDs(ctx, ids)
	if err != nil {
		return nil, unexpected("list employee tasks", err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (s *TaskService) ListAssignments(ctx context.Context, employeeID uuid.UUID) ([]model.EmployeeTask, error) {
	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	assignments, err := s.assignments.ListAssignmentsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, unexpected("list employee assignments", err)
	}
	if assignments == nil {
		assignments = []model.EmployeeTask{}
	}
	return assignments, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (*model.Task, error) {
	task, err := s.FindTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, invalidInput("title must not be empty")
		}
		task.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		task.Description = strings.TrimSpace(*input.Description)
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, invalidInput("unknown task status %q", *input.Status)
		}
		task.Status = *input.Status
	}
	if input.WaitingFor != nil {
		task.WaitingFor = input.WaitingFor
	}
	if input.StartDate != nil {
		task.StartDate = *input.StartDate
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.EndDate != nil {
		task.EndDate = input.EndDate
	}
	if input.WorkedHours != nil {
		task.WorkedHours = input.WorkedHours
	}
	now := time.Now().UTC()
	task.UpdatedAt = &now

	if err := s.tasks.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, unexpected("update task", err)
	}
	return task, nil
}

// UpdateTaskStatus moves a task to any status of the closed set.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, id uuid.UUID, status model.TaskStatus) error {
	if !status.Valid() {
		return invalidInput("unknown task status %q", status)
	}
	if err := s.tasks.UpdateTaskStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return unexpected("update task status", err)
	}
	return nil
}

// AssignEmployee makes employeeID the only assignee of the task.
func (s *TaskService) AssignEmployee(ctx context.Context, taskID, employeeID uuid.UUID) (*model.EmployeeTask, error) {
	if _, err := s.FindTaskByID(ctx, taskID); err != nil {
		return nil, err
	}
	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	assignment, err := s.assignments.AssignEmployee(ctx, taskID, employeeID)
	if err != nil {
		return nil, unexpected("assign employee", err)
	}
	return assignment, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.DeleteTask(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, unexpected("delete task", err)
	}
	return task, nil
}

func (s *TaskService) ensureEmployee(ctx context.Context, id uuid.UUID) error {
	if _, err := s.employees.GetEmployee(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return unexpected("get employee", err)
	}
	return nil
}
