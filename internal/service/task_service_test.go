package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/ops-backend/internal/model"
)

func newTaskFixture() (*memStore, *TaskService) {
	store := newMemStore()
	return store, NewTaskService(store, store, store, store)
}

func TestCreateTask(t *testing.T) {
	store, svc := newTaskFixture()
	project := store.addProject("Audit", model.ProjectStatusInProgress, model.AreaLegal, store.addCompany("Acme"))
	employee := store.addEmployee("Ana", "Lopez", "ana@firm.mx", store.addRole("LEGAL"))

	task, err := svc.CreateTask(context.Background(), CreateTaskInput{
		Title:      "Review contract",
		Status:     model.TaskStatusNotStarted,
		StartDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		ProjectID:  project.ID,
		EmployeeID: &employee.ID,
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if task == nil || task.ID == uuid.Nil || task.CreatedAt.IsZero() || task.ProjectID != project.ID {
		t.Fatalf("unexpected task %+v", task)
	}
	if len(store.assignments) != 1 || store.assignments[0].EmployeeID != employee.ID {
		t.Errorf("expected the task to be assigned, got %+v", store.assignments)
	}
}

func TestCreateTaskRequiresExistingProject(t *testing.T) {
	store, svc := newTaskFixture()

	task, err := svc.CreateTask(context.Background(), CreateTaskInput{
		Title:     "Orphan",
		Status:    model.TaskStatusNotStarted,
		ProjectID: uuid.New(),
	})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
	if err.Error() != "project does not exist" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if task != nil || store.taskWrites != 0 {
		t.Errorf("no task must be written, got %d writes", store.taskWrites)
	}
}

func TestCreateTaskDuplicateReturnsNil(t *testing.T) {
	store, svc := newTaskFixture()
	project := store.addProject("Audit", model.ProjectStatusInProgress, model.AreaLegal, store.addCompany("Acme"))
	store.duplicateTask = true

	task, err := svc.CreateTask(context.Background(), CreateTaskInput{
		Title:     "Twice",
		Status:    model.TaskStatusInProgress,
		ProjectID: project.ID,
	})
	if err != nil || task != nil {
		t.Errorf("expected nil task and nil error, got %+v, %v", task, err)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	store, svc := newTaskFixture()
	project := store.addProject("Audit", model.ProjectStatusInProgress, model.AreaLegal, store.addCompany("Acme"))

	inputs := []CreateTaskInput{
		{Title: "", Status: model.TaskStatusDone, ProjectID: project.ID},
		{Title: "x", Status: "Finished", ProjectID: project.ID},
		{Title: "x", Status: model.TaskStatusDone},
	}
	for _, input := range inputs {
		if _, err := svc.CreateTask(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%+v: expected ErrInvalidInput, got %v", input, err)
		}
	}

	ghost := uuid.New()
	_, err := svc.CreateTask(context.Background(), CreateTaskInput{Title: "x", Status: model.TaskStatusDone, ProjectID: project.ID, EmployeeID: &ghost})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestFindTasksByEmployeeID(t *testing.T) {
	store, svc := newTaskFixture()
	project := store.addProject("Audit", model.ProjectStatusInProgress, model.AreaLegal, store.addCompany("Acme"))
	role := store.addRole("LEGAL")
	busy := store.addEmployee("Busy", "One", "busy@firm.mx", role)
	idle := store.addEmployee("Idle", "One", "idle@firm.mx", role)
	first := store.addTask("first", model.TaskStatusDone, project)
	second := store.addTask("second", model.TaskStatusDelayed, project)
	store.addTask("unassigned", model.TaskStatusDelayed, project)
	store.assign(first, busy)
	store.assign(second, busy)

	tasks, err := svc.FindTasksByEmployeeID(context.Background(), busy.ID)
	if err != nil {
		t.Fatalf("FindTasksByEmployeeID failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(tasks))
	}

	tasks, err = svc.FindTasksByEmployeeID(context.Background(), idle.ID)
	if err != nil || tasks == nil || len(tasks) != 0 {
		t.Errorf("expected an empty list, got %v, %v", tasks, err)
	}

	if _, err := svc.FindTasksByEmployeeID(context.Background(), uuid.New()); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestUpdateTaskKeepsOmittedFieldsAndProject(t *testing.T) {
	store, svc := newTaskFixture()
	project := store.addProject("Audit", model.ProjectStatusInProgress, model.AreaLegal, store.addCompany("Acme"))
	task := store.addTask("Old", model.TaskStatusNotStarted, project)
	task.Description = "keep me"
	store.tasks[task.ID] = task

	title := "New"
	status := model.TaskStatusUnderRevision
	updated, err := svc.UpdateTask(context.Background(), task.ID, UpdateTaskInput{Title: &title, Status: &status})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if updated.Title != "New" || updated.Status != status || updated.Description != "keep me" || updated.UpdatedAt == nil {
		t.Errorf("unexpected task %+v", updated)
	}
	if store.tasks[task.ID].ProjectID != project.ID {
		t.Error("project reference changed")
	}

	if _, err := svc.UpdateTask(context.Background(), uuid.New(), UpdateTaskInput{}); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdateTaskStatusAnyTransition(t *testing.T) {
	store, svc := newTaskFixture()
	project := store.addProject("Audit", model.ProjectStatusInProgress, model.AreaLegal, store.addCompany("Acme"))
	task := store.addTask("t", model.TaskStatusDone, project)

	if err := svc.UpdateTaskStatus(context.Background(), task.ID, model.TaskStatusNotStarted); err != nil {
		t.Fatalf("UpdateTaskStatus failed: %v", err)
	}
	if store.tasks[task.ID].Status != model.TaskStatusNotStarted {
		t.Errorf("status not updated")
	}
	if err := svc.UpdateTaskStatus(context.Background(), task.ID, "Archived"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if err := svc.UpdateTaskStatus(context.Background(), uuid.New(), model.TaskStatusDone); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestAssignEmployeeReplacesAssignment(t *testing.T) {
	store, svc := newTaskFixture()
	project := store.addProject("Audit", model.ProjectStatusInProgress, model.AreaLegal, store.addCompany("Acme"))
	role := store.addRole("LEGAL")
	before := store.addEmployee("Before", "X", "before@firm.mx", role)
	after := store.addEmployee("After", "Y", "after@firm.mx", role)
	task := store.addTask("t", model.TaskStatusInProgress, project)
	store.assign(task, before)

	if _, err := svc.AssignEmployee(context.Background(), task.ID, after.ID); err != nil {
		t.Fatalf("AssignEmployee failed: %v", err)
	}
	if len(store.assignments) != 1 || store.assignments[0].EmployeeID != after.ID {
		t.Errorf("expected a single assignment to the new employee, got %+v", store.assignments)
	}
}

func TestDeleteTask(t *testing.T) {
	store, svc := newTaskFixture()
	project := store.addProject("Audit", model.ProjectStatusInProgress, model.AreaLegal, store.addCompany("Acme"))
	task := store.addTask("t", model.TaskStatusInProgress, project)

	if _, err := svc.DeleteTask(context.Background(), task.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if _, err := svc.DeleteTask(context.Background(), task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
