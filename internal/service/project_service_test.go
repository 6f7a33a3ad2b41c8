package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/ops-backend/internal/model"
)

func TestListProjectsForCallerPutsDoneLast(t *testing.T) {
	store := newMemStore()
	svc := NewProjectService(store, store, store)
	company := store.addCompany("Acme")
	store.addEmployee("Ad", "Min", "admin@firm.mx", store.addRole("ADMIN"))
	store.addProject("a", model.ProjectStatusDone, model.AreaLegal, company)
	store.addProject("b", model.ProjectStatusInProgress, model.AreaAccounting, company)
	store.addProject("c", model.ProjectStatusDone, model.AreaAccounting, company)
	store.addProject("d", model.ProjectStatusQuotation, model.AreaLegalAndAccounting, company)

	projects, err := svc.ListProjectsForCaller(context.Background(), "admin@firm.mx")
	if err != nil {
		t.Fatalf("ListProjectsForCaller failed: %v", err)
	}
	if len(projects) != 4 {
		t.Fatalf("expected 4 projects, got %d", len(projects))
	}
	seenDone := false
	for _, project := range projects {
		if project.Status.IsDone() {
			seenDone = true
			continue
		}
		if seenDone {
			t.Fatalf("non-done project %s listed after a done one", project.Name)
		}
	}
}

func TestListProjectsForCallerScopesByArea(t *testing.T) {
	store := newMemStore()
	svc := NewProjectService(store, store, store)
	company := store.addCompany("Acme")
	store.addEmployee("Le", "Gal", "legal@firm.mx", store.addRole("legal"))
	store.addEmployee("No", "Body", "nobody@firm.mx", store.addRole(""))
	store.addProject("legal", model.ProjectStatusInProgress, model.AreaLegal, company)
	store.addProject("both", model.ProjectStatusInProgress, model.AreaLegalAndAccounting, company)
	store.addProject("accounting", model.ProjectStatusInProgress, model.AreaAccounting, company)

	projects, err := svc.ListProjectsForCaller(context.Background(), "legal@firm.mx")
	if err != nil {
		t.Fatalf("ListProjectsForCaller failed: %v", err)
	}
	if len(projects) != 2 {
		t.Errorf("expected 2 legal projects, got %d", len(projects))
	}
	for _, project := range projects {
		if project.Area == model.AreaAccounting {
			t.Errorf("legal caller saw accounting project %s", project.Name)
		}
	}

	projects, err = svc.ListProjectsForCaller(context.Background(), "nobody@firm.mx")
	if err != nil || len(projects) != 0 {
		t.Errorf("expected no projects for a caller without role, got %v, %v", projects, err)
	}
}

func TestCreateProjectRequiresCompany(t *testing.T) {
	store := newMemStore()
	svc := NewProjectService(store, store, store)
	input := CreateProjectInput{
		Name:      "Audit",
		Status:    model.ProjectStatusQuotation,
		Area:      model.AreaLegal,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CompanyID: uuid.New(),
	}

	if _, err := svc.CreateProject(context.Background(), input); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}

	input.CompanyID = store.addCompany("Acme").ID
	project, err := svc.CreateProject(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	if _, ok := store.projects[project.ID]; !ok {
		t.Error("project not stored")
	}

	input.Area = "SALES"
	if _, err := svc.CreateProject(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateProjectPartial(t *testing.T) {
	store := newMemStore()
	svc := NewProjectService(store, store, store)
	company := store.addCompany("Acme")
	project := store.addProject("Audit", model.ProjectStatusInProgress, model.AreaLegal, company)

	payed := true
	updated, err := svc.UpdateProject(context.Background(), project.ID, UpdateProjectInput{Payed: &payed})
	if err != nil {
		t.Fatalf("UpdateProject failed: %v", err)
	}
	if !updated.Payed || updated.Name != "Audit" || updated.Status != model.ProjectStatusInProgress {
		t.Errorf("unexpected project %+v", updated)
	}

	ghost := uuid.New()
	if _, err := svc.UpdateProject(context.Background(), project.ID, UpdateProjectInput{CompanyID: &ghost}); !errors.Is(err, ErrCompanyNotFound) {
		t.Errorf("expected ErrCompanyNotFound, got %v", err)
	}
	if err := svc.UpdateProjectStatus(context.Background(), project.ID, model.ProjectStatusDone); err != nil {
		t.Errorf("UpdateProjectStatus failed: %v", err)
	}
	if _, err := svc.DeleteProject(context.Background(), uuid.New()); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestGetProjectIncludesCompanyName(t *testing.T) {
	store := newMemStore()
	svc := NewProjectService(store, store, store)
	project := store.addProject("Audit", model.ProjectStatusInProgress, model.AreaLegal, store.addCompany("Acme"))

	view, err := svc.GetProject(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("GetProject failed: %v", err)
	}
	if view.CompanyName != "Acme" {
		t.Errorf("expected company name Acme, got %q", view.CompanyName)
	}
}
