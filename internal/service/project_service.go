package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/ops-backend/internal/access"
	"github.com/nurpe/ops-backend/internal/model"
	"github.com/nurpe/ops-backend/internal/repository"
)

type ProjectService struct {
	projects  ProjectStore
	companies CompanyStore
	roles     RoleStore
}

type CreateProjectInput struct {
	Name         string
	Matter       *string
	Description  *string
	Category     string
	Status       model.ProjectStatus
	StartDate    time.Time
	EndDate      *time.Time
	Periodicity  string
	IsChargeable bool
	Area         string
	CompanyID    uuid.UUID
}

type UpdateProjectInput struct {
	Name         *string
	Matter       *string
	Description  *string
	Category     *string
	Status       *model.ProjectStatus
	StartDate    *time.Time
	EndDate      *time.Time
	Periodicity  *string
	IsChargeable *bool
	Area         *string
	IsArchived   *bool
	Payed        *bool
	CompanyID    *uuid.UUID
}

func NewProjectService(projects ProjectStore, companies CompanyStore, roles RoleStore) *ProjectService {
	return &ProjectService{projects: projects, companies: companies, roles: roles}
}

func (s *ProjectService) CreateProject(ctx context.Context, input CreateProjectInput) (*model.Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, invalidInput("name is required")
	}
	if !input.Status.Valid() {
		return nil, invalidInput("unknown project status %q", input.Status)
	}
	if !validArea(input.Area) {
		return nil, invalidInput("unknown area %q", input.Area)
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, invalidInput("endDate must not be before startDate")
	}
	if err := s.ensureCompany(ctx, input.CompanyID); err != nil {
		return nil, err
	}

	project := &model.Project{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Matter:       input.Matter,
		Description:  input.Description,
		Category:     input.Category,
		Status:       input.Status,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Periodicity:  input.Periodicity,
		IsChargeable: input.IsChargeable,
		Area:         input.Area,
		CompanyID:    input.CompanyID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.projects.CreateProject(ctx, project); err != nil {
		return nil, unexpected("create project", err)
	}
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*model.ProjectView, error) {
	project, err := s.projects.GetProject(ctx, id)
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
	return &model.ProjectView{Project: *project, CompanyName: company.Name}, nil
}

// ListProjectsForCaller lists the projects of the departments the caller's
// role covers, DONE projects last.
func (s *ProjectService) ListProjectsForCaller(ctx context.Context, email string) ([]model.Project, error) {
	role, err := s.roles.GetRoleByEmail(ctx, email)
	if err != nil {
		return nil, callerLookupError("get caller role", err)
	}

	areas, all := access.ProjectAreas(role.Title)
	projects, err := s.projects.ListProjects(ctx, repository.ProjectFilter{Areas: areas, AllAreas: all})
	if err != nil {
		return nil, unexpected("list projects", err)
	}
	return model.SortDoneLast(projects), nil
}

func (s *ProjectService) ListProjectsByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Project, error) {
	if err := s.ensureCompany(ctx, companyID); err != nil {
		return nil, err
	}
	projects, err := s.projects.ListProjects(ctx, repository.ProjectFilter{AllAreas: true, CompanyID: &companyID})
	if err != nil {
		return nil, unexpected("list company projects", err)
	}
	return model.SortDoneLast(projects), nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*model.Project, error) {
	project, err := s.projects.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, unexpected("get project", err)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, invalidInput("name must not be empty")
		}
		project.Name = strings.TrimSpace(*input.Name)
	}
	if input.Matter != nil {
		project.Matter = input.Matter
	}
	if input.Description != nil {
		project.Description = input.Description
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, invalidInput("unknown project status %q", *input.Status)
		}
		project.Status = *input.Status
	}
	if input.StartDate != nil {
		project.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = input.EndDate
	}
	if input.Periodicity != nil {
		project.Periodicity = *input.Periodicity
	}
	if input.IsChargeable != nil {
		project.IsChargeable = *input.IsChargeable
	}
	if input.Area != nil {
		if !validArea(*input.Area) {
			return nil, invalidInput("unknown area %q", *input.Area)
		}
		project.Area = *input.Area
	}
	if input.IsArchived != nil {
		project.IsArchived = *input.IsArchived
	}
	if input.Payed != nil {
		project.Payed = *input.Payed
	}
	if input.CompanyID != nil && *input.CompanyID != project.CompanyID {
		if err := s.ensureCompany(ctx, *input.CompanyID); err != nil {
			return nil, err
		}
		project.CompanyID = *input.CompanyID
	}
	now := time.Now().UTC()
	project.UpdatedAt = &now

	if err := s.projects.UpdateProject(ctx, project); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, unexpected("update project", err)
	}
	return project, nil
}

func (s *ProjectService) UpdateProjectStatus(ctx context.Context, id uuid.UUID, status model.ProjectStatus) error {
	if !status.Valid() {
		return invalidInput("unknown project status %q", status)
	}
	if err := s.projects.UpdateProjectStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return unexpected("update project status", err)
	}
	return nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.projects.DeleteProject(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, unexpected("delete project", err)
	}
	return project, nil
}

func (s *ProjectService) ensureCompany(ctx context.Context, id uuid.UUID) error {
	if _, err := s.companies.GetCompany(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return unexpected("get company", err)
	}
	return nil
}

func validArea(area string) bool {
	switch area {
	case model.AreaLegal, model.AreaAccounting, model.AreaLegalAndAccounting:
		return true
	default:
		return false
	}
}
