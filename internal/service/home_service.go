package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/ops-backend/internal/model"
)

type HomeService struct {
	employees   EmployeeStore
	assignments AssignmentStore
	tasks       TaskStore
	projects    ProjectStore
	companies   CompanyStore
}

func NewHomeService(
	employees EmployeeStore,
	assignments AssignmentStore,
	tasks TaskStore,
	projects ProjectStore,
	companies CompanyStore,
) *HomeService {
	return &HomeService{
		employees:   employees,
		assignments: assignments,
		tasks:       tasks,
		projects:    projects,
		companies:   companies,
	}
}

// GetMyInfo returns the projects the caller has tasks in and the companies
// owning them.
func (s *HomeService) GetMyInfo(ctx context.Context, email string) (*model.Home, error) {
	employee, err := s.employees.GetEmployeeByEmail(ctx, email)
	if err != nil {
		return nil, callerLookupError("get caller employee", err)
	}

	home := &model.Home{Projects: []model.Project{}, Companies: []model.Company{}}

	assignments, err := s.assignments.ListAssignmentsByEmployee(ctx, employee.ID)
	if err != nil {
		return nil, unexpected("list employee assignments", err)
	}
	if len(assignments) == 0 {
		return home, nil
	}

	taskIDs := make([]uuid.UUID, 0, len(assignments))
	for _, assignment := range assignments {
		taskIDs = append(taskIDs, assignment.TaskID)
	}
	tasks, err := s.tasks.ListTasksByIDs(ctx, taskIDs)
	if err != nil {
		return nil, unexpected("list employee tasks", err)
	}

	projectIDs := uniqueIDs(len(tasks), func(yield func(uuid.UUID)) {
		for _, task := range tasks {
			yield(task.ProjectID)
		}
	})
	projects, err := s.projects.ListProjectsByIDs(ctx, projectIDs)
	if err != nil {
		return nil, unexpected("list employee projects", err)
	}
	home.Projects = model.SortDoneLast(projects)

	companyIDs := uniqueIDs(len(projects), func(yield func(uuid.UUID)) {
		for _, project := range projects {
			yield(project.CompanyID)
		}
	})
	companies, err := s.companies.ListCompaniesByIDs(ctx, companyIDs)
	if err != nil {
		return nil, unexpected("list employee companies", err)
	}
	if companies != nil {
		home.Companies = companies
	}
	return home, nil
}

func uniqueIDs(capacity int, each func(yield func(uuid.UUID))) []uuid.UUID {
	ids := make([]uuid.UUID, 0, capacity)
	seen := make(map[uuid.UUID]struct{}, capacity)
	each(func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	})
	return ids
}
