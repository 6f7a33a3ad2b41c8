package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/ops-backend/internal/model"
)

type ProjectFilter struct {
	// Areas restricts the listing to the given departments unless AllAreas
	// is set. An empty Areas without AllAreas matches nothing.
	Areas     []string
	AllAreas  bool
	CompanyID *uuid.UUID
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) ListProjects(ctx context.Context, filter ProjectFilter) ([]model.Project, error) {
	if !filter.AllAreas && len(filter.Areas) == 0 {
		return []model.Project{}, nil
	}

	query := r.db.WithContext(ctx).Order("status DESC").Order("name ASC")
	if !filter.AllAreas {
		query = query.Where("area IN ?", filter.Areas)
	}
	if filter.CompanyID != nil {
		query = query.Where("id_company = ?", *filter.CompanyID)
	}

	var projects []model.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) ListProjectsByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Project, error) {
	if len(ids) == 0 {
		return []model.Project{}, nil
	}
	var projects []model.Project
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("status DESC").Order("name ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) CreateProject(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, project *model.Project) error {
	return updateAll(r.db.WithContext(ctx), project, project.ID)
}

func (r *ProjectRepository) UpdateProjectStatus(ctx context.Context, id uuid.UUID, status model.ProjectStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteReturning(tx, &project, id)
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}
