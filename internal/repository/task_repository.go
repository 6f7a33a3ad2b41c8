package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/ops-backend/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) GetTask(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("id_project = ?", projectID).
		Order("start_date ASC").
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) ListTasksByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Task, error) {
	if len(ids) == 0 {
		return []model.Task{}, nil
	}
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("start_date ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask inserts the task and, when employeeID is set, its assignment
// in the same transaction. A title already used in the project surfaces as
// gorm.ErrDuplicatedKey.
func (r *TaskRepository) CreateTask(ctx context.Context, task *model.Task, employeeID *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		if employeeID == nil {
			return nil
		}
		return tx.Create(&model.EmployeeTask{
			ID:         uuid.New(),
			EmployeeID: *employeeID,
			TaskID:     task.ID,
			CreatedAt:  task.CreatedAt,
		}).Error
	})
}

// UpdateTask never touches the project reference.
func (r *TaskRepository) UpdateTask(ctx context.Context, task *model.Task) error {
	return updateAll(r.db.WithContext(ctx), task, task.ID, "id_project")
}

func (r *TaskRepository) UpdateTaskStatus(ctx context.Context, id uuid.UUID, status model.TaskStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(map[string]interface{}{
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

func (r *TaskRepository) DeleteTask(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_task = ?", id).Delete(&model.EmployeeTask{}).Error; err != nil {
			return err
		}
		return deleteReturning(tx, &task, id)
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}
