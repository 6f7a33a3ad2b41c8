package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/ops-backend/internal/model"
)

type EmployeeTaskRepository struct {
	db *gorm.DB
}

func NewEmployeeTaskRepository(db *gorm.DB) *EmployeeTaskRepository {
	return &EmployeeTaskRepository{db: db}
}

func (r *EmployeeTaskRepository) ListAssignmentsByTasks(ctx context.Context, taskIDs []uuid.UUID) ([]model.EmployeeTask, error) {
	if len(taskIDs) == 0 {
		return []model.EmployeeTask{}, nil
	}
	var rows []model.EmployeeTask
	if err := r.db.WithContext(ctx).
		Where("id_task IN ?", taskIDs).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EmployeeTaskRepository) ListAssignmentsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.EmployeeTask, error) {
	var rows []model.EmployeeTask
	if err := r.db.WithContext(ctx).
		Where("id_employee = ?", employeeID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// AssignEmployee replaces whatever assignment the task had.
func (r *EmployeeTaskRepository) AssignEmployee(ctx context.Context, taskID, employeeID uuid.UUID) (*model.EmployeeTask, error) {
	assignment := model.EmployeeTask{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		TaskID:     taskID,
		CreatedAt:  time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_task = ?", taskID).Delete(&model.EmployeeTask{}).Error; err != nil {
			return err
		}
		return tx.Create(&assignment).Error
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}
