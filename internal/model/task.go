package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TaskStatus string

const (
	TaskStatusNotStarted    TaskStatus = "Not started"
	TaskStatusInProgress    TaskStatus = "In progress"
	TaskStatusUnderRevision TaskStatus = "Under revision"
	TaskStatusDelayed       TaskStatus = "Delayed"
	TaskStatusPostponed     TaskStatus = "Postponed"
	TaskStatusDone          TaskStatus = "Done"
	TaskStatusCancelled     TaskStatus = "Cancelled"
	TaskStatusDefault       TaskStatus = "-"
)

var TaskStatuses = []TaskStatus{
	TaskStatusNotStarted,
	TaskStatusInProgress,
	TaskStatusUnderRevision,
	TaskStatusDelayed,
	TaskStatusPostponed,
	TaskStatusDone,
	TaskStatusCancelled,
	TaskStatusDefault,
}

func (s TaskStatus) Valid() bool {
	for _, status := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Task struct {
	ID          uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      TaskStatus       `json:"status"`
	WaitingFor  *string          `json:"waitingFor,omitempty"`
	StartDate   time.Time        `json:"startDate"`
	DueDate     *time.Time       `json:"dueDate,omitempty"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
	WorkedHours *decimal.Decimal `json:"workedHours,omitempty" gorm:"type:numeric(8,2)"`
	ProjectID   uuid.UUID        `json:"idProject" gorm:"type:uuid;column:id_project"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   *time.Time       `json:"updatedAt,omitempty"`
}

func (Task) TableName() string {
	return "task"
}

// EmployeeTask links an employee to a task. A task has at most one
// assignment at a time.
type EmployeeTask struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `json:"idEmployee" gorm:"type:uuid;column:id_employee"`
	TaskID     uuid.UUID `json:"idTask" gorm:"type:uuid;column:id_task"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (EmployeeTask) TableName() string {
	return "employee_task"
}
