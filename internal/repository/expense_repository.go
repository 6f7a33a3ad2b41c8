package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/ops-backend/internal/model"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) GetExpenseReport(ctx context.Context, id uuid.UUID) (*model.ExpenseReport, error) {
	var report model.ExpenseReport
	if err := r.reports(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	if err := r.attachEmployees(ctx, []*model.ExpenseReport{&report}); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ExpenseRepository) ListExpenseReports(ctx context.Context) ([]model.ExpenseReport, error) {
	var reports []model.ExpenseReport
	if err := r.reports(ctx).Order("start_date DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, r.attachEmployees(ctx, pointers(reports))
}

func (r *ExpenseRepository) ListExpenseReportsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.ExpenseReport, error) {
	var reports []model.ExpenseReport
	if err := r.reports(ctx).Where("id_employee = ?", employeeID).Order("start_date DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, r.attachEmployees(ctx, pointers(reports))
}

// CreateExpenseReport stores the report and its expenses atomically.
func (r *ExpenseRepository) CreateExpenseReport(ctx context.Context, report *model.ExpenseReport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		expenses := report.Expenses
		if err := tx.Omit("Expenses").Create(report).Error; err != nil {
			return err
		}
		if len(expenses) == 0 {
			return nil
		}
		return tx.Create(&expenses).Error
	})
}

func (r *ExpenseRepository) DeleteExpenseReport(ctx context.Context, id uuid.UUID) (*model.ExpenseReport, error) {
	var report model.ExpenseReport
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Expenses").Where("id = ?", id).First(&report).Error; err != nil {
			return err
		}
		if err := tx.Where("id_report = ?", id).Delete(&model.Expense{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.ExpenseReport{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ExpenseRepository) reports(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Expenses", func(db *gorm.DB) *gorm.DB {
		return db.Order("date ASC")
	})
}

func (r *ExpenseRepository) attachEmployees(ctx context.Context, reports []*model.ExpenseReport) error {
	if len(reports) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(reports))
	for _, report := range reports {
		ids = append(ids, report.EmployeeID)
	}

	var employees []model.Employee
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&employees).Error; err != nil {
		return err
	}
	byID := make(map[uuid.UUID]model.Employee, len(employees))
	for _, employee := range employees {
		byID[employee.ID] = employee
	}
	for _, report := range reports {
		if employee, ok := byID[report.EmployeeID]; ok {
			report.EmployeeFirstName = employee.FirstName
			report.EmployeeLastName = employee.LastName
		}
	}
	return nil
}

func pointers(reports []model.ExpenseReport) []*model.ExpenseReport {
	result := make([]*model.ExpenseReport, len(reports))
	for i := range reports {
		result[i] = &reports[i]
	}
	return result
}
