package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/nurpe/ops-backend/internal/access"
	"github.com/nurpe/ops-backend/internal/model"
)

type ExpenseService struct {
	reports   ExpenseStore
	employees EmployeeStore
	roles     RoleStore
}

type ExpenseInput struct {
	Title         string
	Justification string
	Supplier      *string
	TotalAmount   *decimal.Decimal
	Date          time.Time
	Category      *string
	URLFile       *string
}

type CreateExpenseReportInput struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Expenses    []ExpenseInput
}

func NewExpenseService(reports ExpenseStore, employees EmployeeStore, roles RoleStore) *ExpenseService {
	return &ExpenseService{
		reports:   reports,
		employees: employees,
		roles:     roles,
	}
}

// SumExpenses adds up the amounts of expenses without rounding. It returns
// zero for an empty slice.
func SumExpenses(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.TotalAmount)
	}
	return total
}

// ListExpenseReports returns the reports visible to the caller: their own
// reports for LEGAL, every report for ADMIN and ACCOUNTING.
func (s *ExpenseService) ListExpenseReports(ctx context.Context, email string) ([]model.ExpenseReport, error) {
	role, err := s.roles.GetRoleByEmail(ctx, email)
	if err != nil {
		return nil, callerLookupError("get caller role", err)
	}
	employee, err := s.employees.GetEmployeeByEmail(ctx, email)
	if err != nil {
		return nil, callerLookupError("get caller employee", err)
	}

	var reports []model.ExpenseReport
	switch access.ResolveScope(role.Title) {
	case access.ScopeOwn:
		reports, err = s.reports.ListExpenseReportsByEmployee(ctx, employee.ID)
	case access.ScopeAll:
		reports, err = s.reports.ListExpenseReports(ctx)
	default:
		return nil, ErrNoScope
	}
	if err != nil {
		return nil, unexpected("list expense reports", err)
	}

	if reports == nil {
		reports = []model.ExpenseReport{}
	}
	for i := range reports {
		reports[i].TotalAmount = SumExpenses(reports[i].Expenses)
	}
	return reports, nil
}

// GetReportByID returns a single report with its total. Only its owner and
// ADMIN or ACCOUNTING callers may read it.
func (s *ExpenseService) GetReportByID(ctx context.Context, reportID uuid.UUID, email string) (*model.ExpenseReport, error) {
	var (
		employee *model.Employee
		role     *model.Role
		report   *model.ExpenseReport
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.employees.GetEmployeeByEmail(gctx, email)
		if err != nil {
			return callerLookupError("get caller employee", err)
		}
		employee = found
		return nil
	})
	g.Go(func() error {
		found, err := s.roles.GetRoleByEmail(gctx, email)
		if err != nil {
			return callerLookupError("get caller role", err)
		}
		role = found
		return nil
	})
	g.Go(func() error {
		found, err := s.reports.GetExpenseReport(gctx, reportID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExpenseReportNotFound
			}
			return unexpected("get expense report", err)
		}
		report = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if access.ResolveScope(role.Title) != access.ScopeAll && report.EmployeeID != employee.ID {
		return nil, ErrUnauthorizedEmployee
	}

	report.TotalAmount = SumExpenses(report.Expenses)
	return report, nil
}

func (s *ExpenseService) CreateExpenseReport(ctx context.Context, email string, input CreateExpenseReportInput) (*model.ExpenseReport, error) {
	if err := validateExpenseReport(input); err != nil {
		return nil, err
	}

	employee, err := s.employees.GetEmployeeByEmail(ctx, email)
	if err != nil {
		return nil, callerLookupError("get caller employee", err)
	}

	now := time.Now().UTC()
	report := &model.ExpenseReport{
		ID:                uuid.New(),
		Title:             strings.TrimSpace(input.Title),
		Description:       strings.TrimSpace(input.Description),
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		Status:            model.ExpenseReportStatusPending,
		EmployeeID:        employee.ID,
		EmployeeFirstName: employee.FirstName,
		EmployeeLastName:  employee.LastName,
		CreatedAt:         now,
		Expenses:          make([]model.Expense, 0, len(input.Expenses)),
	}
	for _, item := range input.Expenses {
		report.Expenses = append(report.Expenses, model.Expense{
			ID:            uuid.New(),
			Title:         strings.TrimSpace(item.Title),
			Justification: strings.TrimSpace(item.Justification),
			Supplier:      item.Supplier,
			TotalAmount:   *item.TotalAmount,
			Date:          item.Date,
			Category:      item.Category,
			ReportID:      report.ID,
			URLFile:       item.URLFile,
			CreatedAt:     now,
		})
	}

	if err := s.reports.CreateExpenseReport(ctx, report); err != nil {
		return nil, unexpected("create expense report", err)
	}

	report.TotalAmount = SumExpenses(report.Expenses)
	return report, nil
}

// DeleteExpenseReport removes a report and its expenses. The same callers
// that may read the report may delete it.
func (s *ExpenseService) DeleteExpenseReport(ctx context.Context, id uuid.UUID, email string) (*model.ExpenseReport, error) {
	if _, err := s.GetReportByID(ctx, id, email); err != nil {
		return nil, err
	}

	report, err := s.reports.DeleteExpenseReport(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseReportNotFound
		}
		return nil, unexpected("delete expense report", err)
	}
	report.TotalAmount = SumExpenses(report.Expenses)
	return report, nil
}

func validateExpenseReport(input CreateExpenseReportInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return invalidInput("title is required")
	}
	if input.StartDate.IsZero() {
		return invalidInput("startDate is required")
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return invalidInput("endDate must not be before startDate")
	}
	for i, item := range input.Expenses {
		if strings.TrimSpace(item.Title) == "" {
			return invalidInput("expenses[%d].title is required", i)
		}
		if item.TotalAmount == nil {
			return invalidInput("expenses[%d].totalAmount is required", i)
		}
		if item.TotalAmount.IsNegative() {
			return invalidInput("expenses[%d].totalAmount must not be negative", i)
		}
		if !item.TotalAmount.Equal(item.TotalAmount.Round(2)) {
			return invalidInput("expenses[%d].totalAmount must have at most 2 decimal places", i)
		}
	}
	return nil
}

func callerLookupError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEmployeeNotFound
	}
	return unexpected(op, err)
}
