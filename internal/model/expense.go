package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseReportStatus string

const (
	ExpenseReportStatusPending   ExpenseReportStatus = "PENDING"
	ExpenseReportStatusPayed     ExpenseReportStatus = "PAYED"
	ExpenseReportStatusCancelled ExpenseReportStatus = "CANCELLED"
)

type Expense struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Title         string          `json:"title"`
	Justification string          `json:"justification"`
	Supplier      *string         `json:"supplier,omitempty"`
	TotalAmount   decimal.Decimal `json:"totalAmount" gorm:"type:numeric(12,2)"`
	Date          time.Time       `json:"date"`
	Status        *string         `json:"status,omitempty"`
	Category      *string         `json:"category,omitempty"`
	ReportID      uuid.UUID       `json:"idReport" gorm:"type:uuid;column:id_report"`
	URLFile       *string         `json:"urlFile,omitempty" gorm:"column:url_file"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (Expense) TableName() string {
	return "expense"
}

type ExpenseReport struct {
	ID                uuid.UUID           `json:"id" gorm:"type:uuid;primaryKey"`
	Title             string              `json:"title"`
	Description       string              `json:"description"`
	StartDate         time.Time           `json:"startDate"`
	EndDate           *time.Time          `json:"endDate,omitempty"`
	Status            ExpenseReportStatus `json:"status"`
	URLVoucher        *string             `json:"urlVoucher,omitempty" gorm:"column:url_voucher"`
	EmployeeID        uuid.UUID           `json:"idEmployee" gorm:"type:uuid;column:id_employee"`
	EmployeeFirstName string              `json:"employeeFirstName,omitempty" gorm:"-"`
	EmployeeLastName  string              `json:"employeeLastName,omitempty" gorm:"-"`
	Expenses          []Expense           `json:"expenses" gorm:"foreignKey:ReportID"`
	TotalAmount       decimal.Decimal     `json:"totalAmount" gorm:"-"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         *time.Time          `json:"updatedAt,omitempty"`
}

func (ExpenseReport) TableName() string {
	return "expense_report"
}
