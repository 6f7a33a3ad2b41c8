package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProjectStatus string

const (
	ProjectStatusQuotation     ProjectStatus = "In quotation"
	ProjectStatusNotStarted    ProjectStatus = "Not started"
	ProjectStatusInProgress    ProjectStatus = "In progress"
	ProjectStatusUnderRevision ProjectStatus = "Under revision"
	ProjectStatusDelayed       ProjectStatus = "Delayed"
	ProjectStatusPostponed     ProjectStatus = "Postponed"
	ProjectStatusDone          ProjectStatus = "Done"
	ProjectStatusCancelled     ProjectStatus = "Cancelled"
	ProjectStatusDefault       ProjectStatus = "-"
)

var projectStatuses = []ProjectStatus{
	ProjectStatusQuotation,
	ProjectStatusNotStarted,
	ProjectStatusInProgress,
	ProjectStatusUnderRevision,
	ProjectStatusDelayed,
	ProjectStatusPostponed,
	ProjectStatusDone,
	ProjectStatusCancelled,
	ProjectStatusDefault,
}

func (s ProjectStatus) Valid() bool {
	for _, status := range projectStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s ProjectStatus) IsDone() bool {
	return strings.EqualFold(strings.TrimSpace(string(s)), string(ProjectStatusDone))
}

// Department areas a project can belong to.
const (
	AreaLegal              = "LEGAL"
	AreaAccounting         = "ACCOUNTING"
	AreaLegalAndAccounting = "LEGAL_AND_ACCOUNTING"
)

type Project struct {
	ID           uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string           `json:"name"`
	Matter       *string          `json:"matter,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Category     string           `json:"category"`
	Status       ProjectStatus    `json:"status"`
	StartDate    time.Time        `json:"startDate"`
	EndDate      *time.Time       `json:"endDate,omitempty"`
	TotalHours   *decimal.Decimal `json:"totalHours,omitempty" gorm:"type:numeric(8,2)"`
	Periodicity  string           `json:"periodicity"`
	IsChargeable bool             `json:"isChargeable"`
	Area         string           `json:"area"`
	IsArchived   bool             `json:"isArchived"`
	Payed        bool             `json:"payed"`
	CompanyID    uuid.UUID        `json:"idCompany" gorm:"type:uuid;column:id_company"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    *time.Time       `json:"updatedAt,omitempty"`
}

func (Project) TableName() string {
	return "project"
}

// SortDoneLast moves DONE projects behind the rest while keeping the
// relative order inside each group.
func SortDoneLast(projects []Project) []Project {
	result := make([]Project, 0, len(projects))
	done := make([]Project, 0)
	for _, project := range projects {
		if project.Status.IsDone() {
			done = append(done, project)
			continue
		}
		result = append(result, project)
	}
	return append(result, done...)
}
