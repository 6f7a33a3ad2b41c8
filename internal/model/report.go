package model

import "strings"

type ProjectView struct {
	Project
	CompanyName string `json:"companyName"`
}

type TaskView struct {
	Task
	EmployeeFirstName string `json:"employeeFirstName,omitempty"`
	EmployeeLastName  string `json:"employeeLastName,omitempty"`
}

// ProjectStatistics counts the tasks of a project by status. Total is the
// number of tasks, whatever their status.
type ProjectStatistics struct {
	Total         int `json:"total"`
	Done          int `json:"done"`
	InProgress    int `json:"inprogress"`
	UnderRevision int `json:"underrevision"`
	Delayed       int `json:"delayed"`
	Postponed     int `json:"postponed"`
	NotStarted    int `json:"notstarted"`
	Cancelled     int `json:"cancelled"`
}

func NewProjectStatistics(total int) ProjectStatistics {
	return ProjectStatistics{Total: total}
}

// Count increments the counter matching status and reports whether the
// status was recognized.
func (s *ProjectStatistics) Count(status string) bool {
	switch StatisticsKey(status) {
	case "done":
		s.Done++
	case "inprogress":
		s.InProgress++
	case "underrevision":
		s.UnderRevision++
	case "delayed":
		s.Delayed++
	case "postponed":
		s.Postponed++
	case "notstarted":
		s.NotStarted++
	case "cancelled":
		s.Cancelled++
	default:
		return false
	}
	return true
}

// Counted is the sum of all status counters.
func (s ProjectStatistics) Counted() int {
	return s.Done + s.InProgress + s.UnderRevision + s.Delayed + s.Postponed + s.NotStarted + s.Cancelled
}

// StatisticsKey normalizes a status label ("In progress") into its counter
// key ("inprogress").
func StatisticsKey(status string) string {
	return strings.ToLower(strings.Join(strings.Fields(status), ""))
}

type ProjectReport struct {
	Project    ProjectView       `json:"project"`
	Tasks      []TaskView        `json:"tasks"`
	Statistics ProjectStatistics `json:"statistics"`
}

type Home struct {
	Projects  []Project `json:"projects"`
	Companies []Company `json:"companies"`
}
