package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nurpe/ops-backend/internal/model"
	"github.com/nurpe/ops-backend/internal/service"
)

type createTaskRequest struct {
	Title       string           `json:"title" binding:"required,max=70"`
	Description string           `json:"description" binding:"max=255"`
	Status      string           `json:"status" binding:"required"`
	WaitingFor  *string          `json:"waitingFor" binding:"omitempty,max=255"`
	StartDate   string           `json:"startDate" binding:"required"`
	DueDate     *string          `json:"dueDate"`
	WorkedHours *decimal.Decimal `json:"workedHours"`
	ProjectID   string           `json:"idProject" binding:"required,uuid"`
	EmployeeID  *string          `json:"idEmployee" binding:"omitempty,uuid"`
}

type updateTaskRequest struct {
	Title       *string          `json:"title" binding:"omitempty,max=70"`
	Description *string          `json:"description" binding:"omitempty,max=255"`
	Status      *string          `json:"status"`
	WaitingFor  *string          `json:"waitingFor" binding:"omitempty,max=255"`
	StartDate   *string          `json:"startDate"`
	DueDate     *string          `json:"dueDate"`
	EndDate     *string          `json:"endDate"`
	WorkedHours *decimal.Decimal `json:"workedHours"`
}

type assignRequest struct {
	EmployeeID string `json:"idEmployee" binding:"required,uuid"`
}

func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	due, err := parseOptionalDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dueDate"})
		return
	}
	employeeID, err := parseOptionalUUID(req.EmployeeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid idEmployee"})
		return
	}
	projectID, ok := bodyID(c, req.ProjectID, "idProject")
	if !ok {
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      model.TaskStatus(req.Status),
		WaitingFor:  req.WaitingFor,
		StartDate:   start,
		DueDate:     due,
		WorkedHours: req.WorkedHours,
		ProjectID:   projectID,
		EmployeeID:  employeeID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	if task == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "task already exists"})
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) getTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	task, err := h.tasks.FindTaskByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) listProjectTasks(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tasks, err := h.tasks.ListTasksByProject(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) listEmployeeTasks(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tasks, err := h.tasks.FindTasksByEmployeeID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) updateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		WaitingFor:  req.WaitingFor,
		WorkedHours: req.WorkedHours,
	}
	if req.Status != nil {
		status := model.TaskStatus(*req.Status)
		input.Status = &status
	}
	var err error
	if input.StartDate, err = parseOptionalDate(req.StartDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	if input.DueDate, err = parseOptionalDate(req.DueDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dueDate"})
		return
	}
	if input.EndDate, err = parseOptionalDate(req.EndDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return
	}

	task, err := h.tasks.UpdateTask(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) updateTaskStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.tasks.UpdateTaskStatus(c.Request.Context(), id, model.TaskStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) assignTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	employeeID, ok := bodyID(c, req.EmployeeID, "idEmployee")
	if !ok {
		return
	}
	assignment, err := h.tasks.AssignEmployee(c.Request.Context(), id, employeeID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

func (h *Handler) deleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	task, err := h.tasks.DeleteTask(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) listEmployeeAssignments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	assignments, err := h.tasks.ListAssignments(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}
