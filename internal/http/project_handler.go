package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/ops-backend/internal/model"
	"github.com/nurpe/ops-backend/internal/service"
)

type createProjectRequest struct {
	Name         string  `json:"name" binding:"required,max=255"`
	Matter       *string `json:"matter"`
	Description  *string `json:"description" binding:"omitempty,max=255"`
	Category     string  `json:"category"`
	Status       string  `json:"status" binding:"required"`
	StartDate    string  `json:"startDate" binding:"required"`
	EndDate      *string `json:"endDate"`
	Periodicity  string  `json:"periodicity"`
	IsChargeable bool    `json:"isChargeable"`
	Area         string  `json:"area" binding:"required,oneof=LEGAL ACCOUNTING LEGAL_AND_ACCOUNTING"`
	CompanyID    string  `json:"idCompany" binding:"required,uuid"`
}

type updateProjectRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=255"`
	Matter       *string `json:"matter"`
	Description  *string `json:"description" binding:"omitempty,max=255"`
	Category     *string `json:"category"`
	Status       *string `json:"status"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	Periodicity  *string `json:"periodicity"`
	IsChargeable *bool   `json:"isChargeable"`
	Area         *string `json:"area" binding:"omitempty,oneof=LEGAL ACCOUNTING LEGAL_AND_ACCOUNTING"`
	IsArchived   *bool   `json:"isArchived"`
	Payed        *bool   `json:"payed"`
	CompanyID    *string `json:"idCompany" binding:"omitempty,uuid"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) listProjects(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projects, err := h.projects.ListProjectsForCaller(c.Request.Context(), principal.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return
	}
	companyID, ok := bodyID(c, req.CompanyID, "idCompany")
	if !ok {
		return
	}

	project, err := h.projects.CreateProject(c.Request.Context(), service.CreateProjectInput{
		Name:         req.Name,
		Matter:       req.Matter,
		Description:  req.Description,
		Category:     req.Category,
		Status:       model.ProjectStatus(req.Status),
		StartDate:    start,
		EndDate:      end,
		Periodicity:  req.Periodicity,
		IsChargeable: req.IsChargeable,
		Area:         req.Area,
		CompanyID:    companyID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *Handler) getProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	project, err := h.projects.GetProject(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) updateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.UpdateProjectInput{
		Name:         req.Name,
		Matter:       req.Matter,
		Description:  req.Description,
		Category:     req.Category,
		Periodicity:  req.Periodicity,
		IsChargeable: req.IsChargeable,
		Area:         req.Area,
		IsArchived:   req.IsArchived,
		Payed:        req.Payed,
	}
	if req.Status != nil {
		status := model.ProjectStatus(*req.Status)
		input.Status = &status
	}
	var err error
	if input.StartDate, err = parseOptionalDate(req.StartDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	if input.EndDate, err = parseOptionalDate(req.EndDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return
	}
	if input.CompanyID, err = parseOptionalUUID(req.CompanyID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid idCompany"})
		return
	}

	project, err := h.projects.UpdateProject(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) updateProjectStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.projects.UpdateProjectStatus(c.Request.Context(), id, model.ProjectStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	project, err := h.projects.DeleteProject(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) getProjectReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	report, err := h.reports.BuildReport(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) exportProjectReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result, err := h.reports.ExportReport(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}

func (h *Handler) listCompanyProjects(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	projects, err := h.projects.ListProjectsByCompany(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}
