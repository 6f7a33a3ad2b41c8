package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/ops-backend/internal/access"
	"github.com/nurpe/ops-backend/internal/http/middleware"
	"github.com/nurpe/ops-backend/internal/model"
	"github.com/nurpe/ops-backend/internal/service"
)

type Services struct {
	Projects  *service.ProjectService
	Companies *service.CompanyService
	Tasks     *service.TaskService
	Roles     *service.RoleService
	Expenses  *service.ExpenseService
	Reports   *service.ReportService
	Home      *service.HomeService
}

type Handler struct {
	projects  *service.ProjectService
	companies *service.CompanyService
	tasks     *service.TaskService
	roles     *service.RoleService
	expenses  *service.ExpenseService
	reports   *service.ReportService
	home      *service.HomeService
	log       zerolog.Logger
}

func NewHandler(services Services, log zerolog.Logger) *Handler {
	return &Handler{
		projects:  services.Projects,
		companies: services.Companies,
		tasks:     services.Tasks,
		roles:     services.Roles,
		expenses:  services.Expenses,
		reports:   services.Reports,
		home:      services.Home,
		log:       log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/api/v1")
	protected.Use(authMiddleware)

	protected.GET("/home", h.getHome)

	protected.GET("/expenses", h.listExpenseReports)
	protected.POST("/expenses", h.createExpenseReport)
	protected.GET("/expenses/:id", h.getExpenseReport)
	protected.DELETE("/expenses/:id", h.deleteExpenseReport)

	staff := protected.Group("", h.requireRole(access.IsStaff))

	staff.GET("/projects", h.listProjects)
	staff.POST("/projects", h.createProject)
	staff.GET("/projects/:id", h.getProject)
	staff.PUT("/projects/:id", h.updateProject)
	staff.PUT("/projects/:id/status", h.updateProjectStatus)
	staff.DELETE("/projects/:id", h.deleteProject)
	staff.GET("/projects/:id/report", h.getProjectReport)
	staff.GET("/projects/:id/report/export", h.exportProjectReport)

	staff.GET("/clients", h.listCompanies)
	staff.POST("/clients", h.createCompany)
	staff.GET("/clients/:id", h.getCompany)
	staff.PUT("/clients/:id", h.updateCompany)
	staff.PUT("/clients/:id/archive", h.toggleCompanyArchived)
	staff.DELETE("/clients/:id", h.deleteCompany)
	staff.GET("/clients/:id/projects", h.listCompanyProjects)

	staff.POST("/tasks", h.createTask)
	staff.GET("/tasks/:id", h.getTask)
	staff.GET("/tasks/project/:id", h.listProjectTasks)
	staff.GET("/tasks/employee/:id", h.listEmployeeTasks)
	staff.PUT("/tasks/:id", h.updateTask)
	staff.PUT("/tasks/:id/status", h.updateTaskStatus)
	staff.PUT("/tasks/:id/assignee", h.assignTask)
	staff.DELETE("/tasks/:id", h.deleteTask)

	staff.GET("/employees/:id/tasks", h.listEmployeeAssignments)
	staff.GET("/roles", h.listRoles)

	// Role administration checks for ADMIN inside RoleService.
	staff.PUT("/employees/:id/role", h.updateEmployeeRole)
	staff.POST("/roles", h.createRole)
	staff.DELETE("/roles/:id", h.deleteRole)
}

// requireRole lets the request through only when the caller's stored role
// satisfies allow.
func (h *Handler) requireRole(allow func(title string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := h.principal(c)
		if !ok {
			c.Abort()
			return
		}
		role, err := h.roles.CallerRole(c.Request.Context(), principal.Email)
		if err != nil && !errors.Is(err, service.ErrNotFound) {
			h.handleError(c, err)
			c.Abort()
			return
		}
		if role == nil || !allow(role.Title) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": service.ErrForbiddenRole.Error()})
			return
		}
		c.Next()
	}
}

func (h *Handler) getHome(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	home, err := h.home.GetMyInfo(c.Request.Context(), principal.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, home)
}

func (h *Handler) principal(c *gin.Context) (model.Principal, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
	}
	return principal, ok
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": service.ErrUnexpected.Error()})
	}
}

// pathID parses the :id path parameter, answering 400 when malformed.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// bodyID parses a UUID taken from a request body field, answering 400 when
// malformed.
func bodyID(c *gin.Context, raw, field string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + field})
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	parsed, err := parseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, err
	}
	return &id, nil
}
