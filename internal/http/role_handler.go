package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/ops-backend/internal/service"
)

type createRoleRequest struct {
	ID    string `json:"id" binding:"required"`
	Title string `json:"title" binding:"required,max=64"`
}

type employeeRoleRequest struct {
	RoleID string `json:"idRole" binding:"required,uuid"`
}

func (h *Handler) listRoles(c *gin.Context) {
	roles, err := h.roles.ListRoles(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// createRole leaves id validation to the service so a malformed id is
// reported with the same message whatever the transport.
func (h *Handler) createRole(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var req createRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, err := h.roles.CreateRole(c.Request.Context(), principal.Email, service.CreateRoleInput{ID: req.ID, Title: req.Title})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

func (h *Handler) deleteRole(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	role, err := h.roles.DeleteRole(c.Request.Context(), principal.Email, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *Handler) updateEmployeeRole(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req employeeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	roleID, ok := bodyID(c, req.RoleID, "idRole")
	if !ok {
		return
	}
	if err := h.roles.UpdateEmployeeRole(c.Request.Context(), principal.Email, id, roleID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
