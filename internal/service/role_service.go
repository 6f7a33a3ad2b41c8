package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/ops-backend/internal/access"
	"github.com/nurpe/ops-backend/internal/model"
)

type RoleService struct {
	roles     RoleStore
	employees EmployeeStore
}

type CreateRoleInput struct {
	ID    string
	Title string
}

func NewRoleService(roles RoleStore, employees EmployeeStore) *RoleService {
	return &RoleService{roles: roles, employees: employees}
}

// CreateRole registers a role. Only ADMIN callers may create roles.
func (s *RoleService) CreateRole(ctx context.Context, callerEmail string, input CreateRoleInput) (*model.Role, error) {
	id, err := parseRoleID(input.ID)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, invalidInput("title is required")
	}
	if err := s.requireManager(ctx, callerEmail); err != nil {
		return nil, err
	}

	if _, err := s.roles.GetRole(ctx, id); err == nil {
		return nil, ErrRoleExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, unexpected("get role", err)
	}

	now := time.Now().UTC()
	role := &model.Role{
		ID:        id,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: &now,
	}
	if err := s.roles.CreateRole(ctx, role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRoleExists
		}
		return nil, unexpected("create role", err)
	}
	return role, nil
}

func (s *RoleService) DeleteRole(ctx context.Context, callerEmail, rawID string) (*model.Role, error) {
	id, err := parseRoleID(rawID)
	if err != nil {
		return nil, err
	}
	if err := s.requireManager(ctx, callerEmail); err != nil {
		return nil, err
	}

	if _, err := s.roles.GetRole(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, unexpected("get role", err)
	}

	role, err := s.roles.DeleteRole(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, unexpected("delete role", err)
	}
	return role, nil
}

func (s *RoleService) ListRoles(ctx context.Context) ([]model.Role, error) {
	roles, err := s.roles.ListRoles(ctx)
	if err != nil {
		return nil, unexpected("list roles", err)
	}
	if roles == nil {
		roles = []model.Role{}
	}
	return roles, nil
}

// UpdateEmployeeRole replaces the role of an employee. Both must exist and
// the caller must be ADMIN.
func (s *RoleService) UpdateEmployeeRole(ctx context.Context, callerEmail string, employeeID, roleID uuid.UUID) error {
	if err := s.requireManager(ctx, callerEmail); err != nil {
		return err
	}
	if _, err := s.employees.GetEmployee(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return unexpected("get employee", err)
	}
	if _, err := s.roles.GetRole(ctx, roleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		return unexpected("get role", err)
	}
	if err := s.employees.UpdateEmployeeRole(ctx, employeeID, roleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return unexpected("update employee role", err)
	}
	return nil
}

// CallerRole returns the role of the employee identified by email.
func (s *RoleService) CallerRole(ctx context.Context, email string) (*model.Role, error) {
	role, err := s.roles.GetRoleByEmail(ctx, email)
	if err != nil {
		return nil, callerLookupError("get caller role", err)
	}
	return role, nil
}

func (s *RoleService) requireManager(ctx context.Context, email string) error {
	role, err := s.CallerRole(ctx, email)
	if err != nil {
		return err
	}
	if !access.CanManage(role.Title) {
		return ErrForbiddenRole
	}
	return nil
}

func parseRoleID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, invalidInput("invalid UUID format for role ID")
	}
	return id, nil
}
