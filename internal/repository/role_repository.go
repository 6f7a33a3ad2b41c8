package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/ops-backend/internal/model"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) GetRole(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// GetRoleByEmail returns the role of the employee with the given email.
func (r *RoleRepository) GetRoleByEmail(ctx context.Context, email string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Raw(`
		SELECT r.id, r.title, r.created_at, r.updated_at
		FROM role r
		JOIN employee e ON e.id_role = r.id
		WHERE LOWER(e.email) = ?
		LIMIT 1
	`, strings.ToLower(strings.TrimSpace(email))).Scan(&role).Error; err != nil {
		return nil, err
	}
	if role.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &role, nil
}

func (r *RoleRepository) ListRoles(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *RoleRepository) CreateRole(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *RoleRepository) DeleteRole(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteReturning(tx, &role, id)
	})
	if err != nil {
		return nil, err
	}
	return &role, nil
}
